package cache

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisClient_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	addr := getEnv("REDIS_ADDR", "localhost:6379")
	pass := os.Getenv("REDIS_PASSWORD")

	rdb, err := NewRedisClient(addr, pass, 1)
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()

	require.NoError(t, rdb.FlushDB(ctx).Err(), "Failed to flush test DB")

	t.Run("Connection Ping", func(t *testing.T) {
		pong, err := rdb.Ping(ctx).Result()
		assert.NoError(t, err)
		assert.Equal(t, "PONG", pong)
	})

	t.Run("Snapshot Blob Round Trip", func(t *testing.T) {
		key := "stretch:snapshot:progress:user-1"
		blob, err := json.Marshal(map[string]any{"currentStreak": 3})
		require.NoError(t, err)

		require.NoError(t, rdb.Set(ctx, key, blob, 0).Err())

		val, err := rdb.Get(ctx, key).Bytes()
		assert.NoError(t, err)
		assert.JSONEq(t, string(blob), string(val))

		rdb.Del(ctx, key)
	})

	t.Run("Rate Limit Counter Expiry", func(t *testing.T) {
		key := "stretch:ratelimit:test"
		require.NoError(t, rdb.Set(ctx, key, 1, 1*time.Second).Err())

		time.Sleep(1100 * time.Millisecond)

		_, err := rdb.Get(ctx, key).Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}
