package repository_test

import (
	"context"
	"testing"

	"github.com/stretchfit/stretch-engine/internal/adapters/repository"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]domain.SnapshotStore {
	t.Helper()
	fileStore, err := repository.NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)
	return map[string]domain.SnapshotStore{
		"memory": repository.NewInMemorySnapshotStore(),
		"file":   fileStore,
	}
}

func TestSnapshotStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("Error: Missing key", func(t *testing.T) {
				_, err := store.Load(ctx, "progress:missing")
				assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
			})

			t.Run("Success: Save then load returns the blob", func(t *testing.T) {
				blob := []byte(`{"current_streak":3}`)
				require.NoError(t, store.Save(ctx, "streak:u1", blob))

				got, err := store.Load(ctx, "streak:u1")
				require.NoError(t, err)
				assert.Equal(t, blob, got)
			})

			t.Run("Success: Save replaces the previous value whole", func(t *testing.T) {
				require.NoError(t, store.Save(ctx, "progress:u1", []byte(`{"a":1}`)))
				require.NoError(t, store.Save(ctx, "progress:u1", []byte(`{"b":2}`)))

				got, err := store.Load(ctx, "progress:u1")
				require.NoError(t, err)
				assert.Equal(t, []byte(`{"b":2}`), got)
			})

			t.Run("Success: Delete then load misses", func(t *testing.T) {
				require.NoError(t, store.Save(ctx, "session:u1", []byte(`{}`)))
				require.NoError(t, store.Delete(ctx, "session:u1"))

				_, err := store.Load(ctx, "session:u1")
				assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
			})

			t.Run("Success: Deleting a missing key is not an error", func(t *testing.T) {
				assert.NoError(t, store.Delete(ctx, "session:ghost"))
			})
		})
	}
}

func TestInMemorySnapshotStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemorySnapshotStore()

	blob := []byte(`{"v":1}`)
	require.NoError(t, store.Save(ctx, "k", blob))

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	got[2] = 'x'

	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), again, "callers get copies, not the stored slice")
}

func TestFileSnapshotStore_KeyEscaping(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := repository.NewFileSnapshotStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "progress:user-1", []byte(`{}`)))

	// The colon never reaches the filesystem.
	assert.FileExists(t, dir+"/progress_user-1.json")
}
