package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/stretchfit/stretch-engine/internal/adapters/cache"
	adapterHTTP "github.com/stretchfit/stretch-engine/internal/adapters/handler/http"
	"github.com/stretchfit/stretch-engine/internal/adapters/repository"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is.")
	}

	serverPort := getEnv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET must be set")
	}

	var (
		db  *sqlx.DB
		rdb *redis.Client
		err error
	)

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = cache.NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		log.Println("Redis connected successfully.")
	}

	var store domain.SnapshotStore

	backend := getEnv("STORE_BACKEND", "file")
	switch backend {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432"),
			os.Getenv("DB_NAME"))

		log.Println("Connecting to database...")
		db, err = sqlx.Connect("pgx", dsn)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		log.Println("Database connected successfully.")

		store, err = repository.NewPostgresSnapshotStore(db)
		if err != nil {
			log.Fatalf("Critical: Failed to prepare snapshot schema: %v", err)
		}
	case "redis":
		if rdb == nil {
			log.Fatal("Critical: STORE_BACKEND=redis requires REDIS_ADDR")
		}
		store = repository.NewRedisSnapshotStore(rdb)
	case "memory":
		store = repository.NewInMemorySnapshotStore()
	case "file":
		store, err = repository.NewFileSnapshotStore(getEnv("DATA_DIR", "data"))
		if err != nil {
			log.Fatalf("Critical: Failed to open data directory: %v", err)
		}
	default:
		log.Fatalf("Critical: unknown STORE_BACKEND %q", backend)
	}

	userRepo := repository.NewSnapshotUserRepository(store)
	sessionRepo := repository.NewSnapshotAuthSessionRepository(store)
	progressRepo := repository.NewSnapshotProgressRepository(store)
	streakRepo := repository.NewSnapshotStreakRepository(store)

	tokenService := services.NewTokenService(jwtSecret, "stretch-engine", 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, sessionRepo, tokenService)
	progressService := services.NewProgressService(progressRepo)
	streakService := services.NewStreakService(streakRepo)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generatorService := services.NewGeneratorService(rng, 2*time.Second)
	sessionManager := services.NewSessionManager(progressService,
		rand.New(rand.NewSource(time.Now().UnixNano())), time.Second)
	premiumService := services.NewPremiumService(userRepo, 1500*time.Millisecond)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService),
		WorkoutHandler:  adapterHTTP.NewWorkoutHandler(generatorService),
		SessionHandler:  adapterHTTP.NewSessionHandler(sessionManager),
		ProgressHandler: adapterHTTP.NewProgressHandler(progressService),
		StreakHandler:   adapterHTTP.NewStreakHandler(streakService),
		PremiumHandler:  adapterHTTP.NewPremiumHandler(premiumService),
		FormHandler:     adapterHTTP.NewFormHandler(),
		TokenService:    tokenService,
		DB:              db,
		Redis:           rdb,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Stretch Engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	sessionManager.Shutdown()

	log.Println("Server stopped gracefully.")
}
