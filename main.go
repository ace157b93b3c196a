package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"ticketeiro/internal/auth"
	"ticketeiro/internal/config"
	"ticketeiro/internal/database/migrations"
	"ticketeiro/internal/events"
	events_api "ticketeiro/internal/events/api"
	events_db "ticketeiro/internal/events/db"
	"ticketeiro/internal/kafka"
	"ticketeiro/internal/logger"
	"ticketeiro/internal/storage"
	"ticketeiro/internal/users"
	users_api "ticketeiro/internal/users/api"
	users_db "ticketeiro/internal/users/db"
)

func verifyConnections(ctx context.Context, cfg *config.Config, log *logger.Logger) (*bun.DB, *redis.Client) {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.PingContext(ctx)
		if err == nil {
			break
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Info("DATABASE", "PostgreSQL connection successful")

	bunDB := bun.NewDB(sqldb, pgdialect.New())

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Redis connection error: %v", err))
	}
	log.Info("DATABASE", fmt.Sprintf("Redis connection successful to %s", cfg.Redis.Addr))

	return bunDB, redisClient
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Ticketeiro service initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	bunDB, redisClient := verifyConnections(ctx, cfg, log)
	defer bunDB.Close()
	defer redisClient.Close()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		runner := migrations.NewRunner(bunDB, migrations.DefaultOptions())
		if err := runner.RunMigrations(); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
		}
		runner.Close()
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, []string{cfg.Kafka.Topics.EventCreated}); err != nil {
			log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		}
	} else {
		log.Warn("KAFKA", "Kafka disabled, event notifications will not be published")
	}

	store := storage.NewService(cfg.Storage, httpClient)
	cache := events.NewCache(redisClient, 5*time.Minute)

	var eventPublisher events.EventPublisher
	if producer != nil {
		eventPublisher = producer
	}

	eventService := events.NewEventService(
		&events_db.DB{Bun: bunDB},
		store,
		cache,
		eventPublisher,
		cfg.Kafka.Topics.EventCreated,
		log,
	)

	var verifier users.IDTokenVerifier
	if cfg.Auth.GoogleClientID != "" {
		googleVerifier, err := auth.NewGoogleVerifier(ctx, cfg.Auth)
		if err != nil {
			log.Fatal("AUTH", fmt.Sprintf("Failed to initialize Google verifier: %v", err))
		}
		verifier = googleVerifier
	} else {
		log.Warn("AUTH", "GOOGLE_CLIENT_ID not set, OAuth registration disabled")
	}

	userService := users.NewUserService(&users_db.DB{Bun: bunDB}, cfg.Auth, verifier, log)

	eventHandler := events_api.NewHandler(eventService, log)
	userHandler := users_api.NewHandler(userService, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	// --- Public Routes ---
	r.Route("/api", func(r chi.Router) {
		eventHandler.RegisterRoutes(r)
		userHandler.RegisterRoutes(r)

		// --- Protected Routes ---
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(cfg.Auth))
			eventHandler.RegisterProtectedRoutes(r)
			userHandler.RegisterProtectedRoutes(r)
		})
	})
	log.Info("ROUTER", "Routes registered under /api")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Ticketeiro service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		log.Info("HTTP", "Ticketeiro service shutdown complete")
	}
}
