package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/api"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/auth"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/cache"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/config"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/content"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/database"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/metrics"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/openrouter"
)

func main() {
	var configPath string
	var migrateDown int
	flag.StringVar(&configPath, "config", "config.yml", "Path to configuration file")
	flag.IntVar(&migrateDown, "migrate-down", 0, "Roll back N migrations and exit")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if migrateDown > 0 {
		if err := database.MigrateDown(cfg, migrateDown, log); err != nil {
			log.Error("Rollback failed", logger.Error(err))
			os.Exit(1)
		}
		return
	}

	log.Info("Starting content generator service",
		logger.String("address", cfg.Server.Address),
		logger.Bool("debug", cfg.Debug),
		logger.String("model", cfg.OpenRouter.Model),
	)

	if err := run(cfg, log); err != nil {
		log.Error("Service error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	// Database
	if err := database.RunMigrations(cfg, log); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close(db)

	userRepo := database.NewUserRepository(db)
	contentRepo := database.NewContentRepository(db)

	// Redis cache. The service degrades to database-only reads if Redis
	// is unreachable at startup; /health then reports redis as down.
	var listCache content.ListCache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if pingErr := redisClient.Ping(context.Background()).Err(); pingErr != nil {
		log.Warn("Redis unreachable, content list caching disabled",
			logger.String("addr", cfg.Redis.Addr),
			logger.Error(pingErr),
		)
	} else {
		listCache = cache.NewContentCache(redisClient, cfg.Redis.CacheTTL, log)
	}

	// Metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector())
	tracker := metrics.NewTracker(promRegistry)

	// Generation client
	generator := openrouter.NewClient(cfg.OpenRouter, log)
	if generator.MockEnabled() {
		log.Warn("No OpenRouter API key configured; serving mock completions (openrouter.allow_mock)")
	}

	contentService := content.NewService(contentRepo, generator, listCache, tracker, log)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	router := api.NewRouter(api.RouterDeps{
		Config:     cfg,
		Logger:     log,
		JWTManager: jwtManager,
		Users:      userRepo,
		Content:    contentService,
		PingDB: func(ctx context.Context) error {
			return contentRepo.Ping(ctx)
		},
		PingRedis: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		PromRegistry: promRegistry,
	})

	srv := api.NewHTTPServer(cfg.Server, router.Engine())
	return api.RunWithGracefulShutdown(context.Background(), srv, cfg.Server, log)
}
