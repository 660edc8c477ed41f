package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saferoute-service/internal/config"
	"github.com/saferoute-service/internal/pkg/logger"
	"github.com/saferoute-service/internal/repository/cache"
	redisRepo "github.com/saferoute-service/internal/repository/redis"
	"github.com/saferoute-service/internal/worker"
	"github.com/saferoute-service/internal/worker/routecache"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SafeRoute worker")

	if !cfg.Worker.Enabled {
		log.Info("Worker disabled by configuration, exiting")
		return
	}

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 5. Register workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := worker.NewWorkerManager(log)
	manager.Register(routecache.NewInvalidationWorker(
		streamRepo,
		cacheRepo,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.InvalidateRadius,
		log,
	))

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Workers started successfully")

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers gracefully...")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	log.Info("Workers stopped successfully")
}
