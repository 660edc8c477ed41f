package main

// @title SafeRoute Service API
// @version 1.0.0
// @description Сервис рекомендации маршрутов с оценкой безопасности. Строит альтернативные маршруты через внешнего провайдера, оценивает каждый по отчетам сообщества и статическим факторам, классифицирует и ранжирует по предпочтению пользователя.
// @description
// @description Основные возможности:
// @description - Построение и оценка альтернативных маршрутов (safest / fastest / balanced)
// @description - Отчеты сообщества об инцидентах с гео-поиском в радиусе
// @description - История маршрутов пользователя с обратной связью
// @description - События о новых отчетах через Redis Streams

// @contact.name API Support
// @contact.email support@saferoute-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/saferoute-service/docs"
	"github.com/saferoute-service/internal/config"
	httpDelivery "github.com/saferoute-service/internal/delivery/http"
	"github.com/saferoute-service/internal/delivery/http/handler"
	"github.com/saferoute-service/internal/infrastructure/googledirections"
	"github.com/saferoute-service/internal/pkg/logger"
	"github.com/saferoute-service/internal/repository/cache"
	"github.com/saferoute-service/internal/repository/postgres"
	redisRepo "github.com/saferoute-service/internal/repository/redis"
	"github.com/saferoute-service/internal/scoring"
	"github.com/saferoute-service/internal/usecase"
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

	log.Info("Starting SafeRoute Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	reportRepo := postgres.NewReportRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	directionsRepo := googledirections.NewDirectionsClient(&cfg.Google, log)

	log.Info("Repositories initialized")

	// 7. Initialize scoring engine with policy from config
	scoringConfig := scoring.DefaultConfig()
	scoringConfig.SampleStride = cfg.Scoring.SampleStride
	scoringConfig.QueryRadius = cfg.Scoring.QueryRadius
	scoringConfig.MaxParallelism = cfg.Scoring.MaxParallelism
	scoringConfig.RankingBlendBase = cfg.Scoring.RankingBlendBase

	engine := scoring.NewEngine(reportRepo, scoringConfig, log)

	// 8. Initialize Use Cases
	routeUC := usecase.NewRouteUseCase(
		directionsRepo,
		routeRepo,
		cacheRepo,
		engine,
		log,
		cfg.Cache.RoutesCacheTTL,
	)

	reportUC := usecase.NewReportUseCase(
		reportRepo,
		streamRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	routeHandler := handler.NewRouteHandler(routeUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		reportHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
