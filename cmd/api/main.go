package main

// @title Building Identifier API
// @version 1.0.0
// @description Сервис определения здания, на которое направлена камера устройства.
// @description Принимает позицию и азимут, возвращает кандидата (BuildingMatch) и метаданные запроса.
// @description Текущая версия возвращает детерминированный mock результат.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/building-identifier/docs"
	"github.com/building-identifier/internal/config"
	httpDelivery "github.com/building-identifier/internal/delivery/http"
	"github.com/building-identifier/internal/delivery/http/handler"
	"github.com/building-identifier/internal/domain/repository"
	"github.com/building-identifier/internal/metrics"
	"github.com/building-identifier/internal/pkg/logger"
	redisRepo "github.com/building-identifier/internal/repository/redis"
	"github.com/building-identifier/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "building-identifier-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Building Identifier")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("events_enabled", cfg.Events.Enabled),
	)

	// 3. Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	// 4. Optional event publishing. publisher stays a nil interface when disabled.
	var (
		publisher   repository.EventPublisher
		redisClient *redisRepo.Redis
	)
	if cfg.Events.Enabled {
		redisClient, err = redisRepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Health(healthCtx)
		healthCancel()
		if err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		publisher = redisRepo.NewStreamRepository(redisClient.Client(), log)
		log.Info("Redis connected, identification events enabled",
			zap.String("stream", cfg.Events.Stream))
	}

	// 5. Use cases and handlers
	identifyUC := usecase.NewIdentifyUseCase(publisher, cfg.Events.Stream, m, log)

	identifyHandler := handler.NewIdentifyHandler(identifyUC, m, log)
	healthHandler := handler.NewHealthHandler()

	// 6. HTTP server
	server := httpDelivery.NewServer(cfg, log, reg, identifyHandler, healthHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
