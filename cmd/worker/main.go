package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/building-identifier/internal/config"
	"github.com/building-identifier/internal/metrics"
	"github.com/building-identifier/internal/pkg/logger"
	"github.com/building-identifier/internal/repository/postgres"
	redisRepo "github.com/building-identifier/internal/repository/redis"
	"github.com/building-identifier/internal/usecase"
	"github.com/building-identifier/internal/worker"
	"github.com/building-identifier/internal/worker/audit"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "building-audit-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Identification Audit Worker")
	log.Info("Configuration loaded",
		zap.String("stream", cfg.Events.Stream),
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Duration("stats_interval", cfg.Worker.StatsInterval))

	// 3. Connect to PostgreSQL and apply migrations
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(migrateCtx); err != nil {
		migrateCancel()
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrateCancel()

	// 4. Connect to Redis
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(healthCtx); err != nil {
		healthCancel()
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(healthCtx); err != nil {
		healthCancel()
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	healthCancel()
	log.Info("All connections healthy")

	// 5. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	var metricsApp *fiber.App
	if addr := cfg.GetWorkerMetricsAddr(); addr != "" {
		metricsApp = fiber.New(fiber.Config{DisableStartupMessage: true})
		metricsApp.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		go func() {
			log.Info("Starting metrics listener", zap.String("address", addr))
			if err := metricsApp.Listen(addr); err != nil {
				log.Error("Metrics listener stopped", zap.Error(err))
			}
		}()
	}

	// 6. Repositories and use cases
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	auditRepo := postgres.NewAuditRepository(db)
	auditUC := usecase.NewAuditUseCase(auditRepo, log)

	// 7. Workers
	auditWorker := audit.NewAuditWorker(
		streamRepo,
		auditUC,
		m,
		cfg.Events.Stream,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		cfg.Worker.StatsInterval,
		log,
	)

	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(auditWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Сначала даём воркерам доделать текущий batch, потом отменяем контекст
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	if metricsApp != nil {
		if err := metricsApp.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error("Metrics listener shutdown error", zap.Error(err))
		}
	}

	log.Info("Worker shutdown complete")
}
