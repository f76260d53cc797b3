package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/refpilot/affiliate-service/internal/app/background"
	"github.com/refpilot/affiliate-service/internal/config"
	"github.com/refpilot/affiliate-service/internal/delivery/http/handlers"
	"github.com/refpilot/affiliate-service/internal/delivery/http/routes"
	publisher "github.com/refpilot/affiliate-service/internal/infrastructure/kafka"
	"github.com/refpilot/affiliate-service/internal/infrastructure/metrics"
	"github.com/refpilot/affiliate-service/internal/infrastructure/migrate"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/repository"
	"github.com/refpilot/affiliate-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)

	if migrationPath := os.Getenv("AFFILIATE_MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(db, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	sub := publisher.NewDefaultKafkaSubscriber(brokers)

	// Init repositories
	affiliateRepo := repository.NewDefaultAffiliateRepository(db)
	tierRepo := repository.NewDefaultTierRepository(db)
	conversionRepo := repository.NewDefaultConversionRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)

	affiliateMetrics := metrics.NewAffiliateMetrics()

	// Init usecases
	tierUsecase := usecase.NewDefaultTierUsecase(tierRepo, pub, affiliateMetrics)
	affiliateUsecase := usecase.NewDefaultAffiliateUsecase(affiliateRepo, conversionRepo, tierUsecase, pub, affiliateMetrics)
	conversionUsecase := usecase.NewDefaultConversionUsecase(conversionRepo, affiliateRepo, pub, affiliateMetrics)
	payoutUsecase := usecase.NewDefaultPayoutUsecase(affiliateRepo, conversionRepo, payoutRepo, tierUsecase, pub, affiliateMetrics)
	portalUsecase := usecase.NewDefaultPortalUsecase(affiliateRepo, conversionRepo, affiliateUsecase, payoutUsecase, tierUsecase)
	integrityUsecase := usecase.NewDefaultIntegrityUsecase(affiliateRepo, conversionRepo, affiliateMetrics)

	// Background workers
	sweepInterval := time.Duration(cfg.Integrity.SweepIntervalMinutes) * time.Minute
	tasks := background.NewBackgroundTasks(integrityUsecase, conversionUsecase, sub, sweepInterval)
	tasks.StartAll(context.Background())

	// Prometheus endpoint on its own listener
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsAddr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		slog.Info("metrics server started", "addr", metricsAddr)
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			slog.Error("metrics server failed", "error", err.Error())
		}
	}()

	// HTTP API
	app := fiber.New()
	routes.SetupRoutes(app, &routes.Handlers{
		Affiliate:  handlers.NewAffiliateHandler(affiliateUsecase),
		Tier:       handlers.NewTierHandler(tierUsecase),
		Conversion: handlers.NewConversionHandler(conversionUsecase),
		Payout:     handlers.NewPayoutHandler(payoutUsecase),
		Portal:     handlers.NewPortalHandler(portalUsecase),
		Integrity:  handlers.NewIntegrityHandler(integrityUsecase),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.AffiliateConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
