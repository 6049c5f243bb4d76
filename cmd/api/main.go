package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golf-caddy-core/config"
	_ "golf-caddy-core/docs" // Swagger docs
	assistantUC "golf-caddy-core/internal/assistant/usecase"
	classifierUC "golf-caddy-core/internal/classifier/usecase"
	"golf-caddy-core/internal/httpserver"
	"golf-caddy-core/internal/normalizer"
	"golf-caddy-core/internal/offline"
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/pattern/repository/inmem"
	patternUC "golf-caddy-core/internal/pattern/usecase"
	"golf-caddy-core/internal/routing"
	routingUC "golf-caddy-core/internal/routing/usecase"
	"golf-caddy-core/internal/session"
	"golf-caddy-core/pkg/llmprovider"
	"golf-caddy-core/pkg/log"
	"golf-caddy-core/pkg/metrics"
)

// @title       Golf Caddy Decision Core API
// @description Deterministic intent classification and routing for a golf caddy assistant, with decaying miss-pattern memory.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Golf Caddy Decision Core...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain. Without usable providers the classifier still
	// runs, permanently degraded to the offline matcher.
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM providers available, running offline-only: %v", err)
	} else {
		logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))
	}

	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		retryDelay = 500 * time.Millisecond
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
	}, logger)

	// 4. Decision pipeline
	repo := inmem.New()
	patterns := patternUC.New(logger, repo, repo, pattern.Config{
		HalfLifeDays:  cfg.Decay.HalfLifeDays,
		RetentionDays: cfg.Decay.RetentionDays,
		MinSampleSize: cfg.Pattern.MinSampleSize,
		MinShare:      cfg.Pattern.MinShare,
		MinConfidence: pattern.DefaultConfig().MinConfidence,
	})

	matcher := offline.New(offline.Config{
		StrongThreshold: cfg.Offline.StrongThreshold,
		WeakThreshold:   cfg.Offline.WeakThreshold,
	})

	classifier := classifierUC.New(logger, manager, matcher, classifierUC.Config{
		RouteThreshold:   cfg.Classifier.RouteThreshold,
		ConfirmThreshold: cfg.Classifier.ConfirmThreshold,
		TextTimeout:      cfg.Classifier.TextTimeout,
		VoiceTimeout:     cfg.Classifier.VoiceTimeout,
	})

	router := routingUC.New(logger, routing.NewChecker(patterns), patterns)

	sessions := session.NewStore(session.StoreConfig{
		Capacity: cfg.Session.Capacity,
		TTL:      cfg.Session.TTL,
		MaxCount: cfg.Session.MaxCount,
	})

	m := metrics.New(nil)

	assistant := assistantUC.New(logger, normalizer.New(), sessions, classifier, router, m)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Metrics:     m,
		AssistantUC: assistant,
		PatternUC:   patterns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
