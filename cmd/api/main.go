package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/genai"

	"github.com/archanaram372-sh/WhatIContain/internal/adapters/storage"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/agent"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/domain"
	"github.com/archanaram372-sh/WhatIContain/internal/analysis/service"
	apphttp "github.com/archanaram372-sh/WhatIContain/internal/http"
	"github.com/archanaram372-sh/WhatIContain/internal/http/router"
	"github.com/archanaram372-sh/WhatIContain/internal/ocr"
	"github.com/archanaram372-sh/WhatIContain/platform/config"
	"github.com/archanaram372-sh/WhatIContain/platform/logger"
	"github.com/archanaram372-sh/WhatIContain/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error("failed to initialize genai client", "error", err)
		panic("failed to initialize genai client: " + err.Error())
	}
	gen := agent.NewGeminiGenerator(client, cfg.GeminiModel, cfg.AnalysisTimeout)
	log.Info("genai client initialized", "model", cfg.GeminiModel)

	staging := initStaging(ctx, cfg, log)

	var extractor service.TextExtractor
	if cfg.IsOCREnabled() {
		extractor = ocr.NewClient(ocr.Config{
			BaseURL: cfg.OCRBaseURL,
			APIKey:  cfg.OCRAPIKey,
			Timeout: cfg.OCRTimeout,
		})
		log.Info("OCR text extraction enabled", "url", cfg.OCRBaseURL)
	} else {
		log.Info("OCR not configured; using native vision analysis")
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	svc := service.New(service.Deps{
		Analyzer:      agent.NewAnalyzer(gen, log),
		Chat:          agent.NewChatHandler(gen, log),
		Extractor:     extractor,
		Staging:       staging,
		UploadBucket:  cfg.MinioBucketUploads,
		Canonicalizer: domain.NewCanonicalizer(domain.DefaultCanonicalizerConfig()),
		Logger:        log,
	})
	analysisModule := analysis.NewModule(svc, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			analysisModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initStaging picks MinIO when configured and falls back to the local
// upload directory otherwise.
func initStaging(ctx context.Context, cfg *config.Config, log *logger.Logger) storage.StagingService {
	if cfg.IsMinIOEnabled() {
		svc, err := storage.NewMinIOService(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure uploads bucket", 5, 2*time.Second, func() error {
			return svc.EnsureBucketExists(ctx, cfg.MinioBucketUploads)
		}); err != nil {
			log.Error("failed to ensure uploads bucket exists", "error", err, "bucket", cfg.MinioBucketUploads)
			panic("failed to ensure uploads bucket exists: " + err.Error())
		}
		log.Info("storage service initialized", "uploadsBucket", cfg.MinioBucketUploads)
		return svc
	}

	svc, err := storage.NewLocalService(cfg.LocalUploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Error("failed to initialize local staging", "error", err)
		panic("failed to initialize local staging: " + err.Error())
	}
	if err := svc.EnsureBucketExists(ctx, cfg.MinioBucketUploads); err != nil {
		log.Error("failed to create local staging dir", "error", err)
		panic("failed to create local staging dir: " + err.Error())
	}
	log.Info("local upload staging initialized", "dir", cfg.LocalUploadDir)
	return svc
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, lastErr)
}
