package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/lecturedeck/internal/api"
	"github.com/vytor/lecturedeck/internal/config"
	"github.com/vytor/lecturedeck/internal/db"
	"github.com/vytor/lecturedeck/internal/generator"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/repository/sqlite"
	"github.com/vytor/lecturedeck/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogFile == ""),
		logger.WithRotatingFile(logger.FileOptions{
			Path:       cfg.LogFile,
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
		}),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LectureDeck Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("provider=%s", cfg.Provider)
	log.Debug("provider_timeout=%s", cfg.ProviderTimeout)
	log.Debug("provider_max_concurrent=%d", cfg.ProviderMaxConcurrent)
	log.Debug("provider_rate_per_sec=%.2f", cfg.ProviderRatePerSec)
	log.Debug("generation_retry_budget=%d", cfg.GenerationRetryBudget)
	log.Debug("max_items_per_set=%d", cfg.MaxItemsPerSet)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen, closeGen, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Error("failed to create generator: %v", err)
		os.Exit(1)
	}
	defer closeGen()

	// Repositories
	transcriptRepo := sqlite.NewTranscriptRepository(database.DB)
	setRepo := sqlite.NewSetRepository(database.DB)
	flashcardRepo := sqlite.NewFlashcardRepository(database.DB)
	questionRepo := sqlite.NewQuestionRepository(database.DB)
	attemptRepo := sqlite.NewAttemptRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)

	// Services
	progressService := services.NewProgressService(progressRepo, setRepo, attemptRepo)
	generationService := services.NewGenerationService(transcriptRepo, setRepo, gen, services.GenerationConfig{
		RetryBudget: cfg.GenerationRetryBudget,
		MaxItems:    cfg.MaxItemsPerSet,
	})

	srv := &api.Server{
		DB:                 database,
		GenerationService:  generationService,
		SetService:         services.NewSetService(setRepo),
		FlashcardService:   services.NewFlashcardService(flashcardRepo, setRepo, progressService),
		QuizService:        services.NewQuizService(questionRepo, attemptRepo, setRepo, progressService),
		ProgressService:    progressService,
		TranscriptService:  services.NewTranscriptService(transcriptRepo),
		CORSAllowedOrigins: cfg.CORSAllowedOrig,
	}

	// Generation requests may wait on the provider for the whole retry budget.
	writeTimeout := cfg.ProviderTimeout*time.Duration(cfg.GenerationRetryBudget+1) + 15*time.Second

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("LectureDeck Server Stopped")
	log.Info("===========================================")
}

// newGenerator builds the configured provider client behind the shared limiter.
func newGenerator(ctx context.Context, cfg config.Config) (generator.Generator, func(), error) {
	log := logger.Default().WithPrefix("generator")

	var (
		client  generator.Generator
		closeFn = func() {}
	)

	switch cfg.Provider {
	case config.ProviderGemini:
		gc, err := generator.NewGeminiClient(ctx, generator.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.ProviderTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		client = gc
		closeFn = func() {
			if err := gc.Close(); err != nil {
				log.Warn("failed to close gemini client: %v", err)
			}
		}
		if cfg.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY is not set; generation requests will fail")
		}
	default:
		client = generator.NewOpenAIClient(generator.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.ProviderTimeout,
		})
		if cfg.OpenAIAPIKey == "" {
			log.Warn("OPENAI_API_KEY is not set; generation requests will fail")
		}
	}

	log.Info("using %s provider: max_concurrent=%d, rate=%.2f/s", cfg.Provider, cfg.ProviderMaxConcurrent, cfg.ProviderRatePerSec)
	return generator.NewLimited(client, cfg.ProviderMaxConcurrent, cfg.ProviderRatePerSec), closeFn, nil
}
