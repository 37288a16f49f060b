package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	database "github.com/akanupam/jharkhand-yatra/app/db"
	appLogger "github.com/akanupam/jharkhand-yatra/app/logger"
	"github.com/akanupam/jharkhand-yatra/app/tracer"
	"github.com/akanupam/jharkhand-yatra/config"
	"github.com/akanupam/jharkhand-yatra/internal/api/chat"
	generativeai "github.com/akanupam/jharkhand-yatra/internal/api/generativeai"
	"github.com/akanupam/jharkhand-yatra/internal/api/intent"
	"github.com/akanupam/jharkhand-yatra/internal/api/rag"
	"github.com/akanupam/jharkhand-yatra/internal/api/responder"
	apirouter "github.com/akanupam/jharkhand-yatra/internal/router"
	"github.com/akanupam/jharkhand-yatra/internal/types"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics(cfg.Metrics.Port)

	// --- Model Gateway ---
	// Without an API key every model call fails fast and the deterministic
	// fallback tiers carry the whole conversation.
	var gateway generativeai.Gateway
	var embedder generativeai.Embedder
	if os.Getenv("GOOGLE_GEMINI_API_KEY") != "" {
		client, err := generativeai.NewGeminiClient(ctx, cfg.Gemini.Model, cfg.Gemini.EmbeddingModel, logger)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", slog.Any("error", err))
			os.Exit(1)
		}
		gateway, embedder = client, client
	} else {
		logger.Warn("GOOGLE_GEMINI_API_KEY not set, running on fallback responses only")
		gateway, embedder = generativeai.Disabled{}, generativeai.Disabled{}
	}

	// --- FAQ Retrieval (optional) ---
	var faqService rag.Service
	if cfg.RAG.Enabled {
		dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
		if err != nil {
			logger.Error("Failed to generate database config", slog.Any("error", err))
			os.Exit(1)
		}

		if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
			logger.Error("Failed to run database migrations", slog.Any("error", err))
			os.Exit(1)
		}

		pool, err := database.Init(dbConfig.ConnectionURL, logger)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if !database.WaitForDB(ctx, pool, logger) {
			logger.Error("Database not ready after waiting, exiting.")
			os.Exit(1)
		}

		faqService = rag.NewServiceImpl(gateway, embedder, rag.NewPostgresRepository(pool), cfg.RAG.TopK, logger)
	} else {
		logger.Info("Corpus retrieval disabled, FAQ queries use canned guidance")
	}

	// --- Dependency Injection ---
	intentService := intent.NewServiceImpl(gateway, logger)

	responders := make(map[types.Intent]*responder.Responder)
	for _, domainCfg := range responder.AllConfigs() {
		domainCfg := domainCfg
		responders[domainCfg.Intent] = responder.NewResponder(&domainCfg, gateway, cfg.Knowledge.Dir, logger)
	}

	chatService := chat.NewServiceImpl(intentService, responders, faqService, logger)
	chatHandler := chat.NewHandlerImpl(chatService, logger)

	// --- Router Setup ---
	mainRouter := apirouter.SetupRouter(&apirouter.RouterConfig{
		ChatHandler: chatHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		slog.InfoContext(r.Context(), "Root endpoint hit")
		_, _ = w.Write([]byte("Welcome to Jharkhand Yatra API"))
	})

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
