package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laura-assistant/config"
	_ "laura-assistant/docs" // Swagger docs
	assistantHTTP "laura-assistant/internal/assistant/delivery/http"
	assistantUC "laura-assistant/internal/assistant/usecase"
	"laura-assistant/internal/calendar"
	"laura-assistant/internal/httpserver"
	"laura-assistant/internal/knowledge"
	searchHTTP "laura-assistant/internal/search/delivery/http"
	searchUC "laura-assistant/internal/search/usecase"
	"laura-assistant/pkg/llmprovider"
	"laura-assistant/pkg/log"
	"laura-assistant/pkg/serpapi"
)

// @title       Laura Assistant API
// @description Conversational assistant for David Kunze: profile Q&A, meeting scheduling, and web search with Excel export.
// @version     1
// @host        localhost:8021
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

	logger.Info(ctx, "Starting Laura Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Knowledge document
	doc, err := knowledge.Load(cfg.Knowledge.Path)
	if err != nil {
		logger.Warnf(ctx, "Knowledge document unavailable, using placeholder: %v", err)
	} else {
		logger.Infof(ctx, "Knowledge document loaded from %s", cfg.Knowledge.Path)
	}

	// 4. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 5. Assistant domain
	slots := calendar.NewCachedProvider(
		calendar.NewStaticProvider(),
		cfg.Calendar.CacheSize,
		time.Duration(cfg.Calendar.CacheTTLSeconds)*time.Second,
	)
	assistantUseCase := assistantUC.New(logger, manager, slots, doc)
	assistantHandler := assistantHTTP.New(logger, assistantUseCase)

	// 6. Search domain (mock mode when no API key is configured)
	var searcher searchUC.Searcher
	if cfg.SerpAPI.APIKey != "" {
		client, serpErr := serpapi.New(serpapi.Config{
			APIKey:         cfg.SerpAPI.APIKey,
			Language:       cfg.SerpAPI.Language,
			Country:        cfg.SerpAPI.Country,
			RequestsPerMin: cfg.SerpAPI.RequestsPerMin,
		})
		if serpErr != nil {
			logger.Warnf(ctx, "SerpAPI client unavailable, search runs in mock mode: %v", serpErr)
		} else {
			searcher = client
			logger.Info(ctx, "SerpAPI client initialized")
		}
	} else {
		logger.Warn(ctx, "SERPAPI_API_KEY not set, search runs in mock mode")
	}

	searchUseCase := searchUC.New(
		logger,
		searcher,
		cfg.SerpAPI.CacheSize,
		time.Duration(cfg.SerpAPI.CacheTTLSeconds)*time.Second,
	)
	searchHandler := searchHTTP.New(logger, searchUseCase)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: assistantHandler,
		SearchHandler:    searchHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
