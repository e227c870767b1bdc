package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-todo/config"
	_ "voice-todo/docs" // Swagger docs
	"voice-todo/internal/httpserver"
	"voice-todo/internal/voicetask/usecase"
	"voice-todo/pkg/datemath"
	"voice-todo/pkg/log"
)

// @title       Voice To-Do Parser API
// @description Turns spoken to-do commands into structured tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting voice to-do parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Reference timezone: %s", cfg.Parser.Timezone)

	// 3. Voice task domain
	clock, err := datemath.NewClock(cfg.Parser.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to create clock: ", err)
		return
	}

	voiceTaskUC := usecase.New(logger, clock, usecase.Config{
		MaxTranscriptLength: cfg.Parser.MaxTranscriptLength,
		AutoAcceptThreshold: cfg.Parser.AutoAcceptThreshold,
		BatchLimit:          cfg.Parser.BatchLimit,
		CacheSize:           cfg.Cache.Size,
		CacheTTL:            cfg.Cache.TTL,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Timezone:         cfg.Parser.Timezone,
		RateLimitPerMin:  cfg.RateLimit.PerMin,
		VoiceTaskUseCase: voiceTaskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
