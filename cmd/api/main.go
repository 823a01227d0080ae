package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"voice-to-jira/config"
	_ "voice-to-jira/docs" // Swagger docs
	extractionUC "voice-to-jira/internal/extraction/usecase"
	"voice-to-jira/internal/httpserver"
	sessionMemory "voice-to-jira/internal/session/repository/memory"
	sessionUC "voice-to-jira/internal/session/usecase"
	trackerUC "voice-to-jira/internal/tracker/usecase"
	"voice-to-jira/internal/transcribe"
	transcribeUC "voice-to-jira/internal/transcribe/usecase"
	"voice-to-jira/pkg/dateparse"
	"voice-to-jira/pkg/jira"
	"voice-to-jira/pkg/llamagen"
	"voice-to-jira/pkg/log"
	"voice-to-jira/pkg/whisper"
)

// @title       Voice to Jira API
// @description Turns voice-note transcripts into structured Jira issues with an LLM extraction step.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting Voice to Jira...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Locale.Timezone)

	// 3. Date resolution
	resolver, err := dateparse.NewResolver(cfg.Locale.Timezone, nil)
	if err != nil {
		logger.Error(ctx, "Failed to initialize date resolver: ", err)
		return
	}

	// 4. Generator client
	generator, err := llamagen.New(llamagen.Config{
		BaseURL:    cfg.Generator.BaseURL,
		URL:        cfg.Generator.URL,
		Model:      cfg.Generator.Model,
		APIKey:     cfg.Generator.APIKey,
		AuthHeader: cfg.Generator.AuthHeader,
		AuthScheme: cfg.Generator.AuthScheme,
		Timeout:    time.Duration(cfg.Generator.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize generator client: ", err)
		return
	}

	// 5. Jira client
	jiraClient, err := jira.New(jira.Config{
		BaseURL:    cfg.Jira.BaseURL,
		Email:      cfg.Jira.Email,
		APIToken:   cfg.Jira.APIToken,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Jira client: ", err)
		return
	}

	// 6. Session store
	sessionStore, err := sessionMemory.New(cfg.Session.Capacity)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		return
	}

	// 7. UseCases
	extraction := extractionUC.New(logger, generator, resolver)
	sessions := sessionUC.New(logger, sessionStore)
	tracker := trackerUC.New(logger, jiraClient, resolver, cfg.Jira.RatePerMin)

	// 8. Transcription (optional)
	var transcriber transcribe.UseCase
	if cfg.Whisper.URL != "" {
		whisperClient, whErr := whisper.New(whisper.Config{
			URL:   cfg.Whisper.URL,
			Model: cfg.Whisper.Model,
		})
		if whErr != nil {
			logger.Warnf(ctx, "Transcription not available (optional): %v", whErr)
		} else {
			transcriber = transcribeUC.New(logger, whisperClient)
			logger.Info(ctx, "Transcription endpoint initialized")
		}
	} else {
		logger.Warn(ctx, "WHISPER_URL not set, transcription endpoint disabled")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		SessionUC:    sessions,
		ExtractionUC: extraction,
		TrackerUC:    tracker,
		TranscribeUC: transcriber,
		Project:      cfg.Jira.Project,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
