package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-assistant/config"
	_ "travel-assistant/docs" // Swagger docs
	"travel-assistant/internal/app"
	tgDelivery "travel-assistant/internal/chat/delivery/telegram"
	chatUsecase "travel-assistant/internal/chat/usecase"
	"travel-assistant/internal/httpserver"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/session"
	"travel-assistant/internal/test"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	"travel-assistant/pkg/telegram"
)

// @title       Travel Assistant API
// @description Conversational travel advice grounded in live weather, over HTTP and Telegram.
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
	logger := log.Init(app.LoggerConfig(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// 4. Pipeline: LLM gateway, weather provider, analyzer
	pipeline, err := app.Build(cfg, logger, m)
	if err != nil {
		logger.Error(ctx, "Failed to build assistant pipeline: ", err)
		return
	}

	// 5. Sessions and chat domain
	sessions := session.New(pipeline.Factory, cfg.Assistant.SessionTTL, logger)
	defer sessions.Close()

	chatUC := chatUsecase.New(sessions, pipeline.Router, cfg.Assistant.ShowChainOfThought, logger)

	// 6. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, bot, cfg.Telegram.WebhookSecret)

		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" && cfg.Telegram.NgrokAPIURL != "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.Telegram.NgrokAPIURL)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + telegramHookPath
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		ChatUseCase:     chatUC,
		Sessions:        sessions,
		TelegramHandler: telegramHandler,
		Metrics:         m,
		MetricsPath:     cfg.Metrics.Path,
		TestHandler:     test.New(logger, chatUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
