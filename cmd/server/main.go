package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"master-student-chatbot/internal/config"
	"master-student-chatbot/internal/database"
	"master-student-chatbot/internal/handlers"
	"master-student-chatbot/internal/router"
	"master-student-chatbot/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port  string
		debug bool
	)

	cmd := &cobra.Command{
		Use:          "master-student",
		Short:        "Master Student chatbot HTTP service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("debug") && debug {
				cfg.Env = "development"
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	cmd.Flags().BoolVar(&debug, "debug", false, "development mode: verbose logs and /debug profiler")
	return cmd
}

func run(cfg *config.Config) error {
	logger, err := newLogger(cfg.Debug())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting Master Student chatbot",
		zap.String("port", cfg.Port),
		zap.Bool("debug", cfg.Debug()),
		zap.String("provider", cfg.LLMProvider))

	// ──── Step 1: Initialize Generator ────
	generator, closeGenerator, err := newGenerator(cfg, logger)
	if err != nil {
		return err
	}
	defer closeGenerator()

	// ──── Step 2: Initialize Support Notification Sinks ────
	sinks := []services.NotificationSink{
		services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SupportEmail, logger),
	}
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		defer redisClient.Close()
		sinks = append(sinks, services.NewRedisSink(redisClient))
		logger.Info("redis ticket sink enabled", zap.String("channel", services.SupportTicketChannel))
	}
	notifier := services.NewSupportNotifier(logger, sinks...)

	// ──── Step 3: Initialize Chatbot & Handlers ────
	chatbot := services.NewChatbot(generator, notifier, cfg.Model(), cfg.SupportEmail, logger)
	chatHandler := handlers.NewChatHandler(chatbot, logger)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, logger, cfg.CORSAllowOrigins, cfg.Debug())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("chatbot ready",
		zap.String("addr", fmt.Sprintf("http://localhost:%s", cfg.Port)),
		zap.String("model", chatbot.Model()))

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newGenerator builds the configured upstream client. Without an API key the
// chatbot runs on fallback replies only.
func newGenerator(cfg *config.Config, logger *zap.Logger) (services.Generator, func(), error) {
	noop := func() {}

	if cfg.APIKey() == "" {
		logger.Warn("no API key configured, replies will use fallback text only",
			zap.String("provider", cfg.LLMProvider))
		return nil, noop, nil
	}

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		svc, err := services.NewOpenAIService(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMTimeout)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("OpenAI-compatible client initialized", zap.String("model", cfg.OpenAIModel))
		return svc, noop, nil
	default:
		svc, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout, logger)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Gemini client initialized", zap.String("model", cfg.GeminiModel))
		return svc, svc.Close, nil
	}
}
