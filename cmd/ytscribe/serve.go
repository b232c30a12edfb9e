package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/snarg/ytscribe"
	"github.com/snarg/ytscribe/internal/ai"
	"github.com/snarg/ytscribe/internal/api"
	"github.com/snarg/ytscribe/internal/config"
	"github.com/snarg/ytscribe/internal/metrics"
	"github.com/snarg/ytscribe/internal/youtube"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var overrides config.Overrides
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(overrides)
		},
	}
	cmd.Flags().StringVar(&overrides.EnvFile, "env-file", "", "path to .env file (default .env)")
	cmd.Flags().StringVar(&overrides.HTTPAddr, "listen", "", "HTTP listen address (overrides HTTP_ADDR)")
	cmd.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	return cmd
}

func serve(overrides config.Overrides) error {
	startTime := time.Now()

	// Config
	cfg, err := config.Load(overrides)
	if err != nil {
		early := zerolog.New(os.Stderr).With().Timestamp().Logger()
		early.Error().Err(err).Msg("failed to load config")
		return err
	}

	// Logger
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	log.Info().Str("version", version).Msg("ytscribe starting")

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Upstreams
	transcripts := youtube.NewClient(cfg.TranscriptAPIKey, cfg.TranscriptAPIURL, cfg.UpstreamTimeout)

	aiLog := log.With().Str("component", "ai").Logger()
	gemini := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.UpstreamTimeout)
	openai := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.UpstreamTimeout)
	orch := ai.NewOrchestrator(ai.Options{
		Primary:         gemini,
		Secondary:       openai,
		SummaryMaxChars: cfg.SummaryMaxChars,
		Log:             aiLog,
	})
	primary, secondary := orch.Providers()
	aiLog.Info().
		Str("primary", primary).Str("primary_model", gemini.Model()).
		Str("secondary", secondary).Str("secondary_model", openai.Model()).
		Msg("ai providers configured")

	// Scrape-time metrics
	prometheus.MustRegister(metrics.NewCollector(version, startTime, []metrics.ProviderInfo{
		{Role: "primary", Name: primary, Model: gemini.Model()},
		{Role: "secondary", Name: secondary, Model: openai.Model()},
	}))

	webFS, err := fs.Sub(ytscribe.WebFiles, "web")
	if err != nil {
		log.Error().Err(err).Msg("embedded web assets unavailable")
		return err
	}

	// HTTP Server
	httpLog := log.With().Str("component", "http").Logger()
	srv := api.NewServer(api.ServerOptions{
		Config:      cfg,
		Transcripts: transcripts,
		AI:          orch,
		Providers:   []string{primary, secondary},
		WebFiles:    webFS,
		OpenAPISpec: ytscribe.OpenAPISpec,
		Version:     version,
		StartTime:   startTime,
		Log:         httpLog,
	})

	// Start HTTP server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal or server error
	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case serveErr = <-errCh:
		if serveErr != nil {
			log.Error().Err(serveErr).Msg("http server error")
		}
	}

	// Graceful shutdown with 10s timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	log.Info().Msg("ytscribe stopped")
	return serveErr
}
