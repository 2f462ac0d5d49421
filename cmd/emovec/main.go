package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/emovec"
	"github.com/tsawler/emovec/internal/config"
	"github.com/tsawler/emovec/internal/httpserver"
	"github.com/tsawler/emovec/internal/logging"
	"github.com/tsawler/emovec/internal/version"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupAnalyzer(cfg config.AnalyzerConfig) *emovec.Analyzer {
	analyzer, err := emovec.NewAnalyzer(
		emovec.UsingStopWords(cfg.StopWords),
		emovec.UsingSentimentEngine(cfg.SentimentEngine),
		emovec.WithSentimentLexicon(cfg.SentimentLexicon),
		emovec.WithEmotionLexicon(cfg.EmotionLexicon),
		emovec.WithMarkdown(cfg.StripMarkdown),
	)
	if err != nil {
		slog.Error("Failed to load analyzer resources", "error", err)
		os.Exit(1)
	}
	return analyzer
}

func runGracefulShutdown(srv *httpserver.Server, cfg *config.Config) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	info := version.Get()
	slog.Info("Application starting",
		"name", info.Name,
		"version", info.Version,
		"commit", info.Commit,
		"env", cfg.AppEnv,
		"port", cfg.Port)

	// Lexicons and models load once, before the first request.
	analyzer := setupAnalyzer(cfg.Analyzer)
	slog.Info("Analyzer ready",
		"stopwords", cfg.Analyzer.StopWords,
		"sentiment_engine", cfg.Analyzer.SentimentEngine)

	srv := httpserver.NewServer(cfg, analyzer)
	done := runGracefulShutdown(srv, cfg)

	if err := srv.Start(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
