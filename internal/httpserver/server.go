package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tsawler/emovec"
	"github.com/tsawler/emovec/internal/config"
	"github.com/tsawler/emovec/internal/metrics"
)

// Analyzer turns text into an emotion vector.
type Analyzer interface {
	Analyze(text string) (emovec.EmotionVector, error)
}

type Server struct {
	echo            *echo.Echo
	config          *config.Config
	analyzer        Analyzer
	registry        *prometheus.Registry
	analysisMetrics *metrics.AnalysisMetrics
}

func NewServer(cfg *config.Config, analyzer Analyzer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:     e,
		config:   cfg,
		analyzer: analyzer,
	}
	e.HTTPErrorHandler = srv.handleError

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
	}))

	if cfg.MetricsEnabled {
		srv.registry = metrics.NewRegistry()
		srv.analysisMetrics = metrics.NewAnalysisMetrics(srv.registry)
		e.Use(metrics.NewHTTPMetrics(srv.registry).Middleware())
	}

	// Register routes
	srv.registerRoutes()

	return srv
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	slog.Info("Starting server", "addr", s.config.Addr())
	err := s.echo.Start(s.config.Addr())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
