package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/tsawler/emovec/internal/metrics"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/version", s.handleVersion)
	if s.registry != nil {
		s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))
	}

	// Analysis
	s.echo.POST("/analyze", s.handleAnalyze)
	s.echo.POST("/analyze_message", s.handleAnalyzeMessage)
}
