package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tsawler/emovec/internal/version"
)

// handleHealth reports liveness only.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "saludable"})
}

func (s *Server) handleVersion(c echo.Context) error {
	info := version.Get()
	return c.JSON(http.StatusOK, map[string]string{
		"name":        info.Name,
		"version":     info.Version,
		"description": info.Description,
	})
}
