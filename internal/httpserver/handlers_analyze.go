package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tsawler/emovec"
)

const (
	analyzeTextFailed    = "Error al analizar el texto: "
	analyzeMessageFailed = "Error al analizar el mensaje: "
)

// Pointer fields tell a missing field apart from an empty string.
type analyzeRequest struct {
	Text *string `json:"text"`
}

type analyzeMessageRequest struct {
	UserID  *string `json:"user_id"`
	Message *string `json:"message"`
}

type analysisResponse struct {
	Vector  emovec.EmotionVector `json:"vector"`
	Message string               `json:"message"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.Text == nil {
		return validationError("field required: text", nil)
	}

	vec, err := s.analyze(c, *req.Text)
	if err != nil {
		return analysisError(analyzeTextFailed, err)
	}

	return c.JSON(http.StatusOK, analysisResponse{
		Vector:  vec,
		Message: "Texto analizado exitosamente",
	})
}

func (s *Server) handleAnalyzeMessage(c echo.Context) error {
	var req analyzeMessageRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.UserID == nil {
		return validationError("field required: user_id", nil)
	}
	if req.Message == nil {
		return validationError("field required: message", nil)
	}

	vec, err := s.analyze(c, *req.Message)
	if err != nil {
		return analysisError(analyzeMessageFailed, err)
	}

	return c.JSON(http.StatusOK, analysisResponse{
		Vector:  vec,
		Message: fmt.Sprintf("Mensaje para el usuario %s analizado exitosamente", *req.UserID),
	})
}

// analyze runs the analyzer and records its duration and outcome.
func (s *Server) analyze(c echo.Context, text string) (emovec.EmotionVector, error) {
	start := time.Now()
	vec, err := s.analyzer.Analyze(text)
	if s.analysisMetrics != nil {
		s.analysisMetrics.Observe(c.Path(), time.Since(start), err)
	}
	if err != nil {
		slog.Error("Analysis failed",
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"text_length", len(text),
			"error", err)
	}
	return vec, err
}

// decodeBody reads a JSON body into v. Any decoding failure, including a
// field of the wrong type, is a validation error.
func decodeBody(c echo.Context, v any) error {
	if c.Request().ContentLength == 0 {
		return validationError("field required: body", nil)
	}
	if err := c.Echo().JSONSerializer.Deserialize(c, v); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return validationError(fmt.Sprint(httpErr.Message), err)
		}
		return validationError("invalid JSON body", err)
	}
	return nil
}
