package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// apiError is an error with the status and detail sent to the client.
type apiError struct {
	Status int
	Detail string
	Cause  error
}

func (e *apiError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Detail)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *apiError) Unwrap() error {
	return e.Cause
}

// validationError rejects a request body (HTTP 422).
func validationError(detail string, cause error) *apiError {
	return &apiError{Status: http.StatusUnprocessableEntity, Detail: detail, Cause: cause}
}

// analysisError reports a failed analysis (HTTP 500). The detail embeds
// the cause's text.
func analysisError(prefix string, cause error) *apiError {
	return &apiError{
		Status: http.StatusInternalServerError,
		Detail: prefix + cause.Error(),
		Cause:  cause,
	}
}

// errorResponse is the JSON body of every error.
type errorResponse struct {
	Detail string `json:"detail"`
}

// handleError is the Echo error handler. Every error becomes a
// {"detail": ...} body.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := http.StatusText(status)

	var apiErr *apiError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		status, detail = apiErr.Status, apiErr.Detail
	case errors.As(err, &httpErr):
		status = httpErr.Code
		detail = fmt.Sprint(httpErr.Message)
	}

	logError(c, status, err)

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, errorResponse{Detail: detail})
	}
	if err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}

// logError logs an error with request context.
func logError(c echo.Context, status int, err error) {
	attrs := []any{
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", status,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err,
	}

	switch {
	case status >= http.StatusInternalServerError:
		slog.Error("Internal error", attrs...)
	case status == http.StatusUnprocessableEntity:
		slog.Info("Validation error", attrs...)
	default:
		slog.Debug("Client error", attrs...)
	}
}
