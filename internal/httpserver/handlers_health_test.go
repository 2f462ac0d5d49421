package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	srv := newTestServer(t, &mockAnalyzer{})
	err := srv.handleHealth(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"saludable"}`, rec.Body.String())
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{})

	rec := doRequest(srv, http.MethodGet, "/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"name": "API de Análisis de Vector Emocional",
		"version": "1.0.0",
		"description": "API para analizar el contenido emocional de textos"
	}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockAnalyzer{})

	doRequest(srv, http.MethodPost, "/analyze", `{"text":"x"}`)
	rec := doRequest(srv, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `emovec_http_requests_total{method="POST",route="/analyze",status_code="200"} 1`)
	assert.Contains(t, body, `emovec_analysis_duration_seconds_count{endpoint="/analyze"} 1`)
	assert.False(t, strings.Contains(body, `route="/metrics"`))
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	srv := NewServer(cfg, &mockAnalyzer{})

	rec := doRequest(srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/analyze", `{"text":"x"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
