// Package httpserver exposes the emotion analyzer over HTTP using Echo.
//
// Routes: /analyze and /analyze_message (analysis), /health and /version
// (service info), /metrics (Prometheus). Handlers split by concern:
// handlers_analyze.go, handlers_health.go.
package httpserver
