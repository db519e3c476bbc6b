// Package api declares the HTTP routes and their handlers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/fisa/pkg/logger"
	"github.com/okian/fisa/pkg/metrics"
)

// Server wires HTTP routes for the web endpoints.
type Server struct {
	log         logger.Logger
	metrics     *metrics.Manager
	metricsPath string

	homeHandler   *HomeHandler
	healthHandler *HealthHandler
	sampleHandler *SampleHandler
	scoreHandler  *ScoreHandler
	appHandler    *AppHandler
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used by handlers and the access log.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics manager; the global manager is the default.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMetricsPath mounts the Prometheus handler at path. Empty disables it.
func WithMetricsPath(path string) Option {
	return func(s *Server) {
		s.metricsPath = path
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(opts ...Option) *Server {
	s := &Server{
		log:         logger.Discard(),
		metrics:     metrics.Default(),
		metricsPath: "/metrics",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.homeHandler = NewHomeHandler(s.metrics)
	s.healthHandler = NewHealthHandler()
	s.sampleHandler = NewSampleHandler()
	s.scoreHandler = NewScoreHandler(s.log, s.metrics)
	s.appHandler = NewAppHandler()
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// {$} keeps "/" from acting as a catch-all.
	mux.HandleFunc("GET /{$}", s.instrument(s.homeHandler.HandleHome, "home"))
	mux.HandleFunc("GET /health", s.instrument(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("GET /get", s.instrument(s.sampleHandler.HandleGet, "get"))
	mux.HandleFunc("GET /post", s.instrument(s.sampleHandler.HandlePost, "post"))
	mux.HandleFunc("POST /post", s.instrument(s.sampleHandler.HandlePostSubmit, "post"))
	mux.HandleFunc("POST /api/score", s.instrument(s.scoreHandler.HandleScore, "score"))

	mux.HandleFunc("GET /app/get", s.instrument(s.appHandler.HandleAppGet, "app_get"))
	mux.HandleFunc("POST /app/post", s.instrument(s.appHandler.HandleAppPost, "app_post"))

	if s.metricsPath != "" {
		mux.Handle("GET "+s.metricsPath, s.metrics.Handler())
	}
}

// Handler wraps h with request ids and access logging.
func (s *Server) Handler(h http.Handler) http.Handler {
	return Chain(h, RequestID, AccessLog(s.log))
}

func (s *Server) instrument(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return MetricsMiddleware(s.metrics, next, endpoint)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const contentTypeText = "text/plain; charset=utf-8"

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
