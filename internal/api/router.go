// Package api exposes the movie operations over HTTP.
//
// @title Awardgap API
// @version 1.0
// @description Ingest award movie lists and report producer win intervals.
// @BasePath /
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fatih/color"
	_ "github.com/huangsam/awardgap/internal/api/docs" // Swagger spec registration
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterOption customizes NewRouter.
type RouterOption func(*routerConfig)

type routerConfig struct {
	logger *slog.Logger
	colors bool
}

// WithLogger sets the logger attached to every request context.
func WithLogger(logger *slog.Logger) RouterOption {
	return func(c *routerConfig) { c.logger = logger }
}

// WithColors enables colored status codes in the request log.
func WithColors(enabled bool) RouterOption {
	return func(c *routerConfig) { c.colors = enabled }
}

// NewRouter registers every route on a new mux and wraps it with request logging.
func NewRouter(mgr contract.StoreManager, opts ...RouterOption) http.Handler {
	cfg := &routerConfig{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	h := NewHandler(mgr)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Health)
	mux.HandleFunc("GET /list-producer-winners", h.ListProducerWinners)
	mux.HandleFunc("GET /movies", h.ListMovies)
	mux.HandleFunc("POST /populate", h.Populate)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return requestLogger(mux, cfg)
}

// loggingResponseWriter captures the status code written by a handler.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// requestLogger attaches the logger to the request context and logs each request once served.
func requestLogger(next http.Handler, cfg *routerConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		ctx := logging.WithLogger(r.Context(), cfg.logger)

		next.ServeHTTP(lrw, r.WithContext(ctx))

		status := any(lrw.statusCode)
		if cfg.colors {
			status = statusColor(lrw.statusCode).Sprint(lrw.statusCode)
		}
		cfg.logger.Info("request",
			logging.FieldMethod, r.Method,
			logging.FieldPath, r.URL.Path,
			logging.FieldStatus, status,
			logging.FieldDuration, time.Since(start))
	})
}

func statusColor(code int) *color.Color {
	switch {
	case code >= 200 && code < 300:
		return color.New(color.FgGreen)
	case code >= 300 && code < 400:
		return color.New(color.FgCyan)
	case code >= 400 && code < 500:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
