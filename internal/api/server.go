package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/config"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/metrics"
)

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	cfg     config.Config
	metrics *metrics.Metrics
	logger  *slog.Logger

	// Hooks for tests. Defaults run the real pipeline.
	analyzeDoc        func(ctx context.Context, text string, opts analysis.Options) (*analysis.Result, error)
	analyzeTranscript func(ctx context.Context, text string, sales bool, opts analysis.Options) (*analysis.Result, error)
}

// NewServer creates a Server with the real analysis pipeline wired in.
func NewServer(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *Server {
	if m == nil {
		m = metrics.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:               cfg,
		metrics:           m,
		logger:            logger,
		analyzeDoc:        analysis.AnalyzeDocument,
		analyzeTranscript: analysis.AnalyzeTranscript,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/rules", s.handleRules)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/analyze/transcript", s.handleAnalyzeTranscript)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
