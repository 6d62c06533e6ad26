package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/trucite/trucite/internal/cache"
	"github.com/trucite/trucite/internal/model"
	"github.com/trucite/trucite/internal/pipeline"
	"github.com/trucite/trucite/internal/store"
)

// Server is the HTTP transport around the verification core. It maps inbound
// requests to pipeline runs, surfaces validation failures as 400s, hands
// successful reports to the audit sink, and serves liveness/status endpoints
// that never touch the core.
type Server struct {
	pipeline *pipeline.Pipeline
	sink     *store.Sink        // nil when persistence is disabled
	reports  *cache.ReportCache // nil when caching is disabled
	cfg      model.ServerConfig
	started  time.Time
}

// New creates a server. sink and reports may be nil.
func New(p *pipeline.Pipeline, sink *store.Sink, reports *cache.ReportCache, cfg model.ServerConfig) *Server {
	return &Server{
		pipeline: p,
		sink:     sink,
		reports:  reports,
		cfg:      cfg,
		started:  time.Now().UTC(),
	}
}

// Router assembles the chi router with CORS, panic recovery and per-client
// rate limiting on the verification endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(newClientLimiter(s.cfg.RatePerSecond, s.cfg.RateBurst).middleware)
		r.Post("/verify", s.handleVerify)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Warn("server shutdown", zap.Error(err))
		}
	}()

	zap.L().Info("starting server", zap.Int("port", s.cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}
