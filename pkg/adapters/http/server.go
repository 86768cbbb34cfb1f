// Package http exposes a read-mostly admin API over a running Collage host.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/collage"
	"github.com/aretw0/collage/internal/logging"
	"github.com/aretw0/collage/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Admin is the host surface served by the API. Implementations run each call
// on the host loop.
type Admin interface {
	Frames(ctx context.Context) ([]domain.FrameStatus, error)
	Click(ctx context.Context, id domain.FrameID) (bool, error)
	Release(ctx context.Context) error
}

// Server serves the admin routes.
type Server struct {
	Admin    Admin
	Streams  *StreamManager
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer serves metrics from g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithStreams serves events broadcast by sm on /events.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithLogger sets the server's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the admin API.
func NewHandler(admin Admin, opts ...Option) http.Handler {
	s := &Server{
		Admin:  admin,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.Health)
	r.Route("/frames", func(r chi.Router) {
		r.Get("/", s.ListFrames)
		r.Post("/", s.rejectWrite)
		r.Put("/", s.rejectWrite)
		r.Delete("/", s.rejectWrite)
		r.Post("/{id}/click", s.ClickFrame)
	})
	r.Post("/release", s.Release)
	if s.Streams != nil {
		r.Get("/events", s.SubscribeEvents)
	}
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"app":     "collage",
		"version": strings.TrimSpace(collage.Version),
	})
}

// ListFrames handles GET /frames.
func (s *Server) ListFrames(w http.ResponseWriter, r *http.Request) {
	frames, err := s.Admin.Frames(r.Context())
	if err != nil {
		s.fail(w, "ListFrames", err)
		return
	}
	if frames == nil {
		frames = []domain.FrameStatus{}
	}
	writeJSON(w, http.StatusOK, frames)
}

// ClickFrame handles POST /frames/{id}/click. It answers 409 when the frame is
// already enabled and the click was not consumed.
func (s *Server) ClickFrame(w http.ResponseWriter, r *http.Request) {
	id := domain.FrameID(chi.URLParam(r, "id"))
	consumed, err := s.Admin.Click(r.Context(), id)
	if err != nil {
		s.fail(w, "ClickFrame", err)
		return
	}
	if !consumed {
		http.Error(w, "frame is already enabled", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Release handles POST /release.
func (s *Server) Release(w http.ResponseWriter, r *http.Request) {
	if err := s.Admin.Release(r.Context()); err != nil {
		s.fail(w, "Release", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) rejectWrite(w http.ResponseWriter, r *http.Request) {
	s.logger.Warn("Rejected write to frame registry", "method", r.Method)
	w.Header().Set("Allow", "GET")
	http.Error(w, domain.ErrIllegalMutation.Error(), http.StatusMethodNotAllowed)
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrFrameGone):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		s.logger.Error(op+" failed", "err", err)
	} else {
		s.logger.Warn(op+" failed", "err", err)
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
