// Package web serves the Kinship site: home page, pedigree tree view,
// person profiles, the family timeline, and the acknowledgments page.
//
// The server is a thin renderer over the core packages. It holds the
// immutable store loaded at startup, so handlers share it across
// requests without locking; every page view is one complete synchronous
// computation (lookup → build/format → template execute).
package web

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/northhaven/kinship/pkg/config"
	"github.com/northhaven/kinship/pkg/store"
)

// Server renders the site from a loaded store.
type Server struct {
	cfg    config.Config
	store  *store.Store
	logger *log.Logger
}

// New creates a Server over the given store and configuration.
func New(cfg config.Config, st *store.Store, logger *log.Logger) *Server {
	return &Server{cfg: cfg, store: st, logger: logger}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/tree", s.handleTree)
	r.Get("/tree.svg", s.handleTreeSVG)
	r.Get("/profile", s.handleProfile)
	r.Get("/timeline", s.handleTimeline)
	r.Get("/sources", s.handleSources)

	return r
}

// requestLogger tags each request with an ID and logs method, path,
// status, and duration on completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}
