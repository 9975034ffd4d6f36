// Package httpapi serves the DRE tree and budget editing over HTTP.
package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/narrative"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/store"
)

// Server exposes one workspace. Reads share a lock; every mutation holds it
// exclusively and saves the workspace before returning.
type Server struct {
	mu       sync.RWMutex
	ws       *store.Workspace
	cache    *report.Cache
	analyst  *narrative.Analyst
	logger   logrus.FieldLogger
	validate *validator.Validate
	limit    func(http.Handler) http.Handler
}

// New creates a Server. analyst may be nil, in which case the analysis
// endpoint answers 503.
func New(ws *store.Workspace, cache *report.Cache, analyst *narrative.Analyst, logger logrus.FieldLogger) *Server {
	return &Server{
		ws:       ws,
		cache:    cache,
		analyst:  analyst,
		logger:   logger,
		validate: validator.New(),
		limit:    httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
}

// Handler returns the router with logging and panic recovery.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	s.MountRoutes(r)
	return r
}

// MountRoutes registers the API endpoints.
func (s *Server) MountRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/tree", s.handleTree)
		r.Get("/dimensions", s.handleDimensions)
		r.Get("/legends", s.handleLegends)
		r.Get("/order", s.handleGetOrder)
		r.Post("/order/move", s.handleMoveOrder)

		r.Route("/budget", func(r chi.Router) {
			r.Put("/cells", s.handleSetCell)
			r.Post("/distribute", s.handleDistribute)
			r.Post("/copy-realized", s.handleCopyRealized)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.limit)
			r.Post("/analysis", s.handleAnalysis)
		})
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}
