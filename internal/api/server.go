// Package api exposes the scraper daemon's status over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tmarchand/gunindex/internal/scrape"
)

// Server serves health and sweep-stats endpoints.
type Server struct {
	router chi.Router
	stats  *scrape.Stats
	log    *slog.Logger
}

func NewServer(stats *scrape.Stats, log *slog.Logger) *Server {
	s := &Server{
		stats: stats,
		log:   log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/api/stats", s.handleStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.stats.Snapshot())
}
