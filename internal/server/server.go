package server

import (
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meltforce/socialite/internal/config"
	"github.com/meltforce/socialite/internal/progression"
	"github.com/meltforce/socialite/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	catalog *progression.Catalog
	gen     *progression.Generator
	log     *slog.Logger
	apiKey  string
	router  chi.Router
	now     func() time.Time
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, catalog *progression.Catalog, cfg *config.Config, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		catalog: catalog,
		gen:     progression.NewGenerator(catalog, rand.New(rand.NewSource(time.Now().UnixNano()))),
		log:     log,
		apiKey:  cfg.Auth.APIKey,
		router:  chi.NewRouter(),
		now:     time.Now,
	}
	registerMetrics()
	s.routes(cfg.RateLimit)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(rl config.RateLimitConfig) {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(Metrics)
	s.router.Use(CORS)

	s.router.Get("/health", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(rl.PerSecond, rl.Burst))

		// Read endpoints (no auth — tsnet handles access)
		r.Get("/avatars/{userID}", s.handleGetAvatar)
		r.Get("/avatars/{userID}/workout", s.handleGenerateWorkout)
		r.Get("/programs/{userID}", s.handleGetProgram)
		r.Get("/programs/{userID}/day", s.handleProgramDay)
		r.Get("/programs/{userID}/week", s.handleProgramWeek)
		r.Get("/tiers", s.handleTiers)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/avatars/{userID}/stats", s.handleUserStats)
		r.Get("/avatars/{userID}/history", s.handleWorkoutHistory)

		// Mutating endpoints (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/avatars", s.handleCreateAvatar)
			r.Post("/avatars/{userID}/workout/complete", s.handleCompleteWorkout)
			r.Post("/programs", s.handleCreateProgram)
		})
	})
}
