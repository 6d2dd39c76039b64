// Package scheduler runs the background decay sweep. On each tick every
// avatar decays for the hours elapsed since its last update, keeping needs
// and fame moving even for users who never hit the API.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron"

	"github.com/meltforce/socialite/internal/progression"
	"github.com/meltforce/socialite/internal/storage"
)

var (
	decaySweeps = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "socialite_decay_sweeps_total",
		Help: "Total number of completed decay sweeps",
	})
	decayUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "socialite_decay_updates_total",
		Help: "Total number of avatars updated by decay sweeps",
	})
)

// Scheduler periodically applies decay to every avatar.
type Scheduler struct {
	db      *storage.DB
	catalog *progression.Catalog
	log     *slog.Logger
	cron    *cron.Cron
	now     func() time.Time
}

// New creates a scheduler. Call Start to begin sweeping on the given cron
// schedule.
func New(db *storage.DB, catalog *progression.Catalog, log *slog.Logger) *Scheduler {
	prometheus.MustRegister(decaySweeps, decayUpdates)
	return &Scheduler{
		db:      db,
		catalog: catalog,
		log:     log,
		cron:    cron.New(),
		now:     time.Now,
	}
}

// Start registers the sweep on the schedule and starts the cron runner.
// Schedule takes any cron expression or descriptor ("@hourly").
func (s *Scheduler) Start(schedule string) error {
	if err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.Sweep(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("decay scheduler started", "schedule", schedule)
	return nil
}

// Stop halts the cron runner. A sweep already in flight finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Sweep applies decay to every avatar and persists the changed groups.
// Errors on individual avatars are logged and skipped so one bad row cannot
// stall the whole sweep.
func (s *Scheduler) Sweep(ctx context.Context) {
	avatars, err := s.db.ListAvatars(ctx)
	if err != nil {
		s.log.Error("decay sweep: listing avatars", "error", err)
		return
	}

	now := s.now().UTC()
	updated := 0
	for _, a := range avatars {
		hours := now.Sub(a.UpdatedAt).Hours()
		if hours <= 0 {
			continue
		}

		upd, err := s.catalog.SimulateDecay(a.DecayState(), hours)
		if err != nil {
			s.log.Error("decay sweep: simulating", "user_id", a.UserID, "error", err)
			continue
		}
		if upd.Empty() {
			continue
		}

		if err := s.db.ApplyDecayUpdate(ctx, a.UserID, upd, now); err != nil {
			s.log.Error("decay sweep: applying", "user_id", a.UserID, "error", err)
			continue
		}
		updated++
	}

	decaySweeps.Inc()
	decayUpdates.Add(float64(updated))
	s.log.Info("decay sweep complete", "avatars", len(avatars), "updated", updated)
}
