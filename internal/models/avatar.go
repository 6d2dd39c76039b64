package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/socialite/internal/progression"
)

// Avatar is the persisted socialite state for one user. The progression
// engine only reads it; all mutation happens through partial updates merged
// by the storage layer. Tier is never stored — it is recomputed from fame
// and level on every read.
type Avatar struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             string             `json:"user_id"`
	Name               string             `json:"name"`
	Level              int                `json:"level"`
	Fame               float64            `json:"fame"`
	Experience         float64            `json:"experience"`
	Needs              progression.Needs  `json:"needs"`
	Luxury             progression.Luxury `json:"luxury"`
	TotalWorkouts      int                `json:"total_workouts"`
	TotalCreditsEarned float64            `json:"total_credits_earned"`
	LastWorkoutAt      *time.Time         `json:"last_workout_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NewAvatar creates a fresh avatar: all needs full, no luxury, level 1.
func NewAvatar(userID, name string, now time.Time) Avatar {
	return Avatar{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Level:     1,
		Needs:     progression.Needs{Hunger: 100, Hygiene: 100, Happiness: 100},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DecayState extracts the slice of avatar state the decay simulator reads.
func (a Avatar) DecayState() progression.DecayState {
	return progression.DecayState{Needs: a.Needs, Luxury: a.Luxury, Fame: a.Fame}
}

// CompletionUpdate is the partial update applied when a workout is
// completed. Like decay updates it is merged, not overwritten, into the
// persisted record.
type CompletionUpdate struct {
	FameDelta       float64 `json:"fame_delta"`
	ExperienceDelta float64 `json:"experience_delta"`
	CreditsDelta    float64 `json:"credits_delta"`
	NewLevel        *int    `json:"new_level,omitempty"`
}
