package progression

import "fmt"

// DecayRates holds the per-hour decay applied while an avatar sits in a fame
// tier. MinimumFloor is display data shown next to the tier; the simulator
// clamps at zero, not at the floor.
type DecayRates struct {
	BaseRate     float64 `json:"base_rate"`
	LuxuryRate   float64 `json:"luxury_rate"`
	MinimumFloor float64 `json:"minimum_floor"`
	FameDecay    float64 `json:"fame_decay_rate"`
}

// FameTier is one bracket of the fame progression ladder. Tiers are kept in
// ascending FameRequired order; the first tier requires 0 fame so resolution
// always succeeds.
type FameTier struct {
	Level               int        `json:"level"`
	Name                string     `json:"name"`
	Emoji               string     `json:"emoji"`
	FameRequired        float64    `json:"fame_required"`
	NeedsMultiplier     float64    `json:"needs_multiplier"`
	IntensityMultiplier float64    `json:"exercise_intensity_multiplier"`
	CreditMultiplier    float64    `json:"credit_multiplier"`
	Decay               DecayRates `json:"decay"`
}

// TierUnlock is the combined requirement for an exercise difficulty tier.
type TierUnlock struct {
	MinFame  float64 `json:"min_fame"`
	MinLevel int     `json:"min_level"`
}

// DifficultyTier is one bracket of the exercise difficulty ladder. A tier is
// reachable only when both unlock conditions hold.
type DifficultyTier struct {
	Level               int        `json:"level"`
	Name                string     `json:"name"`
	BaseSets            int        `json:"base_sets"`
	BaseReps            int        `json:"base_reps"`
	BaseDurationSeconds int        `json:"base_duration_seconds"`
	IntensityMultiplier float64    `json:"intensity_multiplier"`
	CreditReward        int        `json:"credit_reward"`
	Unlock              TierUnlock `json:"unlock"`
}

// TierProgression is a single exercise's prescription at one difficulty tier.
// Reps is either a count ("12") or a duration label ("45s") for hold- and
// time-based movements.
type TierProgression struct {
	Sets            int    `json:"sets"`
	Reps            string `json:"reps"`
	DurationSeconds int    `json:"duration_seconds"`
}

// ExerciseTemplate describes one exercise and its prescription per
// difficulty tier level.
type ExerciseTemplate struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Progression map[int]TierProgression `json:"progression"`
}

// Catalog bundles every static table the engine reads. It is built once at
// startup, validated, and never mutated afterwards, so all engine calls are
// safe for concurrent use.
type Catalog struct {
	FameTiers       []FameTier
	DifficultyTiers []DifficultyTier
	Exercises       map[string]ExerciseTemplate
	GoalProfiles    map[string]GoalProfile
	WeekdayPolicy   map[int][]int
	SessionLibrary  map[SessionKey]SessionTemplate
}

// DefaultCatalog returns the built-in tier, exercise, and session tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		FameTiers:       defaultFameTiers,
		DifficultyTiers: defaultDifficultyTiers,
		Exercises:       defaultExercises,
		GoalProfiles:    defaultGoalProfiles,
		WeekdayPolicy:   defaultWeekdayPolicy,
		SessionLibrary:  defaultSessionLibrary,
	}
}

// Validate checks the catalog's structural invariants. Any failure is a
// configuration error: the process should refuse to start rather than
// resolve tiers incorrectly at call time.
func (c *Catalog) Validate() error {
	if len(c.FameTiers) == 0 {
		return fmt.Errorf("catalog: no fame tiers")
	}
	if c.FameTiers[0].FameRequired != 0 {
		return fmt.Errorf("catalog: first fame tier must require 0 fame, got %.1f", c.FameTiers[0].FameRequired)
	}
	for i := 1; i < len(c.FameTiers); i++ {
		if c.FameTiers[i].FameRequired <= c.FameTiers[i-1].FameRequired {
			return fmt.Errorf("catalog: fame tier %q threshold %.1f not above previous %.1f",
				c.FameTiers[i].Name, c.FameTiers[i].FameRequired, c.FameTiers[i-1].FameRequired)
		}
	}

	if len(c.DifficultyTiers) == 0 {
		return fmt.Errorf("catalog: no difficulty tiers")
	}
	if u := c.DifficultyTiers[0].Unlock; u.MinFame != 0 || u.MinLevel != 1 {
		return fmt.Errorf("catalog: first difficulty tier must unlock at {fame 0, level 1}, got {%.1f, %d}", u.MinFame, u.MinLevel)
	}
	for i := 1; i < len(c.DifficultyTiers); i++ {
		prev, cur := c.DifficultyTiers[i-1].Unlock, c.DifficultyTiers[i].Unlock
		if cur.MinFame < prev.MinFame || cur.MinLevel < prev.MinLevel {
			return fmt.Errorf("catalog: difficulty tier %q unlock regresses", c.DifficultyTiers[i].Name)
		}
	}

	for name, tmpl := range c.Exercises {
		if _, ok := tmpl.Progression[1]; !ok {
			return fmt.Errorf("catalog: exercise %q missing tier-1 progression", name)
		}
		for _, dt := range c.DifficultyTiers {
			if _, ok := tmpl.Progression[dt.Level]; !ok {
				return fmt.Errorf("catalog: exercise %q missing progression for tier %d", name, dt.Level)
			}
		}
	}

	if _, ok := c.GoalProfiles[DefaultGoalKey]; !ok {
		return fmt.Errorf("catalog: missing %q goal profile", DefaultGoalKey)
	}
	for key, profile := range c.GoalProfiles {
		if len(profile.SessionTypes) == 0 {
			return fmt.Errorf("catalog: goal profile %q allows no session types", key)
		}
	}

	if _, ok := c.WeekdayPolicy[defaultWorkoutsPerWeek]; !ok {
		return fmt.Errorf("catalog: weekday policy missing %d/week fallback entry", defaultWorkoutsPerWeek)
	}
	for freq, days := range c.WeekdayPolicy {
		if len(days) != freq {
			return fmt.Errorf("catalog: weekday policy for %d/week lists %d days", freq, len(days))
		}
		for _, d := range days {
			if d < 0 || d > 6 {
				return fmt.Errorf("catalog: weekday policy for %d/week has invalid weekday %d", freq, d)
			}
		}
	}

	for _, skill := range []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced} {
		for _, st := range []SessionType{SessionStrength, SessionCardio, SessionFlexibility, SessionMixed} {
			if _, ok := c.SessionLibrary[SessionKey{Type: st, Skill: skill}]; !ok {
				return fmt.Errorf("catalog: session library missing template for %s/%s", st, skill)
			}
		}
	}

	return nil
}

var defaultFameTiers = []FameTier{
	{
		Level: 1, Name: "Micro Influencer", Emoji: "📱", FameRequired: 0,
		NeedsMultiplier: 1.0, IntensityMultiplier: 1.0, CreditMultiplier: 1.0,
		Decay: DecayRates{BaseRate: 0.5, LuxuryRate: 0.2, MinimumFloor: 0, FameDecay: 0},
	},
	{
		Level: 2, Name: "Rising Star", Emoji: "✨", FameRequired: 200,
		NeedsMultiplier: 1.2, IntensityMultiplier: 1.1, CreditMultiplier: 1.2,
		Decay: DecayRates{BaseRate: 0.8, LuxuryRate: 0.4, MinimumFloor: 5, FameDecay: 0.1},
	},
	{
		Level: 3, Name: "Trendsetter", Emoji: "💅", FameRequired: 500,
		NeedsMultiplier: 1.5, IntensityMultiplier: 1.25, CreditMultiplier: 1.5,
		Decay: DecayRates{BaseRate: 1.0, LuxuryRate: 0.6, MinimumFloor: 10, FameDecay: 0.25},
	},
	{
		Level: 4, Name: "Socialite", Emoji: "🥂", FameRequired: 1000,
		NeedsMultiplier: 1.8, IntensityMultiplier: 1.4, CreditMultiplier: 2.0,
		Decay: DecayRates{BaseRate: 1.3, LuxuryRate: 0.8, MinimumFloor: 15, FameDecay: 0.5},
	},
	{
		Level: 5, Name: "Celebrity", Emoji: "🌟", FameRequired: 2500,
		NeedsMultiplier: 2.2, IntensityMultiplier: 1.6, CreditMultiplier: 2.5,
		Decay: DecayRates{BaseRate: 1.6, LuxuryRate: 1.0, MinimumFloor: 20, FameDecay: 0.8},
	},
	{
		Level: 6, Name: "Icon", Emoji: "👑", FameRequired: 5000,
		NeedsMultiplier: 2.6, IntensityMultiplier: 1.8, CreditMultiplier: 3.0,
		Decay: DecayRates{BaseRate: 2.0, LuxuryRate: 1.2, MinimumFloor: 25, FameDecay: 1.2},
	},
}

var defaultDifficultyTiers = []DifficultyTier{
	{Level: 1, Name: "Warm-Up", BaseSets: 2, BaseReps: 8, BaseDurationSeconds: 30,
		IntensityMultiplier: 1.0, CreditReward: 10, Unlock: TierUnlock{MinFame: 0, MinLevel: 1}},
	{Level: 2, Name: "Novice", BaseSets: 3, BaseReps: 10, BaseDurationSeconds: 45,
		IntensityMultiplier: 1.15, CreditReward: 15, Unlock: TierUnlock{MinFame: 100, MinLevel: 2}},
	{Level: 3, Name: "Intermediate", BaseSets: 3, BaseReps: 12, BaseDurationSeconds: 60,
		IntensityMultiplier: 1.3, CreditReward: 22, Unlock: TierUnlock{MinFame: 300, MinLevel: 3}},
	{Level: 4, Name: "Advanced", BaseSets: 4, BaseReps: 12, BaseDurationSeconds: 75,
		IntensityMultiplier: 1.5, CreditReward: 30, Unlock: TierUnlock{MinFame: 700, MinLevel: 4}},
	{Level: 5, Name: "Elite", BaseSets: 4, BaseReps: 15, BaseDurationSeconds: 90,
		IntensityMultiplier: 1.75, CreditReward: 40, Unlock: TierUnlock{MinFame: 1500, MinLevel: 5}},
	{Level: 6, Name: "Legendary", BaseSets: 5, BaseReps: 15, BaseDurationSeconds: 120,
		IntensityMultiplier: 2.0, CreditReward: 55, Unlock: TierUnlock{MinFame: 3000, MinLevel: 6}},
}
