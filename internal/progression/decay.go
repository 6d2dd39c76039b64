package progression

import "fmt"

// Needs are the avatar's base upkeep attributes, each in [0,100].
type Needs struct {
	Hunger    float64 `json:"hunger"`
	Hygiene   float64 `json:"hygiene"`
	Happiness float64 `json:"happiness"`
}

// Luxury are the fame-driven lifestyle attributes, each in [0,100]. A fresh
// avatar starts with all of them at 0.
type Luxury struct {
	Spa         float64 `json:"spa"`
	Glam        float64 `json:"glam"`
	Outfits     float64 `json:"outfits"`
	Photoshoots float64 `json:"photoshoots"`
	Trips       float64 `json:"trips"`
	Posts       float64 `json:"posts"`
	Wellness    float64 `json:"wellness"`
	Petcare     float64 `json:"petcare"`
	Events      float64 `json:"events"`
	PR          float64 `json:"pr"`
}

// DecayState is the slice of avatar state the simulator reads.
type DecayState struct {
	Needs  Needs
	Luxury Luxury
	Fame   float64
}

// DecayUpdate is a partial update: nil fields are unchanged and the caller
// merges the rest into persisted state. Partial updates keep the blast
// radius small when a decay tick races a workout completion.
type DecayUpdate struct {
	Needs  *Needs   `json:"needs,omitempty"`
	Luxury *Luxury  `json:"luxury,omitempty"`
	Fame   *float64 `json:"fame,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u DecayUpdate) Empty() bool {
	return u.Needs == nil && u.Luxury == nil && u.Fame == nil
}

func decayed(value, rate, hours float64) float64 {
	v := value - rate*hours
	if v < 0 {
		return 0
	}
	return v
}

// SimulateDecay applies hoursPassed of decay at the rates of the avatar's
// current fame tier. The tier is resolved from the fame passed in on every
// call — fame can decay across a tier boundary, and the next tick must pick
// up the lower tier's rates. All results clamp at 0. Negative hoursPassed
// is a caller bug and is rejected rather than applied as a gain.
func (c *Catalog) SimulateDecay(state DecayState, hoursPassed float64) (DecayUpdate, error) {
	if hoursPassed < 0 {
		return DecayUpdate{}, fmt.Errorf("decay: negative hoursPassed %.2f", hoursPassed)
	}
	if hoursPassed == 0 {
		return DecayUpdate{}, nil
	}

	rates := c.CurrentFameTier(state.Fame).Decay

	update := DecayUpdate{}

	if rates.BaseRate > 0 {
		needs := Needs{
			Hunger:    decayed(state.Needs.Hunger, rates.BaseRate, hoursPassed),
			Hygiene:   decayed(state.Needs.Hygiene, rates.BaseRate, hoursPassed),
			Happiness: decayed(state.Needs.Happiness, rates.BaseRate, hoursPassed),
		}
		if needs != state.Needs {
			update.Needs = &needs
		}
	}

	if rates.LuxuryRate > 0 {
		lux := Luxury{
			Spa:         decayed(state.Luxury.Spa, rates.LuxuryRate, hoursPassed),
			Glam:        decayed(state.Luxury.Glam, rates.LuxuryRate, hoursPassed),
			Outfits:     decayed(state.Luxury.Outfits, rates.LuxuryRate, hoursPassed),
			Photoshoots: decayed(state.Luxury.Photoshoots, rates.LuxuryRate, hoursPassed),
			Trips:       decayed(state.Luxury.Trips, rates.LuxuryRate, hoursPassed),
			Posts:       decayed(state.Luxury.Posts, rates.LuxuryRate, hoursPassed),
			Wellness:    decayed(state.Luxury.Wellness, rates.LuxuryRate, hoursPassed),
			Petcare:     decayed(state.Luxury.Petcare, rates.LuxuryRate, hoursPassed),
			Events:      decayed(state.Luxury.Events, rates.LuxuryRate, hoursPassed),
			PR:          decayed(state.Luxury.PR, rates.LuxuryRate, hoursPassed),
		}
		if lux != state.Luxury {
			update.Luxury = &lux
		}
	}

	if rates.FameDecay > 0 {
		fame := decayed(state.Fame, rates.FameDecay, hoursPassed)
		if fame != state.Fame {
			update.Fame = &fame
		}
	}

	return update, nil
}
