package progression

// CurrentFameTier returns the highest fame tier whose threshold is at or
// below the given fame. The first tier requires 0 fame, so this is total.
func (c *Catalog) CurrentFameTier(fame float64) FameTier {
	current := c.FameTiers[0]
	for _, t := range c.FameTiers {
		if t.FameRequired <= fame {
			current = t
		}
	}
	return current
}

// NextFameTier returns the tier after the current one, or nil at the top of
// the ladder.
func (c *Catalog) NextFameTier(fame float64) *FameTier {
	current := c.CurrentFameTier(fame)
	for i, t := range c.FameTiers {
		if t.Level == current.Level && i+1 < len(c.FameTiers) {
			next := c.FameTiers[i+1]
			return &next
		}
	}
	return nil
}

// LevelProgress reports progress from the current fame tier toward the next.
type LevelProgress struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Percent  float64 `json:"percent"`
}

// Progress computes the progress-bar position for the given fame. At the top
// tier the bar is pinned to 100%.
func (c *Catalog) Progress(fame float64) LevelProgress {
	current := c.CurrentFameTier(fame)
	next := c.NextFameTier(fame)
	if next == nil {
		return LevelProgress{Current: fame - current.FameRequired, Percent: 100}
	}

	p := LevelProgress{
		Current:  fame - current.FameRequired,
		Required: next.FameRequired - current.FameRequired,
	}
	p.Percent = p.Current / p.Required * 100
	if p.Percent < 0 {
		p.Percent = 0
	}
	if p.Percent > 100 {
		p.Percent = 100
	}
	return p
}

// CurrentDifficultyTier returns the highest difficulty tier unlocked by the
// given level and fame. Tier 1 unlocks at {fame 0, level 1}, so this is
// total for any level ≥ 1.
func (c *Catalog) CurrentDifficultyTier(level int, fame float64) DifficultyTier {
	current := c.DifficultyTiers[0]
	for _, t := range c.DifficultyTiers {
		if t.Unlock.MinFame <= fame && t.Unlock.MinLevel <= level {
			current = t
		}
	}
	return current
}

// CheckLevelUp reports whether the avatar's fame has outgrown its persisted
// level: it returns the tier following storedLevel once that tier's
// threshold is met, or nil. The caller applies the level-up and any side
// effects; the tier itself is never cached in persisted state.
func (c *Catalog) CheckLevelUp(storedLevel int, fame float64) *FameTier {
	for _, t := range c.FameTiers {
		if t.Level == storedLevel+1 {
			if t.FameRequired <= fame {
				next := t
				return &next
			}
			return nil
		}
	}
	return nil
}
