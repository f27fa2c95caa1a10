package scheduling

// SlotConfig carries the injected slot-generation defaults: session length,
// buffer gap, and the fallback grid used when a provider has no usable
// schedule for a day. It is plain data so tests and deployments can override
// it without touching package state.
type SlotConfig struct {
	DurationMin int    // session length, minutes
	GapMin      int    // buffer between sessions, minutes
	GridStart   string // fallback grid first slot, e.g. "09:00"
	GridEnd     string // fallback grid last slot (inclusive), e.g. "18:00"
	GridStepMin int    // fallback grid spacing, minutes
}

// DefaultSlotConfig returns the stock configuration: 50-minute sessions with
// a 10-minute gap, and an hourly 09:00-18:00 fallback grid.
func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		DurationMin: 50,
		GapMin:      10,
		GridStart:   "09:00",
		GridEnd:     "18:00",
		GridStepMin: 60,
	}
}

// GenerateSlots turns one (start, end) window into an ordered list of
// discrete slot start keys. A slot is emitted every duration+gap minutes as
// long as the full session still fits before the window's end, so no session
// ever runs past the provider's stated hours. Unparsable bounds yield nil;
// an inverted window yields an empty result, which is a valid
// no-slots-today outcome rather than an error.
func GenerateSlots(startClock, endClock string, durationMin, gapMin int) []string {
	start, ok := ParseClock(startClock)
	if !ok {
		return nil
	}
	end, ok := ParseClock(endClock)
	if !ok {
		return nil
	}
	return generateFromMinutes(start.MinuteOfDay(), end.MinuteOfDay(), durationMin, gapMin)
}

func generateFromMinutes(startMin, endMin, durationMin, gapMin int) []string {
	step := durationMin + gapMin
	if durationMin <= 0 || step <= 0 {
		return nil
	}
	var slots []string
	for t := startMin; t+durationMin <= endMin; t += step {
		slots = append(slots, FormatClock(t/60, t%60))
	}
	return slots
}

// defaultGrid produces the configured fallback grid, inclusive of both
// bounds. With stock configuration that is ten hourly slots 09:00-18:00.
func (cfg SlotConfig) defaultGrid() []string {
	start, ok := ParseClock(cfg.GridStart)
	if !ok {
		return nil
	}
	end, ok := ParseClock(cfg.GridEnd)
	if !ok {
		return nil
	}
	step := cfg.GridStepMin
	if step <= 0 {
		step = 60
	}
	var slots []string
	for t := start.MinuteOfDay(); t <= end.MinuteOfDay(); t += step {
		slots = append(slots, FormatClock(t/60, t%60))
	}
	return slots
}
