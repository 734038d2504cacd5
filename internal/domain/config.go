package domain

// RoundingConfig controls how raw stamp times are snapped for duration
// accounting. The actual time is always retained separately for audit.
type RoundingConfig struct {
	// IntervalMin is the rounding granularity in minutes: 0 (off), 15 or 30.
	IntervalMin int

	InDirection  RoundingDirection
	OutDirection RoundingDirection
}

// Direction returns the rounding direction configured for the given stamp
// kind.
func (c RoundingConfig) Direction(kind StampKind) RoundingDirection {
	if kind == StampIn {
		return c.InDirection
	}
	return c.OutDirection
}

// CutoffConfig defines the instant each calendar day that separates
// yesterday's business date from today's. By configuration contract the hour
// stays in the 0-11 early-morning range, though the resolver works for any
// value.
type CutoffConfig struct {
	Hour   int
	Minute int
}

// Settings is the persisted terminal configuration.
type Settings struct {
	Rounding RoundingConfig
	Cutoff   CutoffConfig
}

// DefaultSettings returns the configuration used before an operator changes
// anything: rounding off, cutoff at midnight.
func DefaultSettings() Settings {
	return Settings{
		Rounding: RoundingConfig{
			IntervalMin:  0,
			InDirection:  RoundUp,
			OutDirection: RoundDown,
		},
		Cutoff: CutoffConfig{Hour: 0, Minute: 0},
	}
}

// Clamp coerces out-of-range values to the nearest valid ones. Loaded
// settings are clamped rather than rejected so a bad row can never wedge the
// terminal.
func (s Settings) Clamp() Settings {
	switch s.Rounding.IntervalMin {
	case 0, 15, 30:
	default:
		s.Rounding.IntervalMin = 0
	}
	if s.Rounding.InDirection != RoundDown {
		s.Rounding.InDirection = RoundUp
	}
	if s.Rounding.OutDirection != RoundUp {
		s.Rounding.OutDirection = RoundDown
	}
	if s.Cutoff.Hour < 0 {
		s.Cutoff.Hour = 0
	}
	if s.Cutoff.Hour > 11 {
		s.Cutoff.Hour = 11
	}
	if s.Cutoff.Minute < 0 {
		s.Cutoff.Minute = 0
	}
	if s.Cutoff.Minute > 59 {
		s.Cutoff.Minute = 59
	}
	return s
}
