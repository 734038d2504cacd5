// Package timeclock holds the attendance rule engine: time rounding, business
// work-date resolution, stamp sequence classification and monthly summary
// reconstruction. Everything here is pure and safe to call concurrently.
package timeclock

import (
	"time"

	"github.com/kintai-dev/kintai/internal/domain"
)

// Round snaps a raw stamp time to the configured interval using the rounding
// direction configured for the stamp kind. With IntervalMin == 0 the actual
// time is returned unchanged, seconds and all.
//
// Otherwise the result is the containing hour plus the rounded minute-of-hour;
// seconds and sub-seconds are discarded. A rounded minute of 60 carries into
// the next hour.
func Round(actual time.Time, kind domain.StampKind, cfg domain.RoundingConfig) time.Time {
	interval := cfg.IntervalMin
	if interval <= 0 {
		return actual
	}

	minute := actual.Minute()
	var rounded int
	if cfg.Direction(kind) == domain.RoundUp {
		rounded = (minute + interval - 1) / interval * interval
	} else {
		rounded = minute / interval * interval
	}

	hour := time.Date(actual.Year(), actual.Month(), actual.Day(), actual.Hour(), 0, 0, 0, actual.Location())
	return hour.Add(time.Duration(rounded) * time.Minute)
}
