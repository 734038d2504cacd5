package formatter

import (
	"math"
	"strconv"
	"time"

	"github.com/kintai-dev/kintai/internal/domain"
)

// Hours renders a duration as decimal hours, the way timesheets read:
// 7h30m -> "7.5". Zero renders as "-".
func Hours(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	h := math.Round(d.Hours()*100) / 100
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// ClockActual renders an event's actual time as local HH:MM, or "-" for
// nil. Stored events come back in UTC; the operator reads wall-clock time.
func ClockActual(e *domain.StampEvent) string {
	if e == nil {
		return "-"
	}
	return e.ActualTime.Local().Format("15:04")
}

// ClockRounded renders an event's rounded time as local HH:MM, or "-" for
// nil.
func ClockRounded(e *domain.StampEvent) string {
	if e == nil {
		return "-"
	}
	return e.RoundedTime.Local().Format("15:04")
}
