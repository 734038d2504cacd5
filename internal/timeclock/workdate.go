package timeclock

import (
	"time"

	"github.com/kintai-dev/kintai/internal/domain"
)

// ResolveWorkDate decides which business date a stamp counts toward. A
// time-of-day strictly earlier than the cutoff belongs to the previous
// calendar day, so a 01:00 clock-out lands on yesterday's shift when the
// cutoff is later than 01:00. At or after the cutoff the stamp belongs to
// its own calendar day.
func ResolveWorkDate(actual time.Time, cutoff domain.CutoffConfig) string {
	tod := actual.Hour()*3600 + actual.Minute()*60 + actual.Second()
	if tod < cutoff.Hour*3600+cutoff.Minute*60 {
		return actual.AddDate(0, 0, -1).Format(domain.WorkDateLayout)
	}
	return actual.Format(domain.WorkDateLayout)
}
