package timeclock

import (
	"fmt"
	"time"

	"github.com/kintai-dev/kintai/internal/domain"
)

// BuildMonth reconstructs one DailySummary per calendar day of the given
// month from a flat event list, zero-event days included, so the caller gets
// a complete calendar grid. Events whose work date falls outside the month
// are ignored.
func BuildMonth(employeeCode string, year int, month time.Month, events []*domain.StampEvent) []*domain.DailySummary {
	byDate := make(map[string][]*domain.StampEvent)
	for _, e := range events {
		byDate[e.WorkDate] = append(byDate[e.WorkDate], e)
	}

	days := daysInMonth(year, month)
	summaries := make([]*domain.DailySummary, 0, days)
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		summaries = append(summaries, &domain.DailySummary{
			EmployeeCode: employeeCode,
			WorkDate:     date,
			Events:       byDate[date],
		})
	}
	return summaries
}

// TotalForMonth sums TotalWorked across a month of summaries.
func TotalForMonth(summaries []*domain.DailySummary) time.Duration {
	var total time.Duration
	for _, d := range summaries {
		total += d.TotalWorked()
	}
	return total
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
