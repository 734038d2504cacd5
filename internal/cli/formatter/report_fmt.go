package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/service"
)

// MonthlyReport renders the full calendar grid: one row per day, the first
// two IN/OUT slots (actual and rounded) inline, extra stamps flagged, and
// the month total at the bottom.
func MonthlyReport(r *service.MonthlyReport) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %04d-%02d", r.EmployeeCode, r.Year, r.Month)
	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n\n")

	headers := []string{"Date", "Day", "In1", "(rnd)", "Out1", "(rnd)", "In2", "(rnd)", "Out2", "(rnd)", "More", "Hours"}
	rows := make([][]string, 0, len(r.Days))
	for _, d := range r.Days {
		rows = append(rows, reportRow(d))
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(StyleBold.Render(fmt.Sprintf("Month total: %s h", Hours(r.Total))))
	b.WriteString("\n")

	return b.String()
}

func reportRow(d *domain.DailySummary) []string {
	day := d.Day()
	weekday := StyleDim.Render(day.Format("Mon"))
	switch day.Weekday() {
	case time.Sunday:
		weekday = StyleRed.Render(day.Format("Mon"))
	case time.Saturday:
		weekday = StyleBlue.Render(day.Format("Mon"))
	}

	more := ""
	if n := extraSlots(d); n > 0 {
		more = StyleYellow.Render(fmt.Sprintf("+%d", n))
	}

	return []string{
		day.Format("01/02"),
		weekday,
		ClockActual(d.In(1)),
		StyleDim.Render(ClockRounded(d.In(1))),
		ClockActual(d.Out(1)),
		StyleDim.Render(ClockRounded(d.Out(1))),
		ClockActual(d.In(2)),
		StyleDim.Render(ClockRounded(d.In(2))),
		ClockActual(d.Out(2)),
		StyleDim.Render(ClockRounded(d.Out(2))),
		more,
		Hours(d.TotalWorked()),
	}
}

// extraSlots counts stamps beyond the second IN/OUT slot, up to the display
// limit.
func extraSlots(d *domain.DailySummary) int {
	n := 0
	for k := 3; k <= domain.MaxDisplaySlots; k++ {
		if d.In(k) != nil {
			n++
		}
		if d.Out(k) != nil {
			n++
		}
	}
	return n
}

// DayDetail renders every stamp of one day with full slot indexing, used
// after an edit.
func DayDetail(d *domain.DailySummary) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(d.WorkDate))
	b.WriteString("\n")

	headers := []string{"Slot", "Kind", "Actual", "Rounded"}
	var rows [][]string
	for k := 1; k <= domain.MaxDisplaySlots; k++ {
		if e := d.In(k); e != nil {
			rows = append(rows, []string{fmt.Sprintf("In%d", k), KindStyle(e.Kind).Render(string(e.Kind)), ClockActual(e), ClockRounded(e)})
		}
		if e := d.Out(k); e != nil {
			rows = append(rows, []string{fmt.Sprintf("Out%d", k), KindStyle(e.Kind).Render(string(e.Kind)), ClockActual(e), ClockRounded(e)})
		}
	}
	if len(rows) == 0 {
		b.WriteString(StyleDim.Render("no stamps"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(fmt.Sprintf("Total: %s h\n", Hours(d.TotalWorked())))
	return b.String()
}
