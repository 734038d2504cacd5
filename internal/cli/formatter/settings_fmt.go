package formatter

import (
	"fmt"
	"strings"

	"github.com/kintai-dev/kintai/internal/domain"
)

// Settings renders the terminal configuration.
func Settings(s domain.Settings) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("SETTINGS"))
	b.WriteString("\n")

	interval := "off"
	if s.Rounding.IntervalMin > 0 {
		interval = fmt.Sprintf("%d min", s.Rounding.IntervalMin)
	}
	b.WriteString(fmt.Sprintf("Rounding interval:  %s\n", interval))
	b.WriteString(fmt.Sprintf("Clock-in rounding:  %s\n", s.Rounding.InDirection))
	b.WriteString(fmt.Sprintf("Clock-out rounding: %s\n", s.Rounding.OutDirection))
	b.WriteString(fmt.Sprintf("Day cutoff:         %02d:%02d\n", s.Cutoff.Hour, s.Cutoff.Minute))
	return b.String()
}
