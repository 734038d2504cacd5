package formatter

import (
	"fmt"
	"strings"

	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/faceid"
	"github.com/kintai-dev/kintai/internal/service"
)

func kindLabel(kind domain.StampKind) string {
	if kind == domain.StampIn {
		return "clock-in"
	}
	return "clock-out"
}

// Matched announces a successful identification.
func Matched(m *faceid.Match) string {
	return StyleGreen.Render(fmt.Sprintf("Identified %s (%s), score %.2f", m.Employee.Name, m.Employee.Code, m.Score))
}

// NoMatch announces that no gallery entry exceeded the acceptance
// threshold.
func NoMatch() string {
	return StyleYellow.Render(fmt.Sprintf("No match above threshold %.2f", faceid.MatchThreshold))
}

// StampPreview renders the confirmation view: the derived stamp plus any
// sequence warning and the previous event for context.
func StampPreview(e *domain.Employee, p *service.StampPreview) string {
	var b strings.Builder

	kind := KindStyle(p.Event.Kind).Render(kindLabel(p.Event.Kind))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StyleBold.Render(e.Name),
		kind,
		p.Event.ActualTime.Format("15:04:05"),
	))
	b.WriteString(StyleDim.Render(fmt.Sprintf("work date %s, rounded %s",
		p.Event.WorkDate, p.Event.RoundedTime.Format("15:04"))))
	b.WriteString("\n")

	if p.Latest != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf("previous: %s %s on %s",
			kindLabel(p.Latest.Kind), p.Latest.ActualTime.Local().Format("15:04"), p.Latest.WorkDate)))
		b.WriteString("\n")
	}

	if badge := SequenceBadge(p.Sequence); badge != "" {
		b.WriteString(badge)
		b.WriteString("\n")
	}

	return b.String()
}

// StampRecorded confirms a committed stamp.
func StampRecorded(e *domain.Employee, r *service.StampResult) string {
	msg := fmt.Sprintf("Recorded %s for %s at %s (work date %s)",
		kindLabel(r.Event.Kind), e.Name,
		r.Event.ActualTime.Format("15:04:05"), r.Event.WorkDate)
	return StyleGreen.Render(msg)
}
