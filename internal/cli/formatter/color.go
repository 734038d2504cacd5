package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kintai-dev/kintai/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindStyle returns the style for a stamp kind: green for clock-ins, red
// for clock-outs.
func KindStyle(kind domain.StampKind) lipgloss.Style {
	if kind == domain.StampIn {
		return StyleGreen
	}
	return StyleRed
}

// SequenceBadge returns a colored label for a sequence classification, or
// "" for a normal stamp.
func SequenceBadge(s domain.SequenceStatus) string {
	switch s {
	case domain.SequenceDuplicate:
		return StyleRed.Render("● DUPLICATE: already recorded for this work date")
	case domain.SequenceMissingPriorOut:
		return StyleYellow.Render("● WARNING: previous clock-out was never recorded")
	case domain.SequenceMissingPriorIn:
		return StyleYellow.Render("● WARNING: clocking out without a clock-in")
	default:
		return ""
	}
}
