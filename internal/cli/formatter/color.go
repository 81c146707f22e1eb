package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twillhq/talentboard/internal/alerts"
	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/pipeline"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// WaitStyle returns the colour for a candidate's waiting level.
func WaitStyle(level pipeline.WaitLevel) lipgloss.Style {
	switch level {
	case pipeline.WaitCritical:
		return StyleRed
	case pipeline.WaitUrgent:
		return StyleYellow.Bold(true)
	case pipeline.WaitWarning:
		return StyleYellow
	default:
		return StyleFg
	}
}

// TierBadge renders "● CRITICAL" or "● URGENT".
func TierBadge(tier alerts.Tier) string {
	if tier == alerts.TierCritical {
		return StyleRed.Render("● CRITICAL")
	}
	return StyleYellow.Render("● URGENT")
}

func PriorityPill(p domain.RolePriority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ High")
	case domain.PriorityLow:
		return StyleFg.Render("● Low")
	case domain.PriorityDeprioritized:
		return StyleDim.Render("▽ Deprioritized")
	default:
		return StyleDim.Render(string(p))
	}
}

// StageBadge colours a stage label by its pipeline position.
func StageBadge(s domain.Stage) string {
	label := s.Label()
	switch {
	case s.IsRejection():
		return StyleDim.Render(label)
	case s.IsTerminalSuccess():
		return StyleGreen.Bold(true).Render(label)
	case s.IsFinalStage():
		return StyleGreen.Render(label)
	case s.IsMiddleStage():
		return StyleBlue.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
