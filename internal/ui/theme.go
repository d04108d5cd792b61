package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

const (
	IconDone    = "✓"
	IconOpen    = "·"
	IconRating  = "★"
	IconWarn    = "⚠"
	IconError   = "✗"
	IconCurrent = "●"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	H2    = lipgloss.NewStyle().Bold(true)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
)

func Heading(icon, text string) string {
	return Title.Render(icon + " " + text)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func Check(done bool) string {
	if done {
		return Good.Render(IconDone)
	}
	return Muted.Render(IconOpen)
}

// Rating renders a day rating; nil and the "nothing to rate" sentinel show as a dash.
func Rating(v *int) string {
	if v == nil || *v == domain.RatingNothingToRate {
		return Muted.Render("-")
	}
	switch {
	case *v >= 8:
		return Good.Render(fmt.Sprintf("%s %d", IconRating, *v))
	case *v >= 5:
		return Gold.Render(fmt.Sprintf("%s %d", IconRating, *v))
	default:
		return Warn.Render(fmt.Sprintf("%s %d", IconRating, *v))
	}
}

// SlotText draws content in its palette colours.
func SlotText(content string, c *domain.Color) string {
	if c == nil {
		return content
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text)).
		Background(lipgloss.Color(c.Background)).
		Padding(0, 1).
		Render(content)
}
