package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/contribgo/internal/output"
	"github.com/rgehrsitz/contribgo/internal/tui/tuistyles"
)

// GoalProgress shows year-to-date contributions against the annual goal
type GoalProgress struct {
	YTD   decimal.Decimal
	Goal  decimal.Decimal
	Width int
	Label string
}

// NewGoalProgress creates a progress bar for ytd toward goal
func NewGoalProgress(ytd, goal decimal.Decimal) *GoalProgress {
	return &GoalProgress{
		YTD:   ytd,
		Goal:  goal,
		Width: 40,
	}
}

// WithLabel sets the label shown above the bar
func (p *GoalProgress) WithLabel(label string) *GoalProgress {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *GoalProgress) WithWidth(width int) *GoalProgress {
	p.Width = width
	return p
}

// Percentage returns the clamped 0..100 completion
func (p *GoalProgress) Percentage() decimal.Decimal {
	return output.ProgressPercent(p.YTD, p.Goal)
}

// IsComplete reports whether the goal has been reached
func (p *GoalProgress) IsComplete() bool {
	return p.Percentage().GreaterThanOrEqual(decimal.NewFromInt(100))
}

// Render returns the styled bar
func (p *GoalProgress) Render() string {
	var content strings.Builder

	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(p.Label))
		content.WriteString("\n")
	}

	pct := p.Percentage()
	filled := int(pct.Mul(decimal.NewFromInt(int64(p.Width))).Div(decimal.NewFromInt(100)).IntPart())
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	content.WriteString("] ")

	percentStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(percentStyle.Render(pct.StringFixed(1) + "%"))
	content.WriteString(" • ")
	content.WriteString(countStyle.Render(fmt.Sprintf("%s of %s",
		tuistyles.FormatCurrency(p.YTD), tuistyles.FormatCurrency(p.Goal))))

	return content.String()
}
