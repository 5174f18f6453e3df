package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/contribgo/internal/tui/tuistyles"
)

// MetricCard displays a single figure with a label and optional outcome line
type MetricCard struct {
	Label       string
	Value       string
	Outcome     *Outcome
	Description string
	Width       int
}

// Outcome is a signed amount shown under the value, such as a surplus or
// shortfall against the goal
type Outcome struct {
	Amount decimal.Decimal
	Text   string
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithOutcome adds a colored outcome line
func (m *MetricCard) WithOutcome(amount decimal.Decimal, text string) *MetricCard {
	m.Outcome = &Outcome{Amount: amount, Text: text}
	return m
}

// WithDescription adds a subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) outcomeLine() string {
	if m.Outcome == nil {
		return ""
	}
	style := tuistyles.OutcomeStyle(m.Outcome.Amount)
	return style.Render(fmt.Sprintf("%s %s", tuistyles.OutcomeIndicator(m.Outcome.Amount), m.Outcome.Text))
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(m.Value)
	if line := m.outcomeLine(); line != "" {
		content += "\n" + line
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(content)
}

// RenderCompact returns an inline version without border
func (m *MetricCard) RenderCompact() string {
	s := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if line := m.outcomeLine(); line != "" {
		s += " " + line
	}
	return s
}

// MetricGrid renders cards in rows of the given column count
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	var current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
