package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/contribgo/internal/tui/tuistyles"
)

// RateSlider displays an adjustable contribution rate with a visual track
type RateSlider struct {
	Label      string
	Value      decimal.Decimal
	Min        decimal.Decimal
	Max        decimal.Decimal
	FineStep   decimal.Decimal
	CoarseStep decimal.Decimal
	Width      int
	Marker     *decimal.Decimal // optional reference point drawn on the track
	IsFocused  bool
}

// NewRateSlider creates a 0..100% slider moving 0.5 points per fine step and
// 5 points per coarse step
func NewRateSlider(label string, value decimal.Decimal) *RateSlider {
	s := &RateSlider{
		Label:      label,
		Min:        decimal.Zero,
		Max:        decimal.NewFromInt(100),
		FineStep:   decimal.NewFromFloat(0.5),
		CoarseStep: decimal.NewFromInt(5),
		Width:      40,
		IsFocused:  true,
	}
	s.SetValue(value)
	return s
}

// WithWidth sets the track width
func (s *RateSlider) WithWidth(width int) *RateSlider {
	s.Width = width
	return s
}

// WithMarker marks a reference rate, typically the required rate
func (s *RateSlider) WithMarker(rate decimal.Decimal) *RateSlider {
	s.Marker = &rate
	return s
}

// Step moves the value by n fine steps (negative moves down), clamped
func (s *RateSlider) Step(n int) {
	s.SetValue(s.Value.Add(s.FineStep.Mul(decimal.NewFromInt(int64(n)))))
}

// Jump moves the value by n coarse steps, clamped
func (s *RateSlider) Jump(n int) {
	s.SetValue(s.Value.Add(s.CoarseStep.Mul(decimal.NewFromInt(int64(n)))))
}

// SetValue sets the value directly, clamping to min/max
func (s *RateSlider) SetValue(v decimal.Decimal) {
	s.Value = decimal.Max(s.Min, decimal.Min(s.Max, v))
}

// Fraction returns the position of v within the range as 0..1
func (s *RateSlider) Fraction(v decimal.Decimal) float64 {
	span := s.Max.Sub(s.Min)
	if !span.IsPositive() {
		return 0
	}
	return v.Sub(s.Min).Div(span).InexactFloat64()
}

// Render returns the styled slider
func (s *RateSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(labelStyle.Render(s.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(s.Value.StringFixed(1) + "%"))
	content.WriteString("\n")

	content.WriteString(s.renderTrack())
	content.WriteString("\n")

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	left := s.Min.String() + "%"
	right := s.Max.String() + "%"
	pad := s.Width + 2 - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	content.WriteString(rangeStyle.Render(left + strings.Repeat(" ", pad) + right))

	return content.String()
}

// cell maps a value to a track position
func (s *RateSlider) cell(v decimal.Decimal) int {
	if s.Width <= 0 {
		return 0
	}
	pos := int(s.Fraction(v) * float64(s.Width-1))
	if pos < 0 {
		return 0
	}
	if pos > s.Width-1 {
		return s.Width - 1
	}
	return pos
}

// renderTrack draws the bar with the thumb and optional marker
func (s *RateSlider) renderTrack() string {
	thumb := s.cell(s.Value)
	marker := -1
	if s.Marker != nil && !s.Marker.GreaterThan(s.Max) && !s.Marker.LessThan(s.Min) {
		marker = s.cell(*s.Marker)
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if s.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}
	markerStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < s.Width; i++ {
		switch {
		case i == thumb:
			bar.WriteString(thumbStyle.Render("●"))
		case i == marker:
			bar.WriteString(markerStyle.Render("|"))
		case i < thumb:
			bar.WriteString(tuistyles.SliderThumbStyle.Render("━"))
		default:
			bar.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}

// RenderCompact returns a single-line version
func (s *RateSlider) RenderCompact() string {
	return fmt.Sprintf("%s %s",
		tuistyles.ParameterLabelStyle.Render(s.Label+":"),
		tuistyles.ParameterValueStyle.Render(s.Value.StringFixed(1)+"%"))
}
