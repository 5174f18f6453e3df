package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/contribgo/internal/tui/components"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case PlanLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.report = msg.Report
		m.slider = components.NewRateSlider("What-if rate", initialRate(msg.Report)).
			WithMarker(msg.Report.Plan.RequiredPercent)
		m.recompute()
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.slider == nil {
		return m, nil
	}

	before := m.slider.Value
	switch {
	case key.Matches(msg, m.keys.Down):
		m.slider.Step(-1)
	case key.Matches(msg, m.keys.Up):
		m.slider.Step(1)
	case key.Matches(msg, m.keys.JumpDown):
		m.slider.Jump(-1)
	case key.Matches(msg, m.keys.JumpUp):
		m.slider.Jump(1)
	case key.Matches(msg, m.keys.Reset):
		m.slider.SetValue(m.report.Plan.RequiredPercent)
	default:
		return m, nil
	}

	if m.slider.Value.Equal(before) {
		return m, nil
	}
	m.recompute()
	scenario := m.scenario
	return m, func() tea.Msg { return RateChangedMsg{Scenario: scenario} }
}
