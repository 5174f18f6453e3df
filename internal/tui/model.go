package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/contribgo/internal/calculation"
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/rgehrsitz/contribgo/internal/tui/components"
)

// Model is the interactive what-if view for a single profile
type Model struct {
	engine  *calculation.Engine
	profile *domain.Profile

	report   *domain.PlanReport
	slider   *components.RateSlider
	scenario domain.ScenarioProjection

	keys keyMap
	help help.Model

	width  int
	height int

	err     error
	loading bool
}

// NewModel creates a model that plans profile with engine on Init
func NewModel(engine *calculation.Engine, profile *domain.Profile) Model {
	return Model{
		engine:  engine,
		profile: profile,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
		loading: true,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return planCmd(m.engine, m.profile)
}

// planCmd runs the plan off the update loop
func planCmd(engine *calculation.Engine, profile *domain.Profile) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.Plan(context.Background(), profile)
		return PlanLoadedMsg{Report: report, Err: err}
	}
}

// Rate returns the current what-if rate
func (m Model) Rate() decimal.Decimal {
	if m.slider == nil {
		return decimal.Zero
	}
	return m.slider.Value
}

// Scenario returns the projection for the current rate
func (m Model) Scenario() domain.ScenarioProjection {
	return m.scenario
}

// Report returns the loaded plan, nil until PlanLoadedMsg arrives
func (m Model) Report() *domain.PlanReport {
	return m.report
}

// initialRate picks the starting slider position: the first configured
// what-if rate, otherwise the required rate
func initialRate(report *domain.PlanReport) decimal.Decimal {
	if len(report.Scenarios) > 0 {
		return report.Scenarios[0].AdjustedRate
	}
	return report.Plan.RequiredPercent
}

// recompute refreshes the projection for the slider's current rate
func (m *Model) recompute() {
	if m.report == nil || m.slider == nil {
		return
	}
	m.scenario = calculation.ComputeScenario(
		m.slider.Value,
		m.report.Plan.RemainingGrossPay,
		m.report.YTD,
		m.report.Goal,
	)
}
