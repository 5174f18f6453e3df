package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/contribgo/internal/calculation"
	"github.com/rgehrsitz/contribgo/internal/domain"
)

func testProfile() *domain.Profile {
	goal := decimal.NewFromInt(23500)
	return &domain.Profile{
		Name:              "alex",
		Salary:            decimal.NewFromInt(130000),
		YTD:               decimal.NewFromInt(10000),
		CustomGoal:        &goal,
		PayPeriodsPerYear: 26,
		RemainingPeriods:  20,
	}
}

func loadedModel(t *testing.T, profile *domain.Profile) Model {
	t.Helper()
	engine := calculation.NewEngine()
	engine.Now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

	m := NewModel(engine, profile)
	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(PlanLoadedMsg)
	require.True(t, ok, "Init should produce PlanLoadedMsg")
	require.NoError(t, loaded.Err)

	updated, _ := m.Update(loaded)
	return updated.(Model)
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(k)
	return updated.(Model), cmd
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_StartsAtRequiredRate(t *testing.T) {
	m := loadedModel(t, testProfile())

	require.NotNil(t, m.Report())
	assert.True(t, m.Rate().Equal(decimal.NewFromFloat(13.5)))
	assert.True(t, m.Scenario().TotalYearEnd.Equal(decimal.NewFromInt(23500)))
	assert.True(t, m.Scenario().Diff.IsZero())
}

func TestModel_StartsAtFirstWhatIfRate(t *testing.T) {
	p := testProfile()
	p.WhatIfRates = []decimal.Decimal{decimal.NewFromInt(10)}
	m := loadedModel(t, p)

	assert.True(t, m.Rate().Equal(decimal.NewFromInt(10)))
	assert.True(t, m.Scenario().Diff.Equal(decimal.NewFromInt(-3500)))
}

func TestModel_ArrowKeysRecompute(t *testing.T) {
	m := loadedModel(t, testProfile())

	m, cmd := press(t, m, keyRight)
	require.NotNil(t, cmd)
	changed, ok := cmd().(RateChangedMsg)
	require.True(t, ok)
	assert.True(t, changed.Scenario.AdjustedRate.Equal(decimal.NewFromInt(14)))
	assert.True(t, m.Scenario().ContributionFromNow.Equal(decimal.NewFromInt(14000)))
	assert.True(t, m.Scenario().Diff.Equal(decimal.NewFromInt(500)))

	m, _ = press(t, m, keyDown)
	assert.True(t, m.Rate().Equal(decimal.NewFromInt(9)))
	assert.True(t, m.Scenario().TotalYearEnd.Equal(decimal.NewFromInt(19000)))

	m, _ = press(t, m, keyLeft)
	assert.True(t, m.Rate().Equal(decimal.NewFromFloat(8.5)))

	m, _ = press(t, m, keyUp)
	assert.True(t, m.Rate().Equal(decimal.NewFromFloat(13.5)))

	m, _ = press(t, m, runes("l"))
	m, _ = press(t, m, runes("r"))
	assert.True(t, m.Rate().Equal(decimal.NewFromFloat(13.5)), "r resets to the required rate")
}

func TestModel_SliderClamps(t *testing.T) {
	m := loadedModel(t, testProfile())

	for i := 0; i < 30; i++ {
		m, _ = press(t, m, keyUp)
	}
	assert.True(t, m.Rate().Equal(decimal.NewFromInt(100)))

	_, cmd := press(t, m, keyUp)
	assert.Nil(t, cmd, "no change at the top of the range")

	for i := 0; i < 30; i++ {
		m, _ = press(t, m, keyDown)
	}
	assert.True(t, m.Rate().IsZero())
	assert.True(t, m.Scenario().TotalYearEnd.Equal(decimal.NewFromInt(10000)))
}

func TestModel_QuitAndHelp(t *testing.T) {
	m := loadedModel(t, testProfile())

	m, _ = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_KeysIgnoredBeforeLoad(t *testing.T) {
	m := NewModel(calculation.NewEngine(), testProfile())

	updated, cmd := m.Update(keyRight)
	assert.Nil(t, cmd)
	assert.True(t, updated.(Model).Rate().IsZero())
	assert.Contains(t, updated.View(), "Calculating plan")
}

func TestModel_PlanError(t *testing.T) {
	m := NewModel(calculation.NewEngine(), testProfile())

	updated, _ := m.Update(PlanLoadedMsg{Err: errors.New("boom")})
	assert.Contains(t, updated.View(), "Error: boom")
}

func TestModel_WindowSize(t *testing.T) {
	m := loadedModel(t, testProfile())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = updated.(Model)
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 40, m.height)
}

func TestModel_View(t *testing.T) {
	m := loadedModel(t, testProfile())
	view := m.View()

	assert.Contains(t, view, "13.50%")
	assert.Contains(t, view, "$675.00")
	assert.Contains(t, view, "What-if rate")
	assert.Contains(t, view, "exactly on target")
}
