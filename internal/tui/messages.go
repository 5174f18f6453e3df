package tui

import (
	"github.com/rgehrsitz/contribgo/internal/domain"
)

// PlanLoadedMsg carries the result of the initial plan calculation
type PlanLoadedMsg struct {
	Report *domain.PlanReport
	Err    error
}

// RateChangedMsg is emitted after the what-if rate moves
type RateChangedMsg struct {
	Scenario domain.ScenarioProjection
}
