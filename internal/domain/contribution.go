package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionPlan is the result of closing the gap between year-to-date
// contributions and the annual goal over the remaining pay periods.
type ContributionPlan struct {
	RequiredPercent   decimal.Decimal `json:"required_percent"`    // uncapped, may exceed 100
	PerCheck          decimal.Decimal `json:"per_check"`           // dollars withheld per remaining paycheck
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`    // goal - ytd, negative once the goal is exceeded
	RemainingGrossPay decimal.Decimal `json:"remaining_gross_pay"` // gross pay left in the year
}

// GoalMet reports whether nothing further needs to be contributed
func (p ContributionPlan) GoalMet() bool {
	return !p.RemainingAmount.IsPositive()
}

// ScenarioProjection is the year-end outcome of a hypothetical contribution rate
type ScenarioProjection struct {
	AdjustedRate        decimal.Decimal `json:"adjusted_rate"`
	ContributionFromNow decimal.Decimal `json:"contribution_from_now"`
	TotalYearEnd        decimal.Decimal `json:"total_year_end"`
	Diff                decimal.Decimal `json:"diff"` // positive = surplus, negative = shortfall
}

// MeetsGoal reports whether the projection reaches the goal
func (s ScenarioProjection) MeetsGoal() bool {
	return !s.Diff.IsNegative()
}

// PeriodEstimate carries the intermediate values of the remaining pay period estimate
type PeriodEstimate struct {
	Now          time.Time `json:"now"`
	YearEnd      time.Time `json:"year_end"`
	DaysLeft     float64   `json:"days_left"`
	DaysInPeriod float64   `json:"days_in_period"`
	Estimate     int       `json:"estimate"`  // raw floor, may be zero or negative
	Remaining    int       `json:"remaining"` // never less than 1
}

// PlanReport bundles everything a caller needs to present a plan
type PlanReport struct {
	ProfileName      string               `json:"profile_name,omitempty"`
	GeneratedAt      time.Time            `json:"generated_at"`
	PlanYear         int                  `json:"plan_year"`
	Salary           decimal.Decimal      `json:"salary"`
	YTD              decimal.Decimal      `json:"ytd"`
	Goal             decimal.Decimal      `json:"goal"`
	GoalSource       GoalSource           `json:"goal_source"`
	AgeBracket       AgeBracket           `json:"age_bracket,omitempty"`
	TotalPeriods     int                  `json:"total_periods"`
	RemainingPeriods int                  `json:"remaining_periods"`
	PeriodsEstimated bool                 `json:"periods_estimated"`
	Estimate         *PeriodEstimate      `json:"estimate,omitempty"`
	Plan             ContributionPlan     `json:"plan"`
	Scenarios        []ScenarioProjection `json:"scenarios,omitempty"`
}
