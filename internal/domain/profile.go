package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultPayPeriods is used when a profile does not state its pay schedule (biweekly)
const DefaultPayPeriods = 26

// Profile holds the inputs of a single person's contribution plan.
// It is the on-disk format for plan files (YAML or TOML).
type Profile struct {
	Name              string            `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	PlanYear          int               `yaml:"plan_year,omitempty" toml:"plan_year,omitempty" json:"plan_year,omitempty"`
	Salary            decimal.Decimal   `yaml:"salary" toml:"salary" json:"salary"`
	YTD               decimal.Decimal   `yaml:"ytd" toml:"ytd" json:"ytd"`
	Age               int               `yaml:"age,omitempty" toml:"age,omitempty" json:"age,omitempty"`
	AgeBracket        AgeBracket        `yaml:"age_bracket,omitempty" toml:"age_bracket,omitempty" json:"age_bracket,omitempty"`
	CustomGoal        *decimal.Decimal  `yaml:"custom_goal,omitempty" toml:"custom_goal,omitempty" json:"custom_goal,omitempty"`
	PayPeriodsPerYear int               `yaml:"pay_periods_per_year,omitempty" toml:"pay_periods_per_year,omitempty" json:"pay_periods_per_year,omitempty"`
	RemainingPeriods  int               `yaml:"remaining_periods,omitempty" toml:"remaining_periods,omitempty" json:"remaining_periods,omitempty"` // 0 = estimate from today
	WhatIfRates       []decimal.Decimal `yaml:"what_if_rates,omitempty" toml:"what_if_rates,omitempty" json:"what_if_rates,omitempty"`
}

// Bracket returns the explicit bracket, falling back to one derived from Age
func (p *Profile) Bracket() AgeBracket {
	if p.AgeBracket != "" {
		return p.AgeBracket
	}
	if p.Age > 0 {
		return BracketForAge(p.Age)
	}
	return BracketUnder50
}

// HasCustomGoal reports whether a positive custom goal overrides the limit table
func (p *Profile) HasCustomGoal() bool {
	return p.CustomGoal != nil && p.CustomGoal.IsPositive()
}
