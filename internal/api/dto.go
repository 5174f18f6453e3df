package api

import (
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ContributionRequest is the body of POST /api/contribution
type ContributionRequest struct {
	Salary           decimal.Decimal `json:"salary"`
	YTD              decimal.Decimal `json:"ytd"`
	Goal             decimal.Decimal `json:"goal"`
	TotalPeriods     int             `json:"total_periods"`
	RemainingPeriods int             `json:"remaining_periods"`
}

// ScenarioRequest is the body of POST /api/scenario
type ScenarioRequest struct {
	AdjustedRate      decimal.Decimal `json:"adjusted_rate"`
	RemainingGrossPay decimal.Decimal `json:"remaining_gross_pay"`
	YTD               decimal.Decimal `json:"ytd"`
	Goal              decimal.Decimal `json:"goal"`
}

// LimitsResponse lists the limits for a year and the goal for each bracket
type LimitsResponse struct {
	Year       int                                   `json:"year"`
	Exact      bool                                  `json:"exact"` // false when the nearest known year was substituted
	Limits     domain.YearLimits                     `json:"limits"`
	Goals      map[domain.AgeBracket]decimal.Decimal `json:"goals"`
	KnownYears []int                                 `json:"known_years"`
}

// ErrorResponse is returned for every non-2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
