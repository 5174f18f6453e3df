package calculation

import (
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeScenario projects the year-end total if adjustedRate percent of the
// remaining gross pay is contributed from now on. The projection is linear:
// zero, negative and >100 rates are not clamped.
func ComputeScenario(adjustedRate, remainingGrossPay, ytd, goal decimal.Decimal) domain.ScenarioProjection {
	contributionFromNow := adjustedRate.Div(hundred).Mul(remainingGrossPay)
	totalYearEnd := ytd.Add(contributionFromNow)

	return domain.ScenarioProjection{
		AdjustedRate:        adjustedRate,
		ContributionFromNow: contributionFromNow,
		TotalYearEnd:        totalYearEnd,
		Diff:                totalYearEnd.Sub(goal),
	}
}
