package calculation

import (
	"fmt"

	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeContribution works out the contribution rate and per-paycheck amount
// needed to move ytd up to goal over the remaining pay periods of the year.
//
// RequiredPercent and PerCheck are only populated when there is both an
// unmet amount and remaining gross pay to draw it from; otherwise both are
// zero. A goal that has already been exceeded therefore reports 0%, never a
// negative rate. RequiredPercent is not capped at 100.
func ComputeContribution(salary, ytd, goal decimal.Decimal, totalPeriods, remainingPeriods int) (domain.ContributionPlan, error) {
	if totalPeriods <= 0 {
		return domain.ContributionPlan{}, &DomainError{
			Operation: "compute_contribution",
			Message:   fmt.Sprintf("total pay periods must be positive, got %d", totalPeriods),
		}
	}
	if remainingPeriods <= 0 {
		return domain.ContributionPlan{}, &DomainError{
			Operation: "compute_contribution",
			Message:   fmt.Sprintf("remaining pay periods must be positive, got %d", remainingPeriods),
		}
	}

	remainingAmount := goal.Sub(ytd)
	grossPerPeriod := salary.Div(decimal.NewFromInt(int64(totalPeriods)))
	remainingGrossPay := grossPerPeriod.Mul(decimal.NewFromInt(int64(remainingPeriods)))

	plan := domain.ContributionPlan{
		RequiredPercent:   decimal.Zero,
		PerCheck:          decimal.Zero,
		RemainingAmount:   remainingAmount,
		RemainingGrossPay: remainingGrossPay,
	}

	if remainingGrossPay.IsPositive() && remainingAmount.IsPositive() {
		plan.RequiredPercent = remainingAmount.Div(remainingGrossPay).Mul(hundred)
		plan.PerCheck = remainingAmount.Div(decimal.NewFromInt(int64(remainingPeriods)))
	}

	return plan, nil
}
