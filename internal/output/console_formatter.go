package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/contribgo/internal/domain"
)

// ConsoleFormatter renders a plan as a plain-text table
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var sb strings.Builder

	title := "CONTRIBUTION PLAN"
	if report.ProfileName != "" {
		title += ": " + report.ProfileName
	}
	sb.WriteString(fmt.Sprintf("%s (%d)\n", title, report.PlanYear))
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	progress := ProgressPercent(report.YTD, report.Goal)
	sb.WriteString(fmt.Sprintf("Annual Salary:        %s\n", FormatCurrency(report.Salary)))
	sb.WriteString(fmt.Sprintf("Contributed YTD:      %s\n", FormatCurrency(report.YTD)))
	sb.WriteString(fmt.Sprintf("Annual Goal:          %s (%s)\n", FormatCurrency(report.Goal), GoalLabel(report)))
	sb.WriteString(fmt.Sprintf("Progress:             %s %s\n", ProgressBar(progress, 30), FormatPercentage(progress)))
	periods := fmt.Sprintf("%d of %d remaining", report.RemainingPeriods, report.TotalPeriods)
	if report.PeriodsEstimated && report.Estimate != nil {
		periods += fmt.Sprintf(" (estimated, %.1f days left)", report.Estimate.DaysLeft)
	}
	sb.WriteString(fmt.Sprintf("Pay Periods:          %s\n", periods))
	sb.WriteString("\n")

	plan := report.Plan
	sb.WriteString("REQUIRED CONTRIBUTION\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Remaining To Goal:    %s\n", FormatCurrency(plan.RemainingAmount)))
	sb.WriteString(fmt.Sprintf("Remaining Gross Pay:  %s\n", FormatCurrency(plan.RemainingGrossPay)))
	switch {
	case plan.GoalMet():
		sb.WriteString("Goal already met, no further contribution required.\n")
	case !plan.RemainingGrossPay.IsPositive():
		sb.WriteString("No gross pay remains this year to contribute from.\n")
	default:
		sb.WriteString(fmt.Sprintf("Required Rate:        %s\n", DisplayPercent(plan.RequiredPercent)))
		sb.WriteString(fmt.Sprintf("Per Paycheck:         %s\n", FormatCurrency(plan.PerCheck)))
	}

	if len(report.Scenarios) > 0 {
		sb.WriteString("\nWHAT-IF SCENARIOS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("%-10s %16s %16s %16s  %s\n", "Rate", "From Now", "Year End", "vs Goal", "Outcome"))
		for _, s := range report.Scenarios {
			sb.WriteString(fmt.Sprintf("%-10s %16s %16s %16s  %s\n",
				FormatPercentage(s.AdjustedRate),
				FormatCurrency(s.ContributionFromNow),
				FormatCurrency(s.TotalYearEnd),
				FormatSignedCurrency(s.Diff),
				Outcome(s.Diff)))
		}
	}

	return []byte(sb.String()), nil
}
