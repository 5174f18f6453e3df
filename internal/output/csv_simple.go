package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/contribgo/internal/domain"
)

// CSVFormatter writes the plan as one "plan" row followed by one row per what-if scenario
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Row", "Rate", "PerCheck", "RemainingAmount", "RemainingGrossPay", "ContributionFromNow", "TotalYearEnd", "Diff", "RemainingPeriods", "Goal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	plan := report.Plan
	periods := strconv.Itoa(report.RemainingPeriods)
	goal := report.Goal.StringFixed(2)
	if err := w.Write([]string{
		"plan",
		plan.RequiredPercent.StringFixed(4),
		plan.PerCheck.StringFixed(2),
		plan.RemainingAmount.StringFixed(2),
		plan.RemainingGrossPay.StringFixed(2),
		"", "", "",
		periods,
		goal,
	}); err != nil {
		return nil, err
	}

	for _, s := range report.Scenarios {
		if err := w.Write([]string{
			"scenario",
			s.AdjustedRate.StringFixed(4),
			"", "",
			plan.RemainingGrossPay.StringFixed(2),
			s.ContributionFromNow.StringFixed(2),
			s.TotalYearEnd.StringFixed(2),
			s.Diff.StringFixed(2),
			periods,
			goal,
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
