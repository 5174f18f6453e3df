package calculation

import (
	"fmt"
	"math"
	"time"

	"github.com/rgehrsitz/contribgo/internal/domain"
)

// daysPerYear is a fixed approximation; leap years are not special-cased
const daysPerYear = 365.0

// EstimateRemainingPeriods estimates how many pay periods are left between
// now and December 31 of now's year. The result is never less than 1.
func EstimateRemainingPeriods(now time.Time, totalPeriods int) (int, error) {
	est, err := EstimatePeriods(now, totalPeriods)
	if err != nil {
		return 0, err
	}
	return est.Remaining, nil
}

// EstimatePeriods is EstimateRemainingPeriods with its intermediate values.
// The year-end boundary is midnight starting December 31 in now's location,
// while now keeps its time of day, so DaysLeft carries the partial day.
func EstimatePeriods(now time.Time, totalPeriods int) (domain.PeriodEstimate, error) {
	if totalPeriods <= 0 {
		return domain.PeriodEstimate{}, &DomainError{
			Operation: "estimate_remaining_periods",
			Message:   fmt.Sprintf("total pay periods must be positive, got %d", totalPeriods),
		}
	}

	yearEnd := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
	daysLeft := yearEnd.Sub(now).Hours() / 24
	daysInPeriod := daysPerYear / float64(totalPeriods)
	estimate := int(math.Floor(daysLeft / daysInPeriod))

	remaining := estimate
	if remaining < 1 {
		remaining = 1
	}

	return domain.PeriodEstimate{
		Now:          now,
		YearEnd:      yearEnd,
		DaysLeft:     daysLeft,
		DaysInPeriod: daysInPeriod,
		Estimate:     estimate,
		Remaining:    remaining,
	}, nil
}
