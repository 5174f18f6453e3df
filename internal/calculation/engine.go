package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
)

// maxSweepPoints bounds a what-if rate sweep
const maxSweepPoints = 1000

// Engine composes the contribution, scenario and period calculations into a
// complete plan for a profile. It holds no state between calls.
type Engine struct {
	Limits domain.LimitTable
	Logger Logger
	Now    func() time.Time
}

// NewEngine creates an engine with the built-in limit table and the wall clock
func NewEngine() *Engine {
	return &Engine{
		Limits: domain.DefaultLimits(),
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger; nil installs a no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// ResolveGoal picks the annual goal for a profile: a positive custom goal
// wins, otherwise the limit for the profile's age bracket in year.
func (e *Engine) ResolveGoal(p *domain.Profile, year int) (decimal.Decimal, domain.GoalSource, error) {
	if p.HasCustomGoal() {
		return *p.CustomGoal, domain.GoalFromCustom, nil
	}

	limits := e.Limits
	if limits == nil {
		limits = domain.DefaultLimits()
	}
	yl, exact, err := limits.ForYear(year)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("failed to resolve limits for %d: %w", year, err)
	}
	if !exact {
		e.logger().Warnf("no contribution limits for %d, using %d", year, yl.Year)
	}
	goal, err := yl.Goal(p.Bracket())
	if err != nil {
		return decimal.Zero, "", err
	}
	return goal, domain.GoalFromLimit, nil
}

// Plan builds a complete report for a profile
func (e *Engine) Plan(ctx context.Context, p *domain.Profile) (*domain.PlanReport, error) {
	if p == nil {
		return nil, fmt.Errorf("profile is required")
	}
	now := e.now()
	log := e.logger()

	year := p.PlanYear
	if year == 0 {
		year = now.Year()
	}

	goal, source, err := e.ResolveGoal(p, year)
	if err != nil {
		return nil, err
	}
	log.Debugf("goal for %q: %s (%s, bracket %s)", p.Name, goal.StringFixed(2), source, p.Bracket())

	report := &domain.PlanReport{
		ProfileName:  p.Name,
		GeneratedAt:  now,
		PlanYear:     year,
		Salary:       p.Salary,
		YTD:          p.YTD,
		Goal:         goal,
		GoalSource:   source,
		TotalPeriods: p.PayPeriodsPerYear,
	}
	if source == domain.GoalFromLimit {
		report.AgeBracket = p.Bracket()
	}

	if p.RemainingPeriods > 0 {
		report.RemainingPeriods = p.RemainingPeriods
	} else {
		est, err := EstimatePeriods(now, p.PayPeriodsPerYear)
		if err != nil {
			return nil, err
		}
		report.RemainingPeriods = est.Remaining
		report.PeriodsEstimated = true
		report.Estimate = &est
		log.Debugf("estimated %d remaining periods (%.2f days left, %.2f days per period)",
			est.Remaining, est.DaysLeft, est.DaysInPeriod)
	}

	plan, err := ComputeContribution(p.Salary, p.YTD, goal, p.PayPeriodsPerYear, report.RemainingPeriods)
	if err != nil {
		return nil, err
	}
	report.Plan = plan

	for _, rate := range p.WhatIfRates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Scenarios = append(report.Scenarios, ComputeScenario(rate, plan.RemainingGrossPay, p.YTD, goal))
	}

	log.Infof("plan %q: %s%% required, $%s per check over %d periods",
		p.Name, plan.RequiredPercent.StringFixed(2), plan.PerCheck.StringFixed(2), report.RemainingPeriods)

	return report, nil
}

// Sweep evaluates what-if rates from..to (inclusive) in increments of step
func (e *Engine) Sweep(ctx context.Context, remainingGrossPay, ytd, goal, from, to, step decimal.Decimal) ([]domain.ScenarioProjection, error) {
	if !step.IsPositive() {
		return nil, &DomainError{Operation: "sweep", Message: "step must be positive"}
	}
	if to.LessThan(from) {
		return nil, &DomainError{Operation: "sweep", Message: fmt.Sprintf("range end %s is below start %s", to, from)}
	}
	points := to.Sub(from).Div(step).Floor().IntPart() + 1
	if points > maxSweepPoints {
		return nil, &DomainError{Operation: "sweep", Message: fmt.Sprintf("range produces %d points, limit is %d", points, maxSweepPoints)}
	}

	results := make([]domain.ScenarioProjection, 0, points)
	for rate := from; rate.LessThanOrEqual(to); rate = rate.Add(step) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, ComputeScenario(rate, remainingGrossPay, ytd, goal))
	}
	e.logger().Debugf("swept %d rates from %s%% to %s%%", len(results), from, to)
	return results, nil
}
