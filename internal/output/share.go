package output

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rgehrsitz/contribgo/internal/config"
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Query parameter names used by share links
const (
	ParamSalary    = "salary"
	ParamYTD       = "ytd"
	ParamAge       = "age"
	ParamGoal      = "goal"
	ParamPeriods   = "periods"
	ParamRemaining = "remaining"
	ParamYear      = "year"
	ParamRates     = "rates"
)

// ShareURL encodes a profile's inputs as query parameters on base so the
// plan can be reopened elsewhere. The profile name is not shared.
func ShareURL(base string, p *domain.Profile) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}

	q := u.Query()
	q.Set(ParamSalary, p.Salary.String())
	q.Set(ParamYTD, p.YTD.String())
	q.Set(ParamAge, string(p.Bracket()))
	if p.HasCustomGoal() {
		q.Set(ParamGoal, p.CustomGoal.String())
	}
	if p.PayPeriodsPerYear > 0 {
		q.Set(ParamPeriods, strconv.Itoa(p.PayPeriodsPerYear))
	}
	if p.RemainingPeriods > 0 {
		q.Set(ParamRemaining, strconv.Itoa(p.RemainingPeriods))
	}
	if p.PlanYear > 0 {
		q.Set(ParamYear, strconv.Itoa(p.PlanYear))
	}
	if len(p.WhatIfRates) > 0 {
		rates := make([]string, len(p.WhatIfRates))
		for i, r := range p.WhatIfRates {
			rates[i] = r.String()
		}
		q.Set(ParamRates, strings.Join(rates, ","))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ProfileFromQuery rebuilds a profile from share link parameters. Numbers are
// parsed leniently the way a form would: unparsable values become zero and a
// missing or invalid pay schedule falls back to biweekly.
func ProfileFromQuery(values url.Values) *domain.Profile {
	p := &domain.Profile{
		Salary:            config.ParseAmount(values.Get(ParamSalary)),
		YTD:               config.ParseAmount(values.Get(ParamYTD)),
		PayPeriodsPerYear: config.ParsePeriods(values.Get(ParamPeriods)),
	}

	if bracket := domain.AgeBracket(values.Get(ParamAge)); bracket.Valid() {
		p.AgeBracket = bracket
	}
	if goal := config.ParseAmount(values.Get(ParamGoal)); goal.IsPositive() {
		p.CustomGoal = &goal
	}
	if remaining := config.ParseAmount(values.Get(ParamRemaining)); remaining.IsPositive() {
		p.RemainingPeriods = int(remaining.IntPart())
	}
	if year := config.ParseAmount(values.Get(ParamYear)); year.IsPositive() {
		p.PlanYear = int(year.IntPart())
	}
	if raw := values.Get(ParamRates); raw != "" {
		p.WhatIfRates = ratesFromStrings(strings.Split(raw, ","))
	}
	return p
}

// ratesFromStrings parses a list of percentages, ignoring blanks
func ratesFromStrings(raw []string) []decimal.Decimal {
	var rates []decimal.Decimal
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		rates = append(rates, config.ParseAmount(r))
	}
	return rates
}
