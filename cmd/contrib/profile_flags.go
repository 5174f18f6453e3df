package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/contribgo/internal/config"
	"github.com/rgehrsitz/contribgo/internal/domain"
)

// profileFlags are the command-line overrides shared by plan, tui and share
type profileFlags struct {
	name      string
	salary    string
	ytd       string
	goal      string
	age       int
	bracket   string
	periods   int
	remaining int
	year      int
	rates     []string
}

func (pf *profileFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&pf.name, "name", "", "Profile name shown in reports")
	f.StringVar(&pf.salary, "salary", "", "Annual salary (e.g. 130000 or $130,000)")
	f.StringVar(&pf.ytd, "ytd", "", "Contributions made so far this year")
	f.StringVar(&pf.goal, "goal", "", "Custom annual goal (overrides the IRS limit)")
	f.IntVar(&pf.age, "age", 0, "Age at year end, used to pick the catch-up bracket")
	f.StringVar(&pf.bracket, "bracket", "", "Age bracket: under_50, 50_plus or 60_to_63")
	f.IntVar(&pf.periods, "periods", 0, "Pay periods per year (default 26)")
	f.IntVar(&pf.remaining, "remaining", 0, "Remaining pay periods (estimated from today when omitted)")
	f.IntVar(&pf.year, "year", 0, "Plan year for limit lookup (default current year)")
	f.StringSliceVar(&pf.rates, "rate", nil, "What-if contribution rate in percent, repeatable")
}

// load reads the optional profile file, applies flag overrides, then
// defaults and validates the result
func (pf *profileFlags) load(cmd *cobra.Command, args []string) (*domain.Profile, error) {
	parser := config.NewInputParser()

	profile := &domain.Profile{}
	if len(args) > 0 {
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if err := pf.apply(cmd, profile); err != nil {
		return nil, err
	}

	config.ApplyDefaults(profile)
	if err := parser.ValidateProfile(profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return profile, nil
}

func (pf *profileFlags) apply(cmd *cobra.Command, p *domain.Profile) error {
	changed := cmd.Flags().Changed

	if changed("name") {
		p.Name = pf.name
	}
	if changed("salary") {
		v, err := parseFlagAmount("salary", pf.salary)
		if err != nil {
			return err
		}
		p.Salary = v
	}
	if changed("ytd") {
		v, err := parseFlagAmount("ytd", pf.ytd)
		if err != nil {
			return err
		}
		p.YTD = v
	}
	if changed("goal") {
		v, err := parseFlagAmount("goal", pf.goal)
		if err != nil {
			return err
		}
		p.CustomGoal = &v
	}
	if changed("age") {
		p.Age = pf.age
		p.AgeBracket = ""
	}
	if changed("bracket") {
		p.AgeBracket = domain.AgeBracket(pf.bracket)
	}
	if changed("periods") {
		p.PayPeriodsPerYear = pf.periods
	}
	if changed("remaining") {
		p.RemainingPeriods = pf.remaining
	}
	if changed("year") {
		p.PlanYear = pf.year
	}
	if changed("rate") {
		p.WhatIfRates = p.WhatIfRates[:0]
		for _, raw := range pf.rates {
			v, err := parseFlagAmount("rate", raw)
			if err != nil {
				return err
			}
			p.WhatIfRates = append(p.WhatIfRates, v)
		}
	}
	return nil
}

var amountCleaner = strings.NewReplacer("$", "", ",", "", "_", "", "%", "")

// parseFlagAmount accepts the same decorations as form input but, unlike
// config.ParseAmount, reports garbage instead of treating it as zero
func parseFlagAmount(flag, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(amountCleaner.Replace(strings.TrimSpace(raw)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", flag, raw, err)
	}
	return v, nil
}
