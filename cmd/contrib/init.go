package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/contribgo/internal/config"
	"github.com/rgehrsitz/contribgo/internal/domain"
)

// wizardValues holds the raw form answers before they become a profile
type wizardValues struct {
	name    string
	salary  string
	ytd     string
	bracket string
	goal    string
	periods string
}

func newProfileForm(v *wizardValues) *huh.Form {
	bracketOptions := make([]huh.Option[string], 0, len(domain.AllBrackets))
	for _, b := range domain.AllBrackets {
		bracketOptions = append(bracketOptions, huh.NewOption(b.Label(), string(b)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Profile name").
				Value(&v.name),
			huh.NewInput().
				Title("Annual salary").
				Placeholder("130000").
				Validate(validateAmount).
				Value(&v.salary),
			huh.NewInput().
				Title("Contributed so far this year").
				Placeholder("0").
				Validate(validateAmount).
				Value(&v.ytd),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Age at year end").
				Options(bracketOptions...).
				Value(&v.bracket),
			huh.NewInput().
				Title("Custom annual goal").
				Description("Leave blank to use the IRS limit for your bracket").
				Validate(validateAmount).
				Value(&v.goal),
			huh.NewSelect[string]().
				Title("Pay schedule").
				Options(
					huh.NewOption("Biweekly (26)", "26"),
					huh.NewOption("Weekly (52)", "52"),
					huh.NewOption("Semimonthly (24)", "24"),
					huh.NewOption("Monthly (12)", "12"),
				).
				Value(&v.periods),
		),
	)
}

func validateAmount(s string) error {
	if s == "" {
		return nil
	}
	if _, err := parseFlagAmount("value", s); err != nil {
		return errors.New("enter a number, e.g. 23500")
	}
	return nil
}

// toProfile converts validated form answers into a profile
func (v *wizardValues) toProfile() *domain.Profile {
	p := &domain.Profile{
		Name:              v.name,
		Salary:            config.ParseAmount(v.salary),
		YTD:               config.ParseAmount(v.ytd),
		AgeBracket:        domain.AgeBracket(v.bracket),
		PayPeriodsPerYear: config.ParsePeriods(v.periods),
	}
	if goal := config.ParseAmount(v.goal); goal.IsPositive() {
		p.CustomGoal = &goal
	}
	return p
}

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a profile file interactively",
		Long:  "Asks a few questions and writes a YAML or TOML profile (by extension, default profile.yaml).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "profile.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := config.FormatForPath(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			values := &wizardValues{
				bracket: string(domain.BracketUnder50),
				periods: strconv.Itoa(domain.DefaultPayPeriods),
			}
			if err := newProfileForm(values).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				return err
			}

			parser := config.NewInputParser()
			profile := values.toProfile()
			if err := parser.ValidateProfile(profile); err != nil {
				return err
			}
			if err := parser.SaveToFile(path, profile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile written to %s\nRun: contrib plan %s\n", path, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
