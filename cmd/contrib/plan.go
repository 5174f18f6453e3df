package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/contribgo/internal/calculation"
	"github.com/rgehrsitz/contribgo/internal/config"
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/rgehrsitz/contribgo/internal/output"
)

var formatExtensions = map[string]string{
	"console": "txt",
	"json":    "json",
	"csv":     "csv",
	"html":    "html",
}

func planCmd(a *app) *cobra.Command {
	var (
		pf     profileFlags
		format string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "plan [profile-file]",
		Short: "Calculate the required contribution rate for the rest of the year",
		Long: "Loads a YAML or TOML profile (optional when flags supply the inputs),\n" +
			"works out the rate and per-paycheck amount needed to hit the annual goal,\n" +
			"and evaluates any what-if rates.",
		Example: "  contrib plan profile.yaml\n" +
			"  contrib plan --salary 130000 --ytd 10000 --age 45 --rate 10 --rate 15\n" +
			"  contrib plan profile.toml --format json",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := pf.load(cmd, args)
			if err != nil {
				return err
			}

			report, err := a.engine().Plan(cmd.Context(), profile)
			if err != nil {
				return err
			}

			if save {
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
				}
				filename, err := output.WriteFormatted(f, report, formatExtensions[f.Name()])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), report, format)
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: "+strings.Join(output.FormatterNames(), ", "))
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func scenarioCmd(a *app) *cobra.Command {
	var rate, gross, ytd, goal, from, to, step string

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Project year-end contributions for a what-if rate",
		Long: "Projects the year-end total for a contribution rate applied to the\n" +
			"remaining gross pay. With --from/--to a range of rates is evaluated.",
		Example: "  contrib scenario --rate 10 --remaining-gross 100000 --ytd 10000 --goal 23500\n" +
			"  contrib scenario --from 5 --to 20 --step 2.5 --remaining-gross 100000 --ytd 10000 --goal 23500",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseFlagAmount("remaining-gross", gross)
			if err != nil {
				return err
			}
			y, err := parseFlagAmount("ytd", ytd)
			if err != nil {
				return err
			}
			target, err := parseFlagAmount("goal", goal)
			if err != nil {
				return err
			}

			var scenarios []domain.ScenarioProjection
			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				lo, err := parseFlagAmount("from", from)
				if err != nil {
					return err
				}
				hi, err := parseFlagAmount("to", to)
				if err != nil {
					return err
				}
				st, err := parseFlagAmount("step", step)
				if err != nil {
					return err
				}
				scenarios, err = a.engine().Sweep(cmd.Context(), g, y, target, lo, hi, st)
				if err != nil {
					return err
				}
			} else {
				r, err := parseFlagAmount("rate", rate)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, calculation.ComputeScenario(r, g, y, target))
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RATE\tFROM NOW\tYEAR END\tVS GOAL\t")
			for _, s := range scenarios {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s (%s)\t\n",
					output.FormatPercentage(s.AdjustedRate),
					output.FormatCurrency(s.ContributionFromNow),
					output.FormatCurrency(s.TotalYearEnd),
					output.FormatSignedCurrency(s.Diff),
					output.Outcome(s.Diff))
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&rate, "rate", "0", "Contribution rate in percent")
	f.StringVar(&gross, "remaining-gross", "0", "Gross pay left in the year")
	f.StringVar(&ytd, "ytd", "0", "Contributions made so far this year")
	f.StringVar(&goal, "goal", "0", "Annual goal")
	f.StringVar(&from, "from", "0", "First rate of a sweep")
	f.StringVar(&to, "to", "0", "Last rate of a sweep")
	f.StringVar(&step, "step", "1", "Sweep increment")
	cmd.MarkFlagRequired("remaining-gross")
	cmd.MarkFlagRequired("goal")
	return cmd
}

func periodsCmd(a *app) *cobra.Command {
	var (
		dateStr string
		periods int
	)

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Estimate the pay periods left in the year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := a.engine()
			now := engine.Now()
			if dateStr != "" {
				d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", dateStr, err)
				}
				now = d
			}

			est, err := calculation.EstimatePeriods(now, periods)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "As of:              %s\n", est.Now.Format("2006-01-02"))
			fmt.Fprintf(out, "Days to Dec 31:     %.2f\n", est.DaysLeft)
			fmt.Fprintf(out, "Days per period:    %.2f (%d per year)\n", est.DaysInPeriod, periods)
			fmt.Fprintf(out, "Remaining periods:  %d\n", est.Remaining)
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "Date to estimate from, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&periods, "periods", domain.DefaultPayPeriods, "Pay periods per year")
	return cmd
}

func limitsCmd(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Show contribution limits and the goal for each age bracket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := a.engine()
			if year == 0 {
				year = engine.Now().Year()
			}

			yl, exact, err := engine.Limits.ForYear(year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !exact {
				fmt.Fprintf(out, "No limits published for %d; showing %d.\n\n", year, yl.Year)
			}
			fmt.Fprintf(out, "%d elective deferral limit: %s\n\n", yl.Year, output.FormatCurrency(yl.ElectiveDeferral))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "BRACKET\tCATCH-UP\tGOAL\t")
			for _, b := range domain.AllBrackets {
				goal, err := yl.Goal(b)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t\n", b.Label(), output.FormatCurrency(goal.Sub(yl.ElectiveDeferral)), output.FormatCurrency(goal))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Plan year (default current year)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid\n", args[0])
			fmt.Fprintf(out, "  salary %s, ytd %s, %d pay periods, bracket %s\n",
				output.FormatCurrency(profile.Salary),
				output.FormatCurrency(profile.YTD),
				profile.PayPeriodsPerYear,
				profile.Bracket().Label())
			if profile.HasCustomGoal() {
				fmt.Fprintf(out, "  custom goal %s\n", output.FormatCurrency(*profile.CustomGoal))
			}
			return nil
		},
	}
}

func shareCmd() *cobra.Command {
	var (
		pf   profileFlags
		base string
	)

	cmd := &cobra.Command{
		Use:   "share [profile-file]",
		Short: "Print a link that reopens this plan through the HTTP API",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := pf.load(cmd, args)
			if err != nil {
				return err
			}
			link, err := output.ShareURL(base, profile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&base, "base", "http://localhost:8080/api/plan", "Base URL of a running contrib server")
	return cmd
}
