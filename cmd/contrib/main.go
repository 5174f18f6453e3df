package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/contribgo/internal/calculation"
	"github.com/rgehrsitz/contribgo/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by every subcommand
type app struct {
	debug   bool
	logJSON bool
	log     zerolog.Logger
}

// engine returns a calculation engine, logging through zerolog when --debug
// is set
func (a *app) engine() *calculation.Engine {
	engine := calculation.NewEngine()
	if a.debug {
		engine.SetLogger(logging.NewAdapter(a.log, "engine"))
	}
	return engine
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "contrib",
		Short: "Paycheck retirement contribution planner",
		Long: "Works out the contribution rate and per-paycheck amount needed to reach an\n" +
			"annual retirement savings goal from the pay periods left in the year, and\n" +
			"projects what-if rates against that goal.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logging.New(cmd.ErrOrStderr(), a.debug, a.logJSON)
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Emit logs as JSON lines")

	root.AddCommand(
		planCmd(a),
		scenarioCmd(a),
		periodsCmd(a),
		limitsCmd(a),
		validateCmd(),
		shareCmd(),
		initCmd(),
		tuiCmd(a),
		serveCmd(a),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "contrib %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(out, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
