package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/contribgo/internal/tui"
)

func tuiCmd(a *app) *cobra.Command {
	var pf profileFlags

	cmd := &cobra.Command{
		Use:   "tui [profile-file]",
		Short: "Explore what-if rates interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := pf.load(cmd, args)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				tui.NewModel(a.engine(), profile),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}
	pf.register(cmd)
	return cmd
}
