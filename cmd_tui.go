package main

import (
	"github.com/spf13/cobra"

	"wizard-spelldash/app"
	"wizard-spelldash/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the terminal dashboard",
	Long: `Run the dashboard in the terminal. Logs go to spelldash.log.

Keys: / search, enter/esc leave search, tab/shift+tab level, arrows move, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cmd.Context(), app.NewLoader(cfg, logger), cfg.TargetClass)
	},
}
