package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/ui"
)

// tuiCmd launches the Bubble Tea year grid.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive year grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		return ui.Run(svc)
	},
}
