package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/config"
	"github.com/yojoots/colorjournal/internal/export"
)

var exportOut string

// exportCmd writes the whole current year as a CSV grid.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the year to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		now := time.Now().In(cfg.Location())

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		grid := svc.Grid(now.Year())
		csv := export.CSV(grid, svc.Activities())

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("colorjournal-export-%s.csv", now.Format("20060102-150405"))
		}
		if out == "-" {
			fmt.Print(csv)
			return nil
		}
		if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Wrote %s.\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default timestamped name, - for stdout)")
}
