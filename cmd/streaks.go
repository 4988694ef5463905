package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/config"
	"github.com/yojoots/colorjournal/internal/ledger"
	"github.com/yojoots/colorjournal/internal/streak"
	"github.com/yojoots/colorjournal/internal/utils"
)

var streaksFormat string

// streaksCmd summarizes current and longest streaks per activity.
var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Current and longest streak per activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		now := time.Now().In(cfg.Location())

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		acts := svc.Activities()
		grid := svc.Grid(now.Year())
		key := ledger.DayKey(now)
		status := svc.StatusVector(key)

		report := &utils.DayReport{Day: key}
		for i, a := range acts {
			report.Lines = append(report.Lines, utils.ActivityLine{
				Position: i,
				Name:     a.Name,
				ColorHex: a.Color.Hex(),
				Active:   status[i],
				Current:  streak.Current(grid, i, now),
				Longest:  streak.Longest(grid, i),
			})
		}

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Format = utils.FormatTable
		if streaksFormat != "" {
			renderConfig.Format = utils.OutputFormat(streaksFormat)
		}
		out, err := utils.NewRenderer(renderConfig).RenderDayReport(report)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	streaksCmd.Flags().StringVar(&streaksFormat, "format", "table", "Output format: default, table, json, quiet")
}
