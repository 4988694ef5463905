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

var (
	todayDate    string
	todayFormat  string
	todayNoColor bool
)

// todayCmd prints the per-day checkbox row.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show which activities are marked for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		date := todayDate
		if date == "" {
			date = "today"
		}
		day, err := utils.ParseDay(date, loc)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", date, err)
		}
		key := ledger.DayKey(day)

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		acts := svc.Activities()
		status := svc.StatusVector(key)
		grid := svc.Grid(time.Now().In(loc).Year())

		report := &utils.DayReport{Day: key}
		for i, a := range acts {
			line := utils.ActivityLine{
				Position: i,
				Name:     a.Name,
				ColorHex: a.Color.Hex(),
				Active:   status[i],
			}
			if day.Year() == grid.Year {
				line.Current = streak.Current(grid, i, day)
				line.Longest = streak.Longest(grid, i)
			}
			report.Lines = append(report.Lines, line)
		}

		renderConfig := utils.DefaultRenderConfig()
		if todayNoColor {
			renderConfig.Color = false
		}
		if todayFormat != "" {
			renderConfig.Format = utils.OutputFormat(todayFormat)
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
	todayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "Day to show (default today)")
	todayCmd.Flags().StringVar(&todayFormat, "format", "default", "Output format: default, table, json, quiet")
	todayCmd.Flags().BoolVar(&todayNoColor, "no-color", false, "Disable colored output")
}
