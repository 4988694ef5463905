package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/config"
	"github.com/yojoots/colorjournal/internal/ledger"
	"github.com/yojoots/colorjournal/internal/streak"
)

var gridDays int

// gridCmd prints a static slice of the year grid ending today.
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the recent slice of the year grid",
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

		last := ledger.DayOfYear(now)
		first := last - gridDays + 1
		if first < 1 {
			first = 1
		}

		faint := lipgloss.NewStyle().Faint(true)
		fmt.Printf("%d, day %d-%d\n", grid.Year, first, last)

		for idx, a := range acts {
			cell := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color.Hex()))
			var row strings.Builder
			for day := first; day <= last; day++ {
				if grid.Active(day, idx) {
					row.WriteString(cell.Render("█"))
				} else {
					row.WriteString(faint.Render("·"))
				}
			}
			cur := streak.Current(grid, idx, now)
			suffix := ""
			if cur >= 2 {
				suffix = faint.Render(fmt.Sprintf("  %d-day streak", cur))
			}
			fmt.Printf("%-16s %s%s\n", a.Name, row.String(), suffix)
		}
		return nil
	},
}

func init() {
	gridCmd.Flags().IntVar(&gridDays, "days", 30, "How many trailing days to print")
}
