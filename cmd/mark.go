package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/config"
	"github.com/yojoots/colorjournal/internal/habit"
	"github.com/yojoots/colorjournal/internal/journal"
	"github.com/yojoots/colorjournal/internal/ledger"
	"github.com/yojoots/colorjournal/internal/utils"
)

var markDate string

var markCmd = &cobra.Command{
	Use:   "mark [activity]",
	Short: "Mark an activity done for a day",
	Long: `Examples:
	colorjournal mark Exercise                 # mark for today
	colorjournal mark 0 --date yesterday       # by catalog position
	colorjournal mark Read --date 2026-06-01`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggle(strings.Join(args, " "), markDate, true)
	},
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark [activity]",
	Short: "Unmark an activity for a day",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggle(strings.Join(args, " "), markDate, false)
	},
}

func toggle(activity, date string, on bool) error {
	cfg, _ := config.Load()
	loc := cfg.Location()

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

	pos, a, err := resolveActivity(svc, activity)
	if err != nil {
		return err
	}

	svc.Toggle(key, pos, on)
	if on {
		fmt.Printf("Marked %s on %s.\n", a.Name, key)
	} else {
		fmt.Printf("Unmarked %s on %s.\n", a.Name, key)
	}
	return nil
}

// resolveActivity accepts a catalog position or a (case-insensitive)
// name prefix.
func resolveActivity(svc *journal.Service, ref string) (int, habit.Activity, error) {
	acts := svc.Activities()

	if pos, err := strconv.Atoi(ref); err == nil {
		if pos < 0 || pos >= len(acts) {
			return 0, habit.Activity{}, fmt.Errorf("position %d out of range (0-%d)", pos, len(acts)-1)
		}
		return pos, acts[pos], nil
	}

	needle := strings.ToLower(strings.TrimSpace(ref))
	match := -1
	for i, a := range acts {
		name := strings.ToLower(a.Name)
		if name == needle {
			return i, a, nil
		}
		if strings.HasPrefix(name, needle) {
			if match >= 0 {
				return 0, habit.Activity{}, fmt.Errorf("%q is ambiguous", ref)
			}
			match = i
		}
	}
	if match < 0 {
		return 0, habit.Activity{}, fmt.Errorf("no activity matching %q", ref)
	}
	return match, acts[match], nil
}

func init() {
	markCmd.Flags().StringVarP(&markDate, "date", "d", "", "Day to mark (today, yesterday, YYYY-MM-DD, ...)")
	unmarkCmd.Flags().StringVarP(&markDate, "date", "d", "", "Day to unmark")
}
