package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/habit"
)

var (
	addColor  string
	editColor string
	editName  string
)

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"activities"},
	Short:   "Manage the activity catalog",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities in catalog order",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		for i, a := range svc.Activities() {
			fmt.Printf("%2d  %s  %s\n", i, a.Color.Hex(), a.Name)
		}
		return nil
	},
}

var activityAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Append a new activity",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := habit.ParseHex(addColor)
		if err != nil {
			return err
		}

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		a := svc.AddActivity(strings.Join(args, " "), color)
		fmt.Printf("Added %s at position %d.\n", a.Name, svc.ActivityCount()-1)
		return nil
	},
}

var activityRmCmd = &cobra.Command{
	Use:   "rm [position]",
	Short: "Delete an activity and its day data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position must be a number: %w", err)
		}

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		a, ok := activityAt(svc.Activities(), pos)
		if !ok {
			return fmt.Errorf("position %d out of range", pos)
		}
		svc.RemoveActivity(pos)
		fmt.Printf("Removed %s; day data for it was dropped.\n", a.Name)
		return nil
	},
}

var activityMvCmd = &cobra.Command{
	Use:   "mv [from] [to]",
	Short: "Move an activity to a new position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("from must be a number: %w", err)
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("to must be a number: %w", err)
		}

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		if _, ok := activityAt(svc.Activities(), from); !ok {
			return fmt.Errorf("position %d out of range", from)
		}
		svc.MoveActivity(map[int]struct{}{from: {}}, to)
		fmt.Printf("Moved %d -> %d.\n", from, to)
		return nil
	},
}

var activityEditCmd = &cobra.Command{
	Use:   "edit [position]",
	Short: "Rename or recolor an activity in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position must be a number: %w", err)
		}

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		a, ok := activityAt(svc.Activities(), pos)
		if !ok {
			return fmt.Errorf("position %d out of range", pos)
		}

		name := a.Name
		if editName != "" {
			name = editName
		}
		color := a.Color
		if editColor != "" {
			color, err = habit.ParseHex(editColor)
			if err != nil {
				return err
			}
		}

		svc.UpdateActivity(pos, name, color)
		fmt.Printf("Updated %s (%s).\n", name, color.Hex())
		return nil
	},
}

func activityAt(acts []habit.Activity, pos int) (habit.Activity, bool) {
	if pos < 0 || pos >= len(acts) {
		return habit.Activity{}, false
	}
	return acts[pos], true
}

func init() {
	activityAddCmd.Flags().StringVarP(&addColor, "color", "c", "#2F80ED", "Activity color as #RRGGBB")
	activityEditCmd.Flags().StringVarP(&editName, "name", "n", "", "New name")
	activityEditCmd.Flags().StringVarP(&editColor, "color", "c", "", "New color as #RRGGBB")
	activityCmd.AddCommand(activityListCmd, activityAddCmd, activityRmCmd, activityMvCmd, activityEditCmd)
}
