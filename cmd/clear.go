package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

// clearCmd wipes every day record. The activity catalog stays.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all day data (keeps activities)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return errors.New("refusing to clear without --yes")
		}

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		svc.ClearLedger()
		fmt.Println("Cleared.")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm erasing all day data")
}
