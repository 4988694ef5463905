package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/config"
	"github.com/yojoots/colorjournal/internal/export"
	"github.com/yojoots/colorjournal/internal/remote"
)

// The spreadsheet transport and the sign-in flow are external
// collaborators; a build that bundles one registers it here before
// Execute. With neither registered, push reports what it would send.
var (
	sheetsClient  remote.Sheets
	authenticator remote.Authenticator
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the colored year grid to the configured spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		if cfg.Sheet.SpreadsheetID == "" {
			return errors.New("no sheet.spreadsheet_id configured")
		}

		now := time.Now().In(cfg.Location())
		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		grid := svc.Grid(now.Year())
		batch := export.ColoredBatch(grid, svc.Activities())

		if sheetsClient == nil {
			reqs := remote.BuildRequests(batch)
			fmt.Printf("No spreadsheet backend in this build; would send %dx%d cells to %s.\n",
				reqs.Resize.Rows, reqs.Resize.Cols, cfg.Sheet.SpreadsheetID)
			return nil
		}

		ctx := cmd.Context()
		if err := ensureSignedIn(ctx); err != nil {
			fmt.Println(remote.Classify(err))
			return nil
		}

		pusher := remote.NewPusher(sheetsClient)
		if err := pusher.Push(ctx, cfg.Sheet.SpreadsheetID, batch); err != nil {
			fmt.Println(remote.Classify(err))
			return nil
		}
		fmt.Printf("Pushed %d activities x %d days.\n", len(batch.Rows), len(batch.Header)-1)
		return nil
	},
}

func ensureSignedIn(ctx context.Context) error {
	if authenticator == nil {
		return nil
	}
	if s, err := authenticator.RestorePreviousSession(ctx); err == nil && s != nil && s.Valid() {
		return nil
	}
	s, err := authenticator.SignIn(ctx)
	if err != nil {
		return err
	}
	if s == nil || !s.Valid() {
		return errors.New("sign-in did not produce a valid session")
	}
	return nil
}
