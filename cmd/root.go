package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yojoots/colorjournal/internal/config"
	"github.com/yojoots/colorjournal/internal/journal"
	"github.com/yojoots/colorjournal/internal/notify"
	"github.com/yojoots/colorjournal/internal/schedule"
	"github.com/yojoots/colorjournal/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "colorjournal",
	Short: "Daily habit tracking with a colored year grid",
}

func Execute() error { return rootCmd.Execute() }

// openService opens the store and loads catalog + ledger. The caller
// closes the returned store.
func openService() (*journal.Service, *store.Store, error) {
	st, err := store.Open()
	if err != nil {
		return nil, nil, err
	}
	return journal.Open(st), st, nil
}

func init() {
	// Load config and start reminder if enabled
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("COLORJOURNAL_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					pending := 0
					if svc, st, err := openService(); err == nil {
						pending = svc.PendingToday(time.Now().In(cfg.Location()))
						_ = st.Close()
					}
					title, msg := notify.FormatDailyPrompt(pending)
					_ = notify.Info(title, msg)
				})
			}()
			// We intentionally don't store cancel globally; on process exit, signal cancels
			_ = cancel // avoid unused if we change logic
		}
		return nil
	}

	// Add commands; other files define these vars
	rootCmd.AddCommand(markCmd, unmarkCmd, todayCmd, gridCmd, streaksCmd,
		activityCmd, exportCmd, pushCmd, clearCmd, tuiCmd)
}
