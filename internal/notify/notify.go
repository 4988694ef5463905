package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("Colorjournal", message, "")
}

// FormatDailyPrompt builds the evening reminder for unmarked habits.
func FormatDailyPrompt(pending int) (string, string) {
	title := "Habit check-in"
	if pending <= 0 {
		return title, "All habits marked for today. Nice."
	}
	msg := fmt.Sprintf("%d habits still unmarked today. Keep the streaks going?", pending)
	return title, msg
}
