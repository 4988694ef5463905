package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yojoots/colorjournal/internal/config"
)

func cfgAt(timeStr string, workdays, holidays []string) config.Config {
	cfg := config.Default()
	cfg.Reminder.Time = timeStr
	cfg.Reminder.Workdays = workdays
	cfg.Reminder.Holidays = holidays
	cfg.Reminder.Timezone = "UTC"
	return cfg
}

func TestNextAt_LaterSameDay(t *testing.T) {
	// 2026-08-31 is a Monday
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	cfg := cfgAt("21:00", []string{"Mon", "Tue"}, nil)

	next := NextAt(now, cfg)
	assert.Equal(t, time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC), next)
}

func TestNextAt_RollsToNextWorkday(t *testing.T) {
	now := time.Date(2026, 8, 31, 22, 0, 0, 0, time.UTC)
	cfg := cfgAt("21:00", []string{"Mon"}, nil)

	next := NextAt(now, cfg)
	assert.Equal(t, time.Date(2026, 9, 7, 21, 0, 0, 0, time.UTC), next)
}

func TestNextAt_NormalizesWorkdayNames(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	cfg := cfgAt("21:00", []string{" monday ", "TUESDAY"}, nil)

	next := NextAt(now, cfg)
	assert.Equal(t, time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC), next)
}

func TestNextAt_ShortWorkdayName(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	cfg := cfgAt("21:00", []string{"Mo"}, nil)

	// "Mo" matches no weekday, so the scan gives up after a year
	next := NextAt(now, cfg)
	assert.Equal(t, time.Date(2027, 9, 1, 21, 0, 0, 0, time.UTC), next)
}

func TestNextAt_SkipsHolidays(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	cfg := cfgAt("21:00", []string{"Mon", "Tue"}, []string{"2026-08-31"})

	next := NextAt(now, cfg)
	assert.Equal(t, time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC), next)
}
