package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDay resolves flexible date input to a concrete calendar day.
// Accepts natural words (today, yesterday), "N days ago", and common
// date layouts. The result is truncated to midnight in loc.
func ParseDay(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}

	now := time.Now().In(loc)
	midnight := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}

	switch input {
	case "today", "now":
		return midnight(now), nil
	case "yesterday":
		return midnight(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return midnight(now.AddDate(0, 0, 1)), nil
	}

	re := regexp.MustCompile(`^(\d+) days? ago$`)
	if matches := re.FindStringSubmatch(input); matches != nil {
		num, _ := strconv.Atoi(matches[1])
		return midnight(now.AddDate(0, 0, -num)), nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"2 January 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return midnight(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}
