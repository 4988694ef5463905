package remote

import "strings"

// Classify maps a backend error onto a short human-readable message.
// Classification is by substring on the error text; no retry is
// attempted for any class.
func Classify(err error) string {
	if err == nil {
		return ""
	}
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "permission") || strings.Contains(text, "forbidden"):
		return "You don't have permission to edit that spreadsheet."
	case strings.Contains(text, "not found") || strings.Contains(text, "notfound"):
		return "Spreadsheet not found. Check the configured spreadsheet id."
	case strings.Contains(text, "network") || strings.Contains(text, "connection") ||
		strings.Contains(text, "timeout") || strings.Contains(text, "deadline"):
		return "Network error talking to the spreadsheet service. Try again."
	default:
		return "Spreadsheet update failed: " + err.Error()
	}
}
