// Package streak scans one activity's column of the year grid for
// runs of consecutive active days.
package streak

import (
	"time"

	"github.com/yojoots/colorjournal/internal/ledger"
)

// Segment is a maximal run of consecutive active days for one
// activity. Start is a 1-based day of year.
type Segment struct {
	ActivityIndex int
	Start         int
	Length        int
}

// Segments walks days 1..DayCount once and returns every run of
// length two or more. Single active days are not reported; a lone
// colored cell already reads as itself, so an overlayed "1" would be
// redundant.
func Segments(g *ledger.Grid, activityIndex int) []Segment {
	var out []Segment
	runStart := 0
	runLen := 0

	for day := 1; day <= g.DayCount(); day++ {
		if g.Active(day, activityIndex) {
			if runLen == 0 {
				runStart = day
			}
			runLen++
			continue
		}
		if runLen >= 2 {
			out = append(out, Segment{ActivityIndex: activityIndex, Start: runStart, Length: runLen})
		}
		runLen = 0
	}
	if runLen >= 2 {
		out = append(out, Segment{ActivityIndex: activityIndex, Start: runStart, Length: runLen})
	}
	return out
}

// Current counts backward from today while the activity stays active.
// Returns 0 if today itself is unmarked or today is outside the
// grid's year.
func Current(g *ledger.Grid, activityIndex int, today time.Time) int {
	if today.Year() != g.Year {
		return 0
	}
	day := ledger.DayOfYear(today)
	count := 0
	for day >= 1 && g.Active(day, activityIndex) {
		count++
		day--
	}
	return count
}

// Longest returns the length of the longest segment in the column,
// counting single days too (used for summaries, not the overlay).
func Longest(g *ledger.Grid, activityIndex int) int {
	best := 0
	runLen := 0
	for day := 1; day <= g.DayCount(); day++ {
		if g.Active(day, activityIndex) {
			runLen++
			if runLen > best {
				best = runLen
			}
		} else {
			runLen = 0
		}
	}
	return best
}
