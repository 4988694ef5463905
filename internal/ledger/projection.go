package ledger

// Grid is the dense year-long projection derived from the sparse
// ledger: one boolean per (day of year, activity position). It is
// rebuilt, never persisted; any write goes through the Ledger, which
// patches the live grid cell instead of recomputing the whole year.
type Grid struct {
	Year          int
	ActivityCount int
	cells         [][]bool // cells[dayOfYear-1][activityIndex]
}

func newGrid(year, activityCount int) *Grid {
	days := DaysInYear(year)
	cells := make([][]bool, days)
	for i := range cells {
		cells[i] = make([]bool, activityCount)
	}
	return &Grid{Year: year, ActivityCount: activityCount, cells: cells}
}

// DayCount is 365 or 366 depending on the grid's year.
func (g *Grid) DayCount() int { return len(g.cells) }

// Active reports whether the activity at idx was marked on the
// 1-based dayOfYear. Out-of-range queries are false.
func (g *Grid) Active(dayOfYear, idx int) bool {
	if dayOfYear < 1 || dayOfYear > len(g.cells) {
		return false
	}
	row := g.cells[dayOfYear-1]
	if idx < 0 || idx >= len(row) {
		return false
	}
	return row[idx]
}

// Day returns a copy of the status vector for the 1-based dayOfYear.
// Out-of-range days come back all-false.
func (g *Grid) Day(dayOfYear int) []bool {
	out := make([]bool, g.ActivityCount)
	if dayOfYear >= 1 && dayOfYear <= len(g.cells) {
		copy(out, g.cells[dayOfYear-1])
	}
	return out
}

func (g *Grid) set(dayOfYear, idx int, active bool) {
	if dayOfYear < 1 || dayOfYear > len(g.cells) {
		return
	}
	row := g.cells[dayOfYear-1]
	if idx < 0 || idx >= len(row) {
		return
	}
	row[idx] = active
}
