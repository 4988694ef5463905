// Package export flattens the catalog and ledger into the two
// outbound shapes: a CSV grid for file export and a colored batch for
// the spreadsheet backend.
package export

import (
	"strings"

	"github.com/yojoots/colorjournal/internal/habit"
	"github.com/yojoots/colorjournal/internal/ledger"
)

// CSV renders the whole year: header "Date,<names...>", then one row
// per calendar day whether or not anything was marked, a check glyph
// or empty per cell. Activity names are written as-is; a comma or
// newline in a name will break the column layout (kept compatible
// with the historical export format).
func CSV(g *ledger.Grid, activities []habit.Activity) string {
	var b strings.Builder

	header := make([]string, 0, len(activities)+1)
	header = append(header, "Date")
	for _, a := range activities {
		header = append(header, a.Name)
	}
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")

	for day := 1; day <= g.DayCount(); day++ {
		row := make([]string, 0, len(activities)+1)
		row = append(row, ledger.DayKey(ledger.DateOfDay(g.Year, day)))
		for idx := range activities {
			if g.Active(day, idx) {
				row = append(row, ledger.Mark)
			} else {
				row = append(row, "")
			}
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// ActivityRow is one spreadsheet row: the activity name followed by
// one cell per day, nil where the day is unmarked.
type ActivityRow struct {
	Name  string
	Cells []*habit.Color
}

// Batch is the spreadsheet-shaped projection: a header row of short
// date labels and one colored row per activity.
type Batch struct {
	Year   int
	Header []string // Header[0] is the corner cell, then one label per day
	Rows   []ActivityRow
}

// ColoredBatch builds the batch for the grid's year. Cell fills carry
// each activity's color; alpha is not transmitted.
func ColoredBatch(g *ledger.Grid, activities []habit.Activity) Batch {
	days := g.DayCount()

	header := make([]string, 0, days+1)
	header = append(header, "")
	for day := 1; day <= days; day++ {
		header = append(header, ledger.DateOfDay(g.Year, day).Format("Jan 2"))
	}

	rows := make([]ActivityRow, 0, len(activities))
	for idx, a := range activities {
		cells := make([]*habit.Color, days)
		for day := 1; day <= days; day++ {
			if g.Active(day, idx) {
				c := a.Color
				cells[day-1] = &c
			}
		}
		rows = append(rows, ActivityRow{Name: a.Name, Cells: cells})
	}

	return Batch{Year: g.Year, Header: header, Rows: rows}
}
