package remote

import "github.com/yojoots/colorjournal/internal/export"

// Default column width (pixels) for the day columns; wide enough for
// the short date labels.
const dayColumnWidth = 48

// PushRequests is everything one export needs to send, in order:
// resize first so the update range exists, then widths, then cells.
type PushRequests struct {
	Resize ResizeRequest
	Widths ColumnWidthRequest
	Update UpdateRequest
}

// BuildRequests shapes a colored batch into the three spreadsheet
// requests. Layout: row 0 is the header, row activityIndex+1 is that
// activity's row; column 0 holds activity names, column dayOfYear
// holds that day.
func BuildRequests(batch export.Batch) PushRequests {
	days := len(batch.Header) - 1
	rows := len(batch.Rows) + 1
	cols := days + 1

	cells := make([][]Cell, 0, rows)

	header := make([]Cell, 0, cols)
	for _, label := range batch.Header {
		header = append(header, Cell{Text: label})
	}
	cells = append(cells, header)

	for _, ar := range batch.Rows {
		row := make([]Cell, 0, cols)
		row = append(row, Cell{Text: ar.Name})
		for _, fill := range ar.Cells {
			cell := Cell{}
			if fill != nil {
				cell.Fill = &Fill{Red: fill.R, Green: fill.G, Blue: fill.B}
			}
			row = append(row, cell)
		}
		cells = append(cells, row)
	}

	return PushRequests{
		Resize: ResizeRequest{Rows: rows, Cols: cols},
		Widths: ColumnWidthRequest{
			Range:  GridRange{SheetID: 0, StartCol: 1, EndCol: cols},
			Pixels: dayColumnWidth,
		},
		Update: UpdateRequest{
			Range: GridRange{SheetID: 0, StartRow: 0, EndRow: rows, StartCol: 0, EndCol: cols},
			Rows:  cells,
		},
	}
}
