// Package remote defines the surface the core needs from the
// spreadsheet backend and the sign-in flow. The transport itself is
// an external collaborator; this package only shapes requests,
// serializes writes, and turns backend errors into short messages.
package remote

import "context"

// GridRange addresses a rectangle of cells: 0-based, end-exclusive,
// always on sheet 0.
type GridRange struct {
	SheetID  int
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// Fill is a cell background color, 0..1 per channel, no alpha.
type Fill struct {
	Red   float64
	Green float64
	Blue  float64
}

// Cell carries text and/or a background fill.
type Cell struct {
	Text string
	Fill *Fill
}

// ResizeRequest sets the sheet's grid dimensions.
type ResizeRequest struct {
	Rows int
	Cols int
}

// ColumnWidthRequest sets a pixel width across a column range.
type ColumnWidthRequest struct {
	Range  GridRange
	Pixels int
}

// UpdateRequest is the single batch cell update: header/date row plus
// one colored row per activity.
type UpdateRequest struct {
	Range GridRange
	Rows  [][]Cell
}

// Sheets is the spreadsheet collaborator. Implementations own all
// transport detail; callers only hand over request shapes.
type Sheets interface {
	Resize(ctx context.Context, spreadsheetID string, req ResizeRequest) error
	SetColumnWidths(ctx context.Context, spreadsheetID string, req ColumnWidthRequest) error
	BatchUpdate(ctx context.Context, spreadsheetID string, req UpdateRequest) error
}

// Session is the opaque authorized-request capability handed back by
// sign-in. The core only ever asks whether it is live.
type Session interface {
	Valid() bool
}

// Authenticator is the sign-in collaborator.
type Authenticator interface {
	// RestorePreviousSession resumes a prior sign-in if one exists.
	RestorePreviousSession(ctx context.Context) (Session, error)
	// SignIn runs an interactive sign-in requesting spreadsheet scope.
	SignIn(ctx context.Context) (Session, error)
}
