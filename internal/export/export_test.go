package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yojoots/colorjournal/internal/habit"
	"github.com/yojoots/colorjournal/internal/ledger"
)

type memKV struct {
	blobs map[string][]byte
}

func newMemKV() *memKV { return &memKV{blobs: map[string][]byte{}} }

func (m *memKV) Get(key string) ([]byte, error) { return m.blobs[key], nil }
func (m *memKV) Put(key string, value []byte) error {
	m.blobs[key] = value
	return nil
}
func (m *memKV) Delete(key string) error {
	delete(m.blobs, key)
	return nil
}

func twoActivities() []habit.Activity {
	return []habit.Activity{
		habit.NewActivity("A", habit.RGB(255, 0, 0)),
		habit.NewActivity("B", habit.RGB(0, 255, 0)),
	}
}

func TestCSV_EmptyLedgerEmitsEveryDay(t *testing.T) {
	l := ledger.Load(newMemKV())
	g := l.RebuildProjection(2, 2025)

	out := CSV(g, twoActivities())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 366) // header + 365 data rows

	assert.Equal(t, "Date,A,B", lines[0])
	assert.Equal(t, "2025-01-01,,", lines[1])
	assert.Equal(t, "2025-12-31,,", lines[365])
}

func TestCSV_LeapYearEmits367Lines(t *testing.T) {
	l := ledger.Load(newMemKV())
	g := l.RebuildProjection(2, 2024)

	out := CSV(g, twoActivities())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 367)
	assert.Equal(t, "2024-02-29,,", lines[60])
}

func TestCSV_MarksActiveCells(t *testing.T) {
	l := ledger.Load(newMemKV())
	l.ToggleOn("2025-06-01", 1)
	g := l.RebuildProjection(2, 2025)

	out := CSV(g, twoActivities())
	lines := strings.Split(out, "\n")
	assert.Equal(t, "2025-06-01,,"+ledger.Mark, lines[152])
}

func TestCSV_NamesAreNotQuoted(t *testing.T) {
	// a comma in a name shifts columns; the format keeps the
	// historical behavior rather than quoting
	acts := []habit.Activity{habit.NewActivity("a,b", habit.RGB(0, 0, 0))}
	l := ledger.Load(newMemKV())
	g := l.RebuildProjection(1, 2025)

	out := CSV(g, acts)
	assert.True(t, strings.HasPrefix(out, "Date,a,b\n"))
}

func TestColoredBatch_Shape(t *testing.T) {
	l := ledger.Load(newMemKV())
	l.ToggleOn("2025-01-02", 0)
	g := l.RebuildProjection(2, 2025)

	batch := ColoredBatch(g, twoActivities())

	require.Len(t, batch.Header, 366) // corner cell + 365 labels
	assert.Equal(t, "", batch.Header[0])
	assert.Equal(t, "Jan 1", batch.Header[1])
	assert.Equal(t, "Dec 31", batch.Header[365])

	require.Len(t, batch.Rows, 2)
	assert.Equal(t, "A", batch.Rows[0].Name)
	require.Len(t, batch.Rows[0].Cells, 365)

	// day 2 is marked for activity 0 and carries its color
	cell := batch.Rows[0].Cells[1]
	require.NotNil(t, cell)
	assert.InDelta(t, 1.0, cell.R, 1e-9)
	assert.InDelta(t, 0.0, cell.G, 1e-9)

	// unmarked cells are empty
	assert.Nil(t, batch.Rows[0].Cells[0])
	assert.Nil(t, batch.Rows[1].Cells[1])
}
