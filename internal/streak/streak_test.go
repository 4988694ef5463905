package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// gridWith marks the given days of year active for activity 0 in 2025.
func gridWith(t *testing.T, days ...int) *ledger.Grid {
	t.Helper()
	l := ledger.Load(newMemKV())
	for _, d := range days {
		l.ToggleOn(ledger.DayKey(ledger.DateOfDay(2025, d)), 0)
	}
	return l.RebuildProjection(1, 2025)
}

func TestSegments_ReportsRunsOfTwoOrMore(t *testing.T) {
	g := gridWith(t, 5, 6, 7, 10)

	segs := Segments(g, 0)
	require.Len(t, segs, 1)
	assert.Equal(t, 5, segs[0].Start)
	assert.Equal(t, 3, segs[0].Length)
	assert.Equal(t, 0, segs[0].ActivityIndex)
}

func TestSegments_RunReachingYearEnd(t *testing.T) {
	g := gridWith(t, 363, 364, 365)

	segs := Segments(g, 0)
	require.Len(t, segs, 1)
	assert.Equal(t, 363, segs[0].Start)
	assert.Equal(t, 3, segs[0].Length)
}

func TestSegments_EmptyColumn(t *testing.T) {
	g := gridWith(t)
	assert.Empty(t, Segments(g, 0))
}

func TestCurrent_CountsBackwardFromToday(t *testing.T) {
	g := gridWith(t, 18, 19, 20)

	today := ledger.DateOfDay(2025, 20)
	assert.Equal(t, 3, Current(g, 0, today))
}

func TestCurrent_ZeroWhenTodayInactive(t *testing.T) {
	g := gridWith(t, 18, 19)

	today := ledger.DateOfDay(2025, 20)
	assert.Equal(t, 0, Current(g, 0, today))
}

func TestCurrent_StopsAtDayOne(t *testing.T) {
	g := gridWith(t, 1, 2, 3)

	today := ledger.DateOfDay(2025, 3)
	assert.Equal(t, 3, Current(g, 0, today))
}

func TestCurrent_ZeroOutsideGridYear(t *testing.T) {
	g := gridWith(t, 18, 19, 20)

	today := ledger.DateOfDay(2024, 20)
	assert.Equal(t, 0, Current(g, 0, today))
}

func TestLongest(t *testing.T) {
	g := gridWith(t, 5, 6, 7, 10, 40, 41)
	assert.Equal(t, 3, Longest(g, 0))

	empty := gridWith(t)
	assert.Equal(t, 0, Longest(empty, 0))
}
