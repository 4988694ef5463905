package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yojoots/colorjournal/internal/store"
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

func TestStatusVector_MissingDayIsAllFalse(t *testing.T) {
	l := Load(newMemKV())
	got := l.StatusVector("2026-05-01", 4)
	assert.Equal(t, []bool{false, false, false, false}, got)
}

func TestToggleOnOff_RoundTripRestoresPersistedState(t *testing.T) {
	kv := newMemKV()
	l := Load(kv)

	l.ToggleOn("2026-05-01", 1)
	assert.True(t, l.Active("2026-05-01", 1))
	assert.Equal(t, []bool{false, true}, l.StatusVector("2026-05-01", 2))

	// survives a reload
	assert.True(t, Load(kv).Active("2026-05-01", 1))

	l.ToggleOff("2026-05-01", 1)
	assert.False(t, l.Active("2026-05-01", 1))

	// persisted state is back to empty
	reloaded := Load(kv)
	assert.False(t, reloaded.Active("2026-05-01", 1))
	assert.Empty(t, reloaded.DayKeys())
}

func TestToggle_Idempotent(t *testing.T) {
	l := Load(newMemKV())
	l.ToggleOn("2026-05-01", 0)
	l.ToggleOn("2026-05-01", 0)
	assert.Equal(t, []bool{true}, l.StatusVector("2026-05-01", 1))

	l.ToggleOff("2026-05-01", 0)
	l.ToggleOff("2026-05-01", 0)
	assert.Equal(t, []bool{false}, l.StatusVector("2026-05-01", 1))
}

func TestRebuildProjection_LeapAndCommonYears(t *testing.T) {
	l := Load(newMemKV())

	assert.Equal(t, 366, l.RebuildProjection(3, 2024).DayCount())
	assert.Equal(t, 365, l.RebuildProjection(3, 2025).DayCount())
}

func TestRebuildProjection_PlacesMarksByDayOfYear(t *testing.T) {
	l := Load(newMemKV())
	l.ToggleOn("2025-01-01", 0)
	l.ToggleOn("2025-12-31", 2)
	l.ToggleOn("2024-06-01", 1) // different year, must not appear

	g := l.RebuildProjection(3, 2025)
	assert.True(t, g.Active(1, 0))
	assert.True(t, g.Active(365, 2))
	for day := 1; day <= g.DayCount(); day++ {
		assert.False(t, g.Active(day, 1), "day %d", day)
	}
}

func TestToggle_PatchesLiveProjection(t *testing.T) {
	l := Load(newMemKV())
	g := l.RebuildProjection(2, 2025)

	l.ToggleOn("2025-06-01", 0)
	assert.True(t, g.Active(DayOfYear(DateOfDay(2025, 152)), 0))
	assert.True(t, g.Active(152, 0)) // 2025-06-01 is day 152

	l.ToggleOff("2025-06-01", 0)
	assert.False(t, g.Active(152, 0))

	// other years don't touch the live grid
	l.ToggleOn("2024-06-01", 0)
	assert.False(t, g.Active(153, 0))
}

func TestExportRows_SortedAscending(t *testing.T) {
	l := Load(newMemKV())
	l.ToggleOn("2026-03-02", 1)
	l.ToggleOn("2026-01-15", 0)

	rows := l.ExportRows(2)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2026-01-15", Mark, ""}, rows[0])
	assert.Equal(t, []string{"2026-03-02", "", Mark}, rows[1])
}

func TestClearAll_EmptiesLedgerAndStore(t *testing.T) {
	kv := newMemKV()
	l := Load(kv)
	l.ToggleOn("2026-05-01", 0)
	require.Contains(t, kv.blobs, store.KeyLedger)

	l.ClearAll()
	assert.Empty(t, l.DayKeys())
	assert.NotContains(t, kv.blobs, store.KeyLedger)
}

func TestMoveMapping_MoveToFront(t *testing.T) {
	// moving index 2 to position 0 of three items
	m := MoveMapping(map[int]struct{}{2: {}}, 0, 3)
	assert.Equal(t, map[int]int{2: 0, 0: 1, 1: 2}, m)
}

func TestMoveMapping_MoveForward(t *testing.T) {
	// moving index 0 to offset 2 of three items: [b a c]
	m := MoveMapping(map[int]struct{}{0: {}}, 2, 3)
	assert.Equal(t, map[int]int{1: 0, 0: 1, 2: 2}, m)
}

func TestMoveMapping_UntouchedIndicesMapToThemselves(t *testing.T) {
	m := MoveMapping(map[int]struct{}{1: {}}, 1, 4)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 3}, m)
}

func TestDeleteMapping_DropsPositionAndShiftsDown(t *testing.T) {
	m := DeleteMapping(1, 4)
	_, hasDeleted := m[1]
	assert.False(t, hasDeleted)
	assert.Equal(t, 0, m[0])
	assert.Equal(t, 1, m[2])
	assert.Equal(t, 2, m[3])
}

func TestApplyMapping_RewritesEveryDay(t *testing.T) {
	kv := newMemKV()
	l := Load(kv)
	l.ToggleOn("2026-02-01", 1)
	l.ToggleOn("2026-02-02", 3)
	l.ToggleOn("2026-02-03", 1)

	// delete position 1: its marks vanish, index 3 becomes 2
	l.ApplyMapping(DeleteMapping(1, 4))

	assert.False(t, l.Active("2026-02-01", 1))
	assert.Equal(t, []string{"2026-02-02"}, l.DayKeys())
	assert.True(t, l.Active("2026-02-02", 2))

	// change survives a reload
	assert.True(t, Load(kv).Active("2026-02-02", 2))
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
	assert.Equal(t, 366, DaysInYear(2000))
	assert.Equal(t, 365, DaysInYear(1900))
}

func TestDayKeyAndDayOfYear(t *testing.T) {
	d := DateOfDay(2025, 152)
	assert.Equal(t, "2025-06-01", DayKey(d))
	assert.Equal(t, 152, DayOfYear(d))
	assert.Equal(t, "2024-12-31", DayKey(DateOfDay(2024, 366)))
}
