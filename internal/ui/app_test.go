package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yojoots/colorjournal/internal/habit"
	"github.com/yojoots/colorjournal/internal/journal"
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

func newTestModel(t *testing.T, names ...string) Model {
	t.Helper()
	svc := journal.Open(newMemKV())
	for svc.ActivityCount() > 0 {
		svc.RemoveActivity(0)
	}
	for _, n := range names {
		svc.AddActivity(n, habit.RGB(47, 128, 237))
	}
	m := Model{
		svc:       svc,
		theme:     DefaultTheme,
		year:      2025,
		cursorDay: 1,
		width:     80,
	}
	m.reload()
	return m
}

func withColorProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })
}

// Every activity row must line up with the month ruler regardless of
// how many escape sequences the label style emits, so the same view
// is checked under both a bare and a truecolor profile.
func TestNameColumnAlignment(t *testing.T) {
	for _, tc := range []struct {
		name    string
		profile termenv.Profile
	}{
		{"ascii", termenv.Ascii},
		{"truecolor", termenv.TrueColor},
	} {
		t.Run(tc.name, func(t *testing.T) {
			withColorProfile(t, tc.profile)

			m := newTestModel(t, "Exercise", "Read", "Practice music")
			m.svc.Toggle("2025-01-01", 0, true)
			m.svc.Toggle("2025-01-02", 0, true)
			m.reload()

			lines := strings.Split(m.View(), "\n")
			require.GreaterOrEqual(t, len(lines), 7)

			ruler := lines[2]
			rows := lines[3:6]
			for _, row := range rows {
				assert.Equal(t, lipgloss.Width(ruler), lipgloss.Width(row),
					"row %q out of line with the ruler", row)
			}
			assert.Equal(t, lipgloss.Width(rows[0]), lipgloss.Width(rows[1]))
			assert.Equal(t, lipgloss.Width(rows[1]), lipgloss.Width(rows[2]))
		})
	}
}

func TestLongNamesTruncateByRune(t *testing.T) {
	withColorProfile(t, termenv.Ascii)

	m := newTestModel(t, "Écriture créative")
	view := m.View()

	assert.True(t, utf8.ValidString(view))
	assert.Contains(t, view, "Écriture créa…")
	assert.NotContains(t, view, "Écriture créative")
}
