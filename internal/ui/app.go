// Package ui is the interactive year grid: one row per activity, one
// column per day of the current year, space to toggle the cell under
// the cursor. All mutations happen on the Bubble Tea event loop, so
// the journal service's single-writer contract holds.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yojoots/colorjournal/internal/habit"
	"github.com/yojoots/colorjournal/internal/journal"
	"github.com/yojoots/colorjournal/internal/ledger"
	"github.com/yojoots/colorjournal/internal/streak"
	"github.com/yojoots/colorjournal/internal/version"
)

type mode int

const (
	modeGrid mode = iota
	modeRename
)

const cellWidth = 2

type Model struct {
	svc        *journal.Service
	theme      Theme
	year       int
	grid       *ledger.Grid
	activities []habit.Activity

	mode      mode
	cursorDay int // 1-based day of year
	cursorAct int
	rename    textinput.Model

	width  int
	height int
	status string
}

// Run opens the grid TUI against the given service. The grid is
// anchored to the year containing now and does not roll over at the
// year boundary.
func Run(svc *journal.Service) error {
	now := time.Now()
	m := Model{
		svc:       svc,
		theme:     DefaultTheme,
		year:      now.Year(),
		cursorDay: ledger.DayOfYear(now),
	}
	m.reload()

	ri := textinput.New()
	ri.Placeholder = "activity name"
	ri.CharLimit = 40
	ri.Width = 30
	m.rename = ri

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) reload() {
	m.activities = m.svc.Activities()
	m.grid = m.svc.Grid(m.year)
	if m.cursorAct >= len(m.activities) {
		m.cursorAct = len(m.activities) - 1
	}
	if m.cursorAct < 0 {
		m.cursorAct = 0
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeRename {
			return m.updateRename(msg)
		}
		return m.updateGrid(msg.String())
	}
	return m, nil
}

func (m Model) updateGrid(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.cursorDay > 1 {
			m.cursorDay--
		}
	case "right", "l":
		if m.cursorDay < m.grid.DayCount() {
			m.cursorDay++
		}
	case "up", "k":
		if m.cursorAct > 0 {
			m.cursorAct--
		}
	case "down", "j":
		if m.cursorAct < len(m.activities)-1 {
			m.cursorAct++
		}
	case "pgup", "b":
		m.cursorDay -= 28
		if m.cursorDay < 1 {
			m.cursorDay = 1
		}
	case "pgdown", "w":
		m.cursorDay += 28
		if m.cursorDay > m.grid.DayCount() {
			m.cursorDay = m.grid.DayCount()
		}
	case "t":
		now := time.Now()
		if now.Year() == m.year {
			m.cursorDay = ledger.DayOfYear(now)
		}
	case " ", "enter":
		if len(m.activities) == 0 {
			break
		}
		key := ledger.DayKey(ledger.DateOfDay(m.year, m.cursorDay))
		on := !m.svc.Active(key, m.cursorAct)
		m.svc.Toggle(key, m.cursorAct, on)
		if on {
			m.status = fmt.Sprintf("Marked %s on %s", m.activities[m.cursorAct].Name, key)
		} else {
			m.status = fmt.Sprintf("Unmarked %s on %s", m.activities[m.cursorAct].Name, key)
		}
	case "r":
		if len(m.activities) == 0 {
			break
		}
		m.mode = modeRename
		m.rename.SetValue(m.activities[m.cursorAct].Name)
		m.rename.Focus()
	}
	return m, nil
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		m.rename.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.rename.Value())
		if name != "" {
			a := m.activities[m.cursorAct]
			m.svc.UpdateActivity(m.cursorAct, name, a.Color)
			m.activities = m.svc.Activities()
			m.status = "Renamed to " + name
		}
		m.mode = modeGrid
		m.rename.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s — %d", version.GetShortVersion(), m.year)
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n\n")

	nameWidth := 14
	cols := (m.width - nameWidth - 2) / cellWidth
	if cols < 7 {
		cols = 7
	}
	first, last := window(m.cursorDay, cols, m.grid.DayCount())

	// month ruler across the visible day range
	b.WriteString(strings.Repeat(" ", nameWidth+1))
	b.WriteString(m.theme.Hint.Render(m.ruler(first, last)))
	b.WriteString("\n")

	for idx, a := range m.activities {
		label := a.Name
		if runes := []rune(label); len(runes) > nameWidth {
			label = string(runes[:nameWidth-1]) + "…"
		}
		nameStyle := m.theme.Label.Copy().Foreground(lipgloss.Color(a.Color.Hex()))
		// pad before styling so the escape sequences don't count toward the width
		if pad := nameWidth - lipgloss.Width(label); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(nameStyle.Render(label))
		b.WriteString(" ")

		overlay := segmentEnds(m.grid, idx)
		for day := first; day <= last; day++ {
			b.WriteString(m.renderCell(day, idx, a, overlay))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	if m.mode == modeRename {
		b.WriteString("\n\n")
		b.WriteString("Rename: " + m.rename.View())
	}
	return b.String()
}

// renderCell draws one day cell: filled block in the activity color
// when marked, the run length overlayed on the last cell of a streak.
func (m Model) renderCell(day, idx int, a habit.Activity, overlay map[int]int) string {
	selected := day == m.cursorDay && idx == m.cursorAct
	active := m.grid.Active(day, idx)

	var content string
	var style lipgloss.Style
	switch {
	case active:
		style = lipgloss.NewStyle().Background(lipgloss.Color(a.Color.Hex()))
		if n, ok := overlay[day]; ok {
			digits := fmt.Sprintf("%d", n)
			if len(digits) > cellWidth {
				digits = digits[len(digits)-cellWidth:]
			}
			content = fmt.Sprintf("%*s", cellWidth, digits)
			style = style.Inherit(m.theme.Overlay)
		} else {
			content = strings.Repeat(" ", cellWidth)
		}
	default:
		content = " ·"
		style = m.theme.Empty
	}
	if selected {
		style = style.Reverse(true)
	}
	return style.Render(content)
}

func (m Model) ruler(first, last int) string {
	var b strings.Builder
	prevMonth := time.Month(0)
	for day := first; day <= last; day++ {
		date := ledger.DateOfDay(m.year, day)
		if date.Month() != prevMonth {
			label := date.Format("Jan")
			if len(label) > cellWidth {
				label = label[:cellWidth]
			}
			b.WriteString(fmt.Sprintf("%-*s", cellWidth, label))
			prevMonth = date.Month()
		} else {
			b.WriteString(strings.Repeat(" ", cellWidth))
		}
	}
	return b.String()
}

func (m Model) statusBar() string {
	if m.status != "" {
		return m.theme.Success.Render(m.status) + "\n" + m.hints()
	}
	return m.hints()
}

func (m Model) hints() string {
	date := ledger.DateOfDay(m.year, m.cursorDay).Format("Mon Jan 2")
	cur := 0
	if len(m.activities) > 0 {
		cur = streak.Current(m.grid, m.cursorAct, ledger.DateOfDay(m.year, m.cursorDay))
	}
	left := fmt.Sprintf("%s  (day %d/%d)  streak %d", date, m.cursorDay, m.grid.DayCount(), cur)
	right := "hjkl move · space toggle · t today · r rename · q quit"
	return m.theme.StatusBar.Render(left + "   " + right)
}

// segmentEnds maps the last day of each streak (length ≥ 2) to its
// run length, for the in-grid overlay.
func segmentEnds(g *ledger.Grid, idx int) map[int]int {
	out := map[int]int{}
	for _, seg := range streak.Segments(g, idx) {
		out[seg.Start+seg.Length-1] = seg.Length
	}
	return out
}

// window centers the cursor inside a span of cols days, clamped to
// the year.
func window(cursor, cols, dayCount int) (int, int) {
	first := cursor - cols/2
	if first < 1 {
		first = 1
	}
	last := first + cols - 1
	if last > dayCount {
		last = dayCount
		first = last - cols + 1
		if first < 1 {
			first = 1
		}
	}
	return first, last
}
