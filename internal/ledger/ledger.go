// Package ledger keeps the per-day activity record: a sparse map from
// YYYY-MM-DD day keys to the set of catalog positions marked active
// that day, plus the dense year projection derived from it. Absence
// of a day or of an index means inactive, not unknown.
package ledger

import (
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/yojoots/colorjournal/internal/store"
)

// Mark is the glyph written into export cells for an active day.
const Mark = "✓"

// Ledger is the sparse day record. Every toggle persists the whole
// structure synchronously; a failed write is logged and swallowed so
// the session keeps its in-memory state.
//
// Ledger is not safe for concurrent use; a single owner mutates it.
type Ledger struct {
	kv   store.KV
	days map[string]map[int]bool
	grid *Grid // live projection, patched on toggles; nil until built
}

// Load reads the persisted ledger, falling back to empty when nothing
// is stored or the blob won't decode.
func Load(kv store.KV) *Ledger {
	l := &Ledger{kv: kv, days: map[string]map[int]bool{}}

	blob, err := kv.Get(store.KeyLedger)
	if err != nil {
		slog.Warn("ledger load failed, starting empty", "err", err)
		return l
	}
	if blob == nil {
		return l
	}
	if err := json.Unmarshal(blob, &l.days); err != nil {
		slog.Warn("ledger blob undecodable, starting empty", "err", err)
		l.days = map[string]map[int]bool{}
	}
	return l
}

// ToggleOn marks (dayKey, activityIndex) active. Idempotent.
func (l *Ledger) ToggleOn(dayKey string, activityIndex int) {
	day := l.days[dayKey]
	if day == nil {
		day = map[int]bool{}
		l.days[dayKey] = day
	}
	day[activityIndex] = true
	l.patchGrid(dayKey, activityIndex, true)
	l.persist()
}

// ToggleOff marks (dayKey, activityIndex) inactive. Idempotent.
func (l *Ledger) ToggleOff(dayKey string, activityIndex int) {
	if day := l.days[dayKey]; day != nil {
		delete(day, activityIndex)
		if len(day) == 0 {
			delete(l.days, dayKey)
		}
	}
	l.patchGrid(dayKey, activityIndex, false)
	l.persist()
}

// Active reports whether (dayKey, activityIndex) is marked.
func (l *Ledger) Active(dayKey string, activityIndex int) bool {
	return l.days[dayKey][activityIndex]
}

// StatusVector returns the dense boolean row for dayKey, one slot per
// catalog position, false for anything not recorded.
func (l *Ledger) StatusVector(dayKey string, activityCount int) []bool {
	out := make([]bool, activityCount)
	for idx, on := range l.days[dayKey] {
		if on && idx >= 0 && idx < activityCount {
			out[idx] = true
		}
	}
	return out
}

// RebuildProjection recomputes the dense grid for every day of year
// and keeps it live for incremental patching by toggles.
func (l *Ledger) RebuildProjection(activityCount, year int) *Grid {
	g := newGrid(year, activityCount)
	for day := 1; day <= g.DayCount(); day++ {
		key := DayKey(DateOfDay(year, day))
		for idx, on := range l.days[key] {
			if on {
				g.set(day, idx, true)
			}
		}
	}
	l.grid = g
	return g
}

// DayKeys returns every stored day key in ascending order.
func (l *Ledger) DayKeys() []string {
	keys := make([]string, 0, len(l.days))
	for k := range l.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExportRows yields one row per stored day, ascending: the day key
// followed by a mark or blank per catalog position.
func (l *Ledger) ExportRows(activityCount int) [][]string {
	keys := l.DayKeys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		row := make([]string, 0, activityCount+1)
		row = append(row, key)
		for _, on := range l.StatusVector(key, activityCount) {
			if on {
				row = append(row, Mark)
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ClearAll empties the ledger and removes its persisted blob. The
// catalog is untouched.
func (l *Ledger) ClearAll() {
	l.days = map[string]map[int]bool{}
	if l.grid != nil {
		l.grid = newGrid(l.grid.Year, l.grid.ActivityCount)
	}
	if err := l.kv.Delete(store.KeyLedger); err != nil {
		slog.Warn("ledger clear failed", "err", err)
	}
}

// ApplyMapping rewrites every day's sparse index map through
// oldIndex→newIndex, dropping indices with no mapping. It persists
// immediately; it must run before the catalog commits the reorder or
// deletion the mapping was built from, otherwise the mapping no
// longer describes the indices actually stored here.
func (l *Ledger) ApplyMapping(mapping map[int]int) {
	for key, day := range l.days {
		remapped := make(map[int]bool, len(day))
		for idx, on := range day {
			if to, ok := mapping[idx]; ok {
				remapped[to] = on
			}
		}
		if len(remapped) == 0 {
			delete(l.days, key)
			continue
		}
		l.days[key] = remapped
	}
	l.grid = nil // stale column order; caller rebuilds
	l.persist()
}

func (l *Ledger) patchGrid(dayKey string, idx int, active bool) {
	if l.grid == nil {
		return
	}
	t, err := time.Parse(DayKeyLayout, dayKey)
	if err != nil || t.Year() != l.grid.Year {
		return
	}
	l.grid.set(DayOfYear(t), idx, active)
}

func (l *Ledger) persist() {
	blob, err := json.Marshal(l.days)
	if err != nil {
		slog.Warn("ledger serialize failed", "err", err)
		return
	}
	if err := l.kv.Put(store.KeyLedger, blob); err != nil {
		slog.Warn("ledger write failed", "err", err)
	}
}
