package habit

import (
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/yojoots/colorjournal/internal/store"
)

// Catalog is the ordered activity list. All mutations persist the
// full list synchronously; a failed write is logged and otherwise
// swallowed, so in-memory state stays authoritative for the session.
//
// Catalog is not safe for concurrent use; a single owner mutates it.
type Catalog struct {
	kv    store.KV
	items []Activity
}

// activityRecord is the persisted wire form (hex color, not floats).
type activityRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"colorHex"`
}

// LoadCatalog reads the persisted catalog, falling back to the
// built-in defaults when nothing is stored or the blob won't decode.
func LoadCatalog(kv store.KV) *Catalog {
	c := &Catalog{kv: kv}

	blob, err := kv.Get(store.KeyActivities)
	if err != nil || blob == nil {
		if err != nil {
			slog.Warn("catalog load failed, using defaults", "err", err)
		}
		c.items = DefaultActivities()
		return c
	}

	var records []activityRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		slog.Warn("catalog blob undecodable, using defaults", "err", err)
		c.items = DefaultActivities()
		return c
	}

	c.items = make([]Activity, 0, len(records))
	for _, r := range records {
		col, err := ParseHex(r.ColorHex)
		if err != nil {
			col = Color{}
		}
		c.items = append(c.items, Activity{ID: r.ID, Name: r.Name, Color: col})
	}
	return c
}

// Len returns the number of activities.
func (c *Catalog) Len() int { return len(c.items) }

// Activities returns a copy of the ordered list.
func (c *Catalog) Activities() []Activity {
	out := make([]Activity, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the activity at pos and whether pos was in range.
func (c *Catalog) At(pos int) (Activity, bool) {
	if pos < 0 || pos >= len(c.items) {
		return Activity{}, false
	}
	return c.items[pos], true
}

// Add appends a new activity with a fresh id and persists.
func (c *Catalog) Add(name string, color Color) Activity {
	a := NewActivity(name, color)
	c.items = append(c.items, a)
	c.persist()
	return a
}

// DeleteAt removes the activity at pos. Out-of-range is a no-op.
// Callers owning ledger data must remap it before calling this.
func (c *Catalog) DeleteAt(pos int) {
	if pos < 0 || pos >= len(c.items) {
		return
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	c.persist()
}

// Move reorders the activities at the given positions to sit at
// toPosition, preserving their relative order. Out-of-range source
// positions are ignored. Callers owning ledger data must remap it
// with the same (from, to) pair before calling this.
func (c *Catalog) Move(fromPositions map[int]struct{}, toPosition int) {
	c.items = MoveSlice(c.items, fromPositions, toPosition)
	c.persist()
}

// Update edits name and color in place, keeping the id. Out-of-range
// is a no-op.
func (c *Catalog) Update(pos int, name string, color Color) {
	if pos < 0 || pos >= len(c.items) {
		return
	}
	c.items[pos].Name = name
	c.items[pos].Color = color
	c.persist()
}

func (c *Catalog) persist() {
	records := make([]activityRecord, 0, len(c.items))
	for _, a := range c.items {
		records = append(records, activityRecord{ID: a.ID, Name: a.Name, ColorHex: a.Color.Hex()})
	}
	blob, err := json.Marshal(records)
	if err != nil {
		slog.Warn("catalog serialize failed", "err", err)
		return
	}
	if err := c.kv.Put(store.KeyActivities, blob); err != nil {
		slog.Warn("catalog write failed", "err", err)
	}
}

// MoveSlice applies the sequence-move rule: the elements at
// fromPositions are pulled out (in order) and reinserted so the first
// of them lands at toPosition after the removals are accounted for.
// The ledger's index remap is built from this same rule.
func MoveSlice[T any](items []T, fromPositions map[int]struct{}, toPosition int) []T {
	from := make([]int, 0, len(fromPositions))
	for p := range fromPositions {
		if p >= 0 && p < len(items) {
			from = append(from, p)
		}
	}
	if len(from) == 0 {
		return items
	}
	sort.Ints(from)

	moved := make([]T, 0, len(from))
	for _, p := range from {
		moved = append(moved, items[p])
	}

	rest := make([]T, 0, len(items)-len(from))
	for i, it := range items {
		if _, ok := fromPositions[i]; !ok {
			rest = append(rest, it)
		}
	}

	// Destination shifts down by one for every removed slot before it.
	dest := toPosition
	for _, p := range from {
		if p < toPosition {
			dest--
		}
	}
	if dest < 0 {
		dest = 0
	}
	if dest > len(rest) {
		dest = len(rest)
	}

	out := make([]T, 0, len(items))
	out = append(out, rest[:dest]...)
	out = append(out, moved...)
	out = append(out, rest[dest:]...)
	return out
}
