// Package journal composes the activity catalog and the day ledger
// into one owned service. It exists so catalog reorders and deletes
// cannot be applied without the matching ledger remap: the remap must
// run against the pre-mutation catalog order, and Service is the only
// place both halves are visible.
//
// Service follows single-writer discipline: all mutations come from
// one goroutine (the command or TUI event loop). There is no internal
// locking; background work must deliver results back to that
// goroutine before touching state.
package journal

import (
	"time"

	"github.com/yojoots/colorjournal/internal/habit"
	"github.com/yojoots/colorjournal/internal/ledger"
	"github.com/yojoots/colorjournal/internal/store"
)

type Service struct {
	catalog *habit.Catalog
	ledger  *ledger.Ledger
	subs    []func()
}

// Open loads catalog and ledger from the shared store.
func Open(kv store.KV) *Service {
	return &Service{
		catalog: habit.LoadCatalog(kv),
		ledger:  ledger.Load(kv),
	}
}

// New wires a service from already-loaded parts (tests, mostly).
func New(c *habit.Catalog, l *ledger.Ledger) *Service {
	return &Service{catalog: c, ledger: l}
}

// Subscribe registers a callback invoked after every mutation.
func (s *Service) Subscribe(fn func()) { s.subs = append(s.subs, fn) }

func (s *Service) publish() {
	for _, fn := range s.subs {
		fn()
	}
}

// Activities returns the current ordered catalog.
func (s *Service) Activities() []habit.Activity { return s.catalog.Activities() }

// ActivityCount returns the catalog length.
func (s *Service) ActivityCount() int { return s.catalog.Len() }

// AddActivity appends a new activity.
func (s *Service) AddActivity(name string, color habit.Color) habit.Activity {
	a := s.catalog.Add(name, color)
	s.publish()
	return a
}

// UpdateActivity edits name/color in place, identity preserved.
func (s *Service) UpdateActivity(pos int, name string, color habit.Color) {
	s.catalog.Update(pos, name, color)
	s.publish()
}

// RemoveActivity deletes the activity at pos. The ledger is remapped
// first, while its stored indices still match the catalog order: the
// removed position's data is dropped and everything above shifts
// down one.
func (s *Service) RemoveActivity(pos int) {
	if pos < 0 || pos >= s.catalog.Len() {
		return
	}
	s.ledger.ApplyMapping(ledger.DeleteMapping(pos, s.catalog.Len()))
	s.catalog.DeleteAt(pos)
	s.publish()
}

// MoveActivity reorders the catalog, remapping the ledger first with
// the same (from, to) pair so historical marks follow the activity,
// not the slot it used to occupy.
func (s *Service) MoveActivity(fromPositions map[int]struct{}, toPosition int) {
	s.ledger.ApplyMapping(ledger.MoveMapping(fromPositions, toPosition, s.catalog.Len()))
	s.catalog.Move(fromPositions, toPosition)
	s.publish()
}

// Toggle sets (dayKey, activityIndex) on or off.
func (s *Service) Toggle(dayKey string, activityIndex int, on bool) {
	if activityIndex < 0 || activityIndex >= s.catalog.Len() {
		return
	}
	if on {
		s.ledger.ToggleOn(dayKey, activityIndex)
	} else {
		s.ledger.ToggleOff(dayKey, activityIndex)
	}
	s.publish()
}

// Active reports one cell of the ledger.
func (s *Service) Active(dayKey string, activityIndex int) bool {
	return s.ledger.Active(dayKey, activityIndex)
}

// StatusVector returns the dense row for a day, sized to the current
// catalog.
func (s *Service) StatusVector(dayKey string) []bool {
	return s.ledger.StatusVector(dayKey, s.catalog.Len())
}

// Grid rebuilds the dense projection for year.
func (s *Service) Grid(year int) *ledger.Grid {
	return s.ledger.RebuildProjection(s.catalog.Len(), year)
}

// Ledger exposes the underlying day ledger for read-only consumers
// (export, remote push).
func (s *Service) Ledger() *ledger.Ledger { return s.ledger }

// ClearLedger wipes all day data, keeping the catalog.
func (s *Service) ClearLedger() {
	s.ledger.ClearAll()
	s.publish()
}

// PendingToday counts activities not yet marked for today, feeding
// the daily reminder.
func (s *Service) PendingToday(now time.Time) int {
	pending := 0
	for _, on := range s.StatusVector(ledger.DayKey(now)) {
		if !on {
			pending++
		}
	}
	return pending
}
