package uberstate

import (
	"log"
)

// entry is a (value, triggers) pair, living for the entire generation
// attempt (spec.md §3 UberStateEntry).
type entry struct {
	value    Value
	triggers []int
}

// Store is the keyed table of typed uberState values with per-key trigger
// index sets, grounded on original_source/wotw_seedgen/src/world/uber_states
// and generalized from dungo's map-keyed Graph.Rooms idiom
// (pkg/graph/graph.go).
type Store struct {
	entries         map[Identifier]*entry
	registeredCount int
}

// NewStore initializes one entry per known identifier with its default
// value. defaults maps every identifier the upstream uberState metadata
// declares to its Kind-appropriate zero value (spec.md §4.2 "new(metadata)").
func NewStore(defaults map[Identifier]Value) *Store {
	s := &Store{entries: make(map[Identifier]*entry, len(defaults))}
	for id, v := range defaults {
		s.entries[id] = &entry{value: v}
	}
	return s
}

func (s *Store) entryFor(id Identifier) *entry {
	e, ok := s.entries[id]
	if !ok {
		// Unknown key: the fallback entry catches writes to unknown keys
		// (spec.md §4.2), logging a warning and defaulting to Boolean(false).
		log.Printf("uberstate: write/read to unknown identifier %s, using Boolean(false) fallback", id)
		e = &entry{value: BoolValue(false)}
		s.entries[id] = e
	}
	return e
}

// NewTriggerIndex allocates and returns the next monotonically increasing
// trigger index. Trigger indices are assigned once per registered event and
// are never reused (spec.md §4.2 invariants).
func (s *Store) NewTriggerIndex() int {
	idx := s.registeredCount
	s.registeredCount++
	return idx
}

// BindTrigger appends idx to the set of trigger indices fired whenever id
// changes value. Used once per identifier a Condition or Binding trigger
// references, at registration time (spec.md §4.2, §9).
func (s *Store) BindTrigger(id Identifier, idx int) {
	e := s.entryFor(id)
	e.triggers = append(e.triggers, idx)
}

// Set stores value at id if it differs from the current value (no type
// coercion — differing Kind always counts as a change) and returns the
// trigger indices to fire. Returns nil if the value was unchanged.
func (s *Store) Set(id Identifier, value Value) []int {
	e := s.entryFor(id)
	if e.value.Equal(value) {
		return nil
	}
	e.value = value
	if len(e.triggers) == 0 {
		return nil
	}
	out := make([]int, len(e.triggers))
	copy(out, e.triggers)
	return out
}

// Get returns the stored value, or a Boolean(false) fallback with a warning
// if id is unknown (spec.md §4.2).
func (s *Store) Get(id Identifier) Value {
	return s.entryFor(id).value
}

// Contains reports whether id has an explicitly-registered entry (as
// opposed to falling back on first access). Useful for readonly/validation
// checks that must not themselves create fallback entries.
func (s *Store) Contains(id Identifier) bool {
	_, ok := s.entries[id]
	return ok
}
