package ohash

import "github.com/theflywheel/ohash/probe"

// SlotState tags the contents of a slot.
type SlotState uint8

const (
	// SlotEmpty has never held an entry since the last resize. It ends a
	// lookup.
	SlotEmpty SlotState = iota
	// SlotTombstone held an entry that was deleted. Lookups step over it and
	// inserts may reuse it.
	SlotTombstone
	// SlotOccupied holds a live entry.
	SlotOccupied
)

func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotTombstone:
		return "tombstone"
	case SlotOccupied:
		return "occupied"
	}
	return "unknown"
}

// Entry is a stored record. Count is the number of times the same key and
// value were inserted. The table keeps its own copy of Key and hands out
// copies, so mutating a Seq key after Insert or inside Traverse does not
// move the entry.
type Entry[V any] struct {
	Key   probe.Key
	Value V
	Count int
}

// Slot is one position of the table. Entry is meaningful only when State is
// SlotOccupied.
type Slot[V any] struct {
	State SlotState
	Entry Entry[V]
}

// Occupied reports whether the slot holds a live entry.
func (s Slot[V]) Occupied() bool { return s.State == SlotOccupied }

// entry returns the stored entry with a key the caller may mutate.
func (s Slot[V]) entry() Entry[V] {
	e := s.Entry
	e.Key = probe.Clone(e.Key)
	return e
}
