package ohash

import (
	"iter"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/theflywheel/ohash/probe"
)

// Table is an open-addressing hash table using double hashing.
//
// A Table is not safe for concurrent use. Callers sharing one must serialize
// every call, reads included.
type Table[V any] struct {
	slots         []Slot[V]
	items         int
	maxLoadFactor float64
	equal         func(a, b V) bool
	log           *zap.Logger
}

// New creates a table with DefaultSize slots and DefaultMaxLoadFactor unless
// overridden by opts.
func New[V any](opts ...Option[V]) (*Table[V], error) {
	o := newOptions(opts)
	if o.cfg.Size < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "size %d", o.cfg.Size)
	}
	if !(o.cfg.MaxLoadFactor > 0 && o.cfg.MaxLoadFactor <= 1) {
		return nil, errors.Wrapf(ErrInvalidConfig, "max load factor %v", o.cfg.MaxLoadFactor)
	}
	if !probe.IsPrime(o.cfg.Size) {
		o.log.Warn("initial size is not prime, probes may not reach every slot",
			zap.Int("size", o.cfg.Size))
	}

	return &Table[V]{
		slots:         make([]Slot[V], o.cfg.Size),
		maxLoadFactor: o.cfg.MaxLoadFactor,
		equal:         o.equal,
		log:           o.log,
	}, nil
}

// Len returns the number of live entries.
func (t *Table[V]) Len() int {
	return t.items
}

// Cap returns the number of slots.
func (t *Table[V]) Cap() int {
	return len(t.slots)
}

// LoadFactor returns Len()/Cap().
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.items) / float64(len(t.slots))
}

// MaxLoadFactor returns the configured growth threshold.
func (t *Table[V]) MaxLoadFactor() float64 {
	return t.maxLoadFactor
}

// DefaultIndex returns the first slot probed for key.
func (t *Table[V]) DefaultIndex(key probe.Key) (int, error) {
	return probe.HashMod(key, len(t.slots))
}

// findIndex walks the probe sequence of key and returns the first slot that
// is empty, holds key, or, when tombstoneOK is set, is a tombstone. It
// reports false if the sequence is exhausted.
func (t *Table[V]) findIndex(key probe.Key, tombstoneOK bool) (int, bool, error) {
	start, err := t.DefaultIndex(key)
	if err != nil {
		return 0, false, err
	}
	seq, err := probe.NewSequence(start, key, len(t.slots))
	if err != nil {
		return 0, false, err
	}

	for i, ok := seq.Next(); ok; i, ok = seq.Next() {
		s := &t.slots[i]
		switch s.State {
		case SlotEmpty:
			return i, true, nil
		case SlotTombstone:
			if tombstoneOK {
				return i, true, nil
			}
		case SlotOccupied:
			if probe.Equal(s.Entry.Key, key) {
				return i, true, nil
			}
		}
	}
	return 0, false, nil
}

// Get returns the entry stored under key.
func (t *Table[V]) Get(key probe.Key) (Entry[V], bool, error) {
	i, ok, err := t.findIndex(key, false)
	if err != nil || !ok || t.slots[i].State != SlotOccupied {
		return Entry[V]{}, false, err
	}
	return t.slots[i].entry(), true, nil
}

// Find returns the value stored under key.
func (t *Table[V]) Find(key probe.Key) (V, bool, error) {
	e, ok, err := t.Get(key)
	return e.Value, ok, err
}

// Insert is InsertCount with a count of 1.
func (t *Table[V]) Insert(key probe.Key, value V) (bool, error) {
	return t.InsertCount(key, value, 1)
}

// InsertCount stores value under key and reports whether a new entry was
// created. The first slot along the probe that is empty, deleted, or
// already holds key decides the outcome:
//
//   - empty or deleted: a new entry (key, value, count) is written and the
//     table grows if the load factor now exceeds the maximum;
//   - same key, different value: value and count replace the stored ones;
//   - same key, equal value: the stored count goes up by one and count is
//     ignored.
//
// Because a tombstone earlier in the probe wins over a later slot holding the
// same key, a key deleted and reinserted along a shared probe path can end up
// stored twice; lookups then see the earlier copy.
//
// The table stores a copy of key. A failed call leaves the table as it was.
func (t *Table[V]) InsertCount(key probe.Key, value V, count int) (bool, error) {
	if count < 1 {
		return false, errors.Wrapf(ErrInvalidCount, "count %d for key %s", count, key)
	}

	i, prev, inserted, err := t.put(key, value, count)
	if err != nil || !inserted {
		return inserted, err
	}

	// When load factor exceeds limit, grow table. grow never writes to the
	// slots it replaces, so a failure is undone by restoring them.
	slots := t.slots
	for t.LoadFactor() > t.maxLoadFactor {
		if err := t.grow(); err != nil {
			slots[i] = Slot[V]{State: prev}
			t.slots, t.items = slots, countOccupied(slots)
			return false, errors.Wrap(err, "grow table")
		}
	}
	return true, nil
}

// put is the insertion rule without growth. Growth reinserts through it.
// It returns the slot written and the state that slot held before.
func (t *Table[V]) put(key probe.Key, value V, count int) (int, SlotState, bool, error) {
	i, ok, err := t.findIndex(key, true)
	if err != nil {
		return 0, 0, false, err
	}
	if !ok {
		return 0, 0, false, errors.Wrapf(ErrTableFull, "insert key %s into %d slots", key, len(t.slots))
	}

	s := &t.slots[i]
	prev := s.State
	if prev != SlotOccupied {
		*s = Slot[V]{State: SlotOccupied, Entry: Entry[V]{Key: probe.Clone(key), Value: value, Count: count}}
		t.items++
		return i, prev, true, nil
	}

	if !t.equal(s.Entry.Value, value) {
		s.Entry.Value = value
		s.Entry.Count = count
		return i, prev, false, nil
	}

	s.Entry.Count++
	return i, prev, false, nil
}

// grow moves every live entry into a new array of the next prime size at
// least twice as large. The old array is only read. On error t holds the
// partly filled new array and the caller must put the old one back.
func (t *Table[V]) grow() error {
	old := t.slots

	size := len(old)*2 + 1
	for !probe.IsPrime(size) {
		// Only odd sizes are considered
		size += 2
	}

	t.slots = make([]Slot[V], size)
	t.items = 0

	for i := range old {
		if old[i].State != SlotOccupied {
			continue
		}
		e := old[i].Entry
		if _, _, _, err := t.put(e.Key, e.Value, e.Count); err != nil {
			return errors.Wrapf(err, "rehash into %d slots", size)
		}
	}

	t.log.Debug("table grown",
		zap.Int("old_size", len(old)),
		zap.Int("new_size", size),
		zap.Int("items", t.items))
	return nil
}

func countOccupied[V any](slots []Slot[V]) int {
	n := 0
	for i := range slots {
		if slots[i].State == SlotOccupied {
			n++
		}
	}
	return n
}

// Delete marks the slot holding key as deleted. It returns ErrKeyNotFound if
// key is not stored.
func (t *Table[V]) Delete(key probe.Key) error {
	found, err := t.remove(key)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrKeyNotFound, "delete key %s", key)
	}
	return nil
}

// DeleteIfPresent is Delete without the error for a missing key.
func (t *Table[V]) DeleteIfPresent(key probe.Key) error {
	_, err := t.remove(key)
	return err
}

func (t *Table[V]) remove(key probe.Key) (bool, error) {
	i, ok, err := t.findIndex(key, false)
	if err != nil || !ok || t.slots[i].State != SlotOccupied {
		return false, err
	}
	t.slots[i] = Slot[V]{State: SlotTombstone}
	t.items--
	return true, nil
}

// Traverse yields the live entries in slot order. Each call starts a new
// pass. The table must not be modified while a pass is in progress.
func (t *Table[V]) Traverse() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for i := range t.slots {
			if t.slots[i].State != SlotOccupied {
				continue
			}
			if !yield(t.slots[i].entry()) {
				return
			}
		}
	}
}

// Peek returns a copy of slot i. It panics if i is out of range.
func (t *Table[V]) Peek(i int) Slot[V] {
	s := t.slots[i]
	s.Entry = s.entry()
	return s
}
