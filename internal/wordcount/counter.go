package wordcount

import (
	"io"
	"iter"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/theflywheel/ohash"
	"github.com/theflywheel/ohash/probe"
)

// Options configures a Counter.
type Options struct {
	// Table holds the initial size and load factor. Zero fields take the
	// table defaults.
	Table ohash.Config

	// Encoder turns words into keys. Nil selects Base27.
	Encoder Encoder

	// ReduceKeys stores each key modulo the table size at the time of
	// insertion. Reduced keys collide far more often, and a collision
	// replaces the earlier word.
	ReduceKeys bool

	// Presize, when positive, sizes the table to the first prime not below
	// it. It overrides Table.Size.
	Presize int

	Logger *zap.Logger
}

// Counter counts word occurrences in an ohash.Table keyed by the encoded
// word. A Counter is not safe for concurrent use.
type Counter struct {
	table      *ohash.Table[string]
	enc        Encoder
	reduce     bool
	collisions int
	log        *zap.Logger
}

// NewCounter creates an empty counter.
func NewCounter(opts Options) (*Counter, error) {
	if opts.Encoder == nil {
		opts.Encoder = Base27{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	cfg := opts.Table
	if opts.Presize > 0 {
		cfg.Size = probe.NextPrime(max(3, opts.Presize))
	}

	table, err := ohash.New(
		ohash.WithConfig[string](cfg),
		ohash.WithLogger[string](opts.Logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create word table")
	}
	return &Counter{
		table:  table,
		enc:    opts.Encoder,
		reduce: opts.ReduceKeys,
		log:    opts.Logger,
	}, nil
}

func (c *Counter) key(word string) (probe.Key, error) {
	k := c.enc.Encode(word)
	if !c.reduce {
		return k, nil
	}
	r, err := probe.HashMod(k, c.table.Cap())
	if err != nil {
		return nil, err
	}
	return probe.Int(r), nil
}

// Add counts one occurrence of word.
func (c *Counter) Add(word string) error {
	k, err := c.key(word)
	if err != nil {
		return errors.Wrapf(err, "encode %q", word)
	}

	prev, found, err := c.table.Find(k)
	if err != nil {
		return err
	}
	if found && prev != word {
		c.collisions++
		c.log.Warn("key collision replaces word",
			zap.Stringer("key", k),
			zap.String("old", prev),
			zap.String("new", word))
	}

	if _, err := c.table.Insert(k, word); err != nil {
		return errors.Wrapf(err, "count %q", word)
	}
	return nil
}

// AddAll counts every word in order.
func (c *Counter) AddAll(words []string) error {
	for _, w := range words {
		if err := c.Add(w); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of occurrences recorded for word.
//
// With ReduceKeys a word counted before a growth sits under a key reduced
// modulo the old size, and may sit under more than one. Count then sums
// every entry holding word, as Counts does.
func (c *Counter) Count(word string) (int, bool, error) {
	if c.reduce {
		n := 0
		for e := range c.table.Traverse() {
			if e.Value == word {
				n += e.Count
			}
		}
		return n, n > 0, nil
	}

	k, err := c.key(word)
	if err != nil {
		return 0, false, err
	}
	e, ok, err := c.table.Get(k)
	if err != nil || !ok || e.Value != word {
		return 0, false, err
	}
	return e.Count, true, nil
}

// Distinct is the number of entries in the table.
func (c *Counter) Distinct() int {
	return c.table.Len()
}

// Collisions is the number of times a word replaced a different word stored
// under the same key. With ReduceKeys only collisions under the current
// table size are seen: a word stored under a key reduced before a growth is
// not compared against.
func (c *Counter) Collisions() int {
	return c.collisions
}

// Entries yields the stored entries in slot order.
func (c *Counter) Entries() iter.Seq[ohash.Entry[string]] {
	return c.table.Traverse()
}

// Counts sums the entries by word.
func (c *Counter) Counts() map[string]int {
	out := make(map[string]int, c.table.Len())
	for e := range c.table.Traverse() {
		out[e.Value] += e.Count
	}
	return out
}

// Table exposes the underlying table for diagnostics.
func (c *Counter) Table() *ohash.Table[string] {
	return c.table
}

// WriteReport writes the number of distinct words and every word with its
// count.
func (c *Counter) WriteReport(w io.Writer) error {
	return c.table.WriteReport(w, "unique words")
}
