/*
Package ohash provides an in-memory hash table using open addressing with
double hashing.

Table maps structurally hashed keys to values and keeps an occurrence count
per entry, which makes it a natural fit for counting words or other tokens.

Basic usage:

	import (
		"github.com/theflywheel/ohash"
		"github.com/theflywheel/ohash/probe"
	)

	// 7 slots, grow when more than half full
	t, err := ohash.New[string]()
	if err != nil {
		log.Fatal(err)
	}

	// Insert data
	t.Insert(probe.Text("egg"), "egg")
	t.Insert(probe.Text("egg"), "egg") // same value, count becomes 2

	// Retrieve data
	v, ok, err := t.Find(probe.Text("egg"))

	// Walk entries in slot order
	for e := range t.Traverse() {
		fmt.Println(e.Value, e.Count)
	}

Features:

  - Keys are integers, strings, or nested sequences of keys (see package probe)
  - Double hashing with a step derived from the largest prime below the
    table size, so every probe visits every slot of a prime-sized table
  - Deleted slots become tombstones: lookups skip them, inserts reuse them
  - Automatic growth to the next prime at least twice the size when the
    load factor exceeds the configured maximum (0.5 by default)
  - Not safe for concurrent use

Implementation Details:

The table is a slice of slots, each empty, a tombstone, or an entry holding
key, value and count. An insert stops at the first slot along the probe that
is empty, a tombstone, or already holds the key. On an existing key, an equal
value increments the count while a different value replaces value and count.
Keys and values are independent: callers that count values should derive
the key from the value.

Growth allocates a fresh slice and reinserts every live entry through the
same insertion path, dropping tombstones.
*/
package ohash
