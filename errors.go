package ohash

import (
	"github.com/cockroachdb/errors"

	"github.com/theflywheel/ohash/probe"
)

var (
	// ErrUnsupportedKeyType is returned when a key has no structural hash.
	ErrUnsupportedKeyType = probe.ErrUnsupportedKeyType

	// ErrTableFull is returned when an insert probes every slot without
	// finding a free, deleted or matching one.
	ErrTableFull = errors.New("hash table full")

	// ErrKeyNotFound is returned by Delete for a key that is not stored.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidConfig is returned by New for an unusable size or load factor.
	ErrInvalidConfig = errors.New("invalid table config")

	// ErrInvalidCount is returned by InsertCount for a count below 1.
	ErrInvalidCount = errors.New("invalid occurrence count")
)
