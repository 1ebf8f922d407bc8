package probe

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedKeyType is returned when a key has no structural hash.
var ErrUnsupportedKeyType = errors.New("unsupported key type")

// Key is a structurally hashable key. The set of implementations is closed:
// Int, Text and Seq.
type Key interface {
	fmt.Stringer
	key()
}

// Int is an integer key. It hashes to itself.
type Int int64

// Text is a string key, hashed rune by rune.
type Text string

// Seq is an ordered sequence of keys, hashed element by element.
type Seq []Key

func (Int) key() {}
func (Text) key() {}
func (Seq) key() {}

func (k Int) String() string { return fmt.Sprintf("%d", int64(k)) }

func (k Text) String() string { return fmt.Sprintf("%q", string(k)) }

func (k Seq) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range k {
		if i > 0 {
			b.WriteString(", ")
		}
		if e == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether a and b are the same variant with equal contents.
// Sequences compare element by element.
func Equal(a, b Key) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a == b
	case Text:
		b, ok := b.(Text)
		return ok && a == b
	case Seq:
		b, ok := b.(Seq)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a copy of k that shares no memory with it. Only sequences
// are copied; Int and Text are values already.
func Clone(k Key) Key {
	s, ok := k.(Seq)
	if !ok || s == nil {
		return k
	}
	out := make(Seq, len(s))
	for i, e := range s {
		out[i] = Clone(e)
	}
	return out
}

// Validate checks that k, and every element of k if it is a sequence, is
// one of the supported variants.
func Validate(k Key) error {
	switch k := k.(type) {
	case Int, Text:
		return nil
	case Seq:
		for i, e := range k {
			if err := Validate(e); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		return nil
	case nil:
		return errors.Wrap(ErrUnsupportedKeyType, "nil key")
	}
	return errors.Wrapf(ErrUnsupportedKeyType, "%T", k)
}

// KeyOf converts a Go value into a Key. Integers become Int, strings become
// Text, and slices or arrays of convertible values become Seq. Any other
// value fails with ErrUnsupportedKeyType.
func KeyOf(v any) (Key, error) {
	switch v := v.(type) {
	case Key:
		if err := Validate(v); err != nil {
			return nil, err
		}
		return v, nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintKey(uint64(v))
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return uintKey(v)
	case string:
		return Text(v), nil
	case []any:
		return seqOf(len(v), func(i int) any { return v[i] })
	case []int:
		return seqOf(len(v), func(i int) any { return v[i] })
	case []int64:
		return seqOf(len(v), func(i int) any { return v[i] })
	case []string:
		return seqOf(len(v), func(i int) any { return v[i] })
	case []Key:
		return seqOf(len(v), func(i int) any { return v[i] })
	case nil:
		return nil, errors.Wrap(ErrUnsupportedKeyType, "nil value")
	}
	return nil, errors.Wrapf(ErrUnsupportedKeyType, "%T", v)
}

func uintKey(v uint64) (Key, error) {
	if v > math.MaxInt64 {
		return nil, errors.Wrapf(ErrUnsupportedKeyType, "integer %d overflows int64", v)
	}
	return Int(v), nil
}

func seqOf(n int, at func(int) any) (Key, error) {
	s := make(Seq, n)
	for i := range s {
		k, err := KeyOf(at(i))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		s[i] = k
	}
	return s, nil
}
