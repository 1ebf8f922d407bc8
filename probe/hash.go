package probe

import (
	"math/big"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// radix is the positional base of the polynomial hash for text and sequences.
const radix = 256

// Hash returns the exact structural hash of k.
//
//   - Int hashes to itself.
//   - Text hashes to sum(256^i * rune(i)), position 0 least significant.
//   - Seq uses the same polynomial with Hash(element) in place of the rune.
//
// The spread is small and predictable by design. Do not rely on it for
// anything adversarial.
func Hash(k Key) (*big.Int, error) {
	switch k := k.(type) {
	case Int:
		return big.NewInt(int64(k)), nil
	case Text:
		rs := []rune(string(k))
		h := new(big.Int)
		for i := len(rs) - 1; i >= 0; i-- {
			h.Lsh(h, 8)
			h.Add(h, big.NewInt(int64(rs[i])))
		}
		return h, nil
	case Seq:
		h := new(big.Int)
		for i := len(k) - 1; i >= 0; i-- {
			eh, err := Hash(k[i])
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			h.Lsh(h, 8)
			h.Add(h, eh)
		}
		return h, nil
	}
	return nil, Validate(k)
}

// HashMod returns Hash(k) mod m in [0, m), without building the exact hash.
// m must be positive.
func HashMod(k Key, m int) (int, error) {
	if m <= 0 {
		return 0, errors.Newf("modulus must be positive, got %d", m)
	}
	r, err := hashMod(k, uint64(m))
	if err != nil {
		return 0, err
	}
	return int(r), nil
}

func hashMod(k Key, m uint64) (uint64, error) {
	switch k := k.(type) {
	case Int:
		return floorMod(int64(k), m), nil
	case Text:
		rs := []rune(string(k))
		var acc uint64
		for i := len(rs) - 1; i >= 0; i-- {
			acc = addMod(mulMod(acc, radix, m), floorMod(int64(rs[i]), m), m)
		}
		return acc, nil
	case Seq:
		var acc uint64
		for i := len(k) - 1; i >= 0; i-- {
			r, err := hashMod(k[i], m)
			if err != nil {
				return 0, errors.Wrapf(err, "element %d", i)
			}
			acc = addMod(mulMod(acc, radix, m), r, m)
		}
		return acc, nil
	}
	return 0, Validate(k)
}

// floorMod is x mod m with the sign of m, so negative keys land in [0, m).
func floorMod(x int64, m uint64) uint64 {
	if x >= 0 {
		return uint64(x) % m
	}
	r := (uint64(-(x + 1)) % m) + 1
	if r == m {
		return 0
	}
	return m - r
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// addMod requires a, b < m <= MaxInt64, so the sum cannot wrap.
func addMod(a, b, m uint64) uint64 {
	s := a + b
	if s >= m {
		s -= m
	}
	return s
}
