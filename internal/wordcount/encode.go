package wordcount

import (
	"math/bits"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"github.com/theflywheel/ohash/probe"
)

// Encoder derives a table key from a word. Equal words must give equal keys.
type Encoder interface {
	Name() string
	Encode(word string) probe.Key
}

// base27Modulus is the Mersenne prime 2^61-1. Words of up to 12 letters
// encode below it and are not folded.
const base27Modulus = 1<<61 - 1

// Base27 reads a word as a base-27 number: a..z are 1..26, every other rune
// is 0, and the first rune is the most significant digit.
type Base27 struct{}

func (Base27) Name() string { return "base27" }

func (Base27) Encode(word string) probe.Key {
	var acc uint64
	for _, r := range word {
		hi, lo := bits.Mul64(acc, 27)
		acc = bits.Rem64(hi, lo, base27Modulus) + letterCode(r)
		if acc >= base27Modulus {
			acc -= base27Modulus
		}
	}
	return probe.Int(acc)
}

func letterCode(r rune) uint64 {
	r = unicode.ToLower(r)
	if 'a' <= r && r <= 'z' {
		return uint64(r-'a') + 1
	}
	return 0
}

// XXHash keys a word by its 64-bit xxhash with the top bit cleared.
type XXHash struct{}

func (XXHash) Name() string { return "xxhash" }

func (XXHash) Encode(word string) probe.Key {
	return probe.Int(xxhash.Sum64String(word) >> 1)
}

// EncoderByName returns the encoder called name. The empty name selects
// Base27.
func EncoderByName(name string) (Encoder, error) {
	switch name {
	case "", "base27":
		return Base27{}, nil
	case "xxhash":
		return XXHash{}, nil
	}
	return nil, errors.Newf("unknown key encoder %q", name)
}
