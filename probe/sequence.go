package probe

import "github.com/cockroachdb/errors"

// StepSize returns the secondary hash used for double hashing:
// p - Hash(k) mod p, where p is the largest prime below size. The result is
// in [1, p]. When size is prime the step is coprime with it, so a probe
// sequence covers every slot.
func StepSize(k Key, size int) (int, error) {
	if size <= 0 {
		return 0, errors.Newf("size must be positive, got %d", size)
	}
	p := LargestPrimeBelow(size)
	r, err := HashMod(k, p)
	if err != nil {
		return 0, err
	}
	return p - r, nil
}

// Sequence yields the candidate slot indices of one double-hashing probe:
// start mod size first, then (start + i*step) mod size for i in 1..size-1.
//
// A Sequence is consumed by Next and cannot be rewound. Build a new one for
// every lookup.
type Sequence struct {
	step  int
	size  int
	taken int
	cur   int
}

// NewSequence returns the probe sequence for k starting at start in a table
// of size slots.
func NewSequence(start int, k Key, size int) (*Sequence, error) {
	step, err := StepSize(k, size)
	if err != nil {
		return nil, err
	}
	return NewSequenceStep(start, step, size), nil
}

// NewSequenceStep returns a probe sequence with an explicit step. size must
// be positive.
func NewSequenceStep(start, step, size int) *Sequence {
	return &Sequence{
		step: int(floorMod(int64(step), uint64(size))),
		size: size,
		cur:  int(floorMod(int64(start), uint64(size))),
	}
}

// Next returns the next index, or false once size indices were produced.
func (s *Sequence) Next() (int, bool) {
	if s.taken >= s.size {
		return 0, false
	}
	i := s.cur
	s.taken++
	s.cur += s.step
	if s.cur >= s.size {
		s.cur -= s.size
	}
	return i, true
}

// Len is the total number of indices the sequence produces.
func (s *Sequence) Len() int { return s.size }

// Remaining is the number of indices not yet returned by Next.
func (s *Sequence) Remaining() int { return s.size - s.taken }

// Step is the distance between consecutive indices.
func (s *Sequence) Step() int { return s.step }
