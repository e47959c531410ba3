package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyRange is returned when a range holds no values.
var ErrEmptyRange = errors.New("range is empty")

// ErrNegativeRange is returned when a range reaches below zero. Guesses are
// parsed as non-negative numbers, so such a secret could never be found.
var ErrNegativeRange = errors.New("range must not include negative numbers")

// Source yields uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed picks a random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Range is the closed-open interval [Min, Max) a secret is drawn from.
type Range struct {
	Min int
	Max int
}

// DefaultRange covers 1 through 100 inclusive.
var DefaultRange = Range{Min: 1, Max: 101}

// Size returns the number of values in the range.
func (r Range) Size() int {
	return r.Max - r.Min
}

// Contains reports whether n lies in the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n < r.Max
}

// Validate checks the range can produce a secret a player can type.
func (r Range) Validate() error {
	if r.Max <= r.Min {
		return fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, r.Min, r.Max)
	}
	if r.Min < 0 {
		return fmt.Errorf("%w: [%d, %d)", ErrNegativeRange, r.Min, r.Max)
	}
	return nil
}

// String renders the range with its inclusive upper bound, e.g. "1..100".
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max-1)
}

// DrawSecret samples one value uniformly from r.
func DrawSecret(src Source, r Range) int {
	return r.Min + src.IntN(r.Size())
}
