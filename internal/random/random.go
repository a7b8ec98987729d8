// Package random provides the uniform integer source used to draw secrets.
//
// Production code uses a PCG generator seeded from crypto/rand once per
// process. Tests substitute Fixed or a seeded generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source produces integers uniformly distributed over a closed range.
type Source interface {
	// IntRange returns a value in [lo, hi]. If hi < lo, lo is returned.
	IntRange(lo, hi uint32) uint32
}

// Rand is a Source backed by a PCG generator.
type Rand struct {
	rng *rand.Rand
}

// New returns a generator seeded from crypto/rand.
func New() (*Rand, error) {
	hi, err := NewSeed()
	if err != nil {
		return nil, err
	}
	lo, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return &Rand{rng: rand.New(rand.NewPCG(hi, lo))}, nil
}

// NewSeeded returns a deterministic generator. Use it for reproducible tests.
func NewSeeded(seed uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntRange implements Source.
func (r *Rand) IntRange(lo, hi uint32) uint32 {
	if hi < lo {
		return lo
	}
	span := hi - lo + 1
	if span == 0 {
		// [0, MaxUint32]: every 32-bit value is in range.
		return r.rng.Uint32()
	}
	return lo + r.rng.Uint32N(span)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Fixed is a Source that always returns the same value, ignoring the range.
type Fixed uint32

// IntRange implements Source.
func (f Fixed) IntRange(lo, hi uint32) uint32 {
	return uint32(f)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(lo, hi uint32) uint32

// IntRange implements Source.
func (f SourceFunc) IntRange(lo, hi uint32) uint32 {
	return f(lo, hi)
}
