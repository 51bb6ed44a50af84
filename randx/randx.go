// Package randx produces random integers in an inclusive range,
// reseeding from the clock on every call so no generator state is
// shared between calls or goroutines.
//
// Known limitations, kept deliberately:
//
//   - Reseeding from a coarse clock can produce correlated or repeated
//     values for calls issued in rapid succession.
//   - The modulo reduction is slightly non-uniform for ranges that do
//     not evenly divide the generator's output space.
//   - Output is not cryptographically secure.
package randx

import (
	"math/rand/v2"
	"time"
)

// Clock reports a wall-clock instant as separate second and
// sub-second components, or an error when the read fails.
type Clock func() (sec, nsec int64, err error)

func systemClock() (int64, int64, error) {
	now := time.Now()
	return now.Unix(), int64(now.Nanosecond()), nil
}

// Generator produces range-bounded random integers. Safe for
// concurrent use: every call seeds a fresh generator from the clock.
type Generator struct {
	clock Clock
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock substitutes the clock used for seeding. Intended for
// tests and deterministic replay.
func WithClock(clock Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// New creates a Generator reading the system clock.
func New(opts ...Option) *Generator {
	g := &Generator{clock: systemClock}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IntBetween returns a random integer in [a, b]. The caller must
// ensure a <= b; the bounds are not validated. On clock failure the
// result is 0 and the error is a *ClockError.
func (g *Generator) IntBetween(a, b int) (int, error) {
	sec, nsec, err := g.clock()
	if err != nil {
		return 0, &ClockError{Err: err}
	}

	seed := uint64(sec)*uint64(time.Second) + uint64(nsec)
	r := rand.New(rand.NewPCG(seed, 0))

	// Plain modulo reduction; see the package note on uniformity.
	span := uint64(b-a) + 1
	return int(r.Uint64()%span) + a, nil
}

var std = New()

// IntBetween returns a random integer in [a, b] using the
// system-clock generator.
func IntBetween(a, b int) (int, error) {
	return std.IntBetween(a, b)
}
