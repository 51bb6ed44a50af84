package randx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkkit-dev/checkkit/randx"
)

func TestIntBetween_DegenerateRange(t *testing.T) {
	g := randx.New()
	for i := 0; i < 100; i++ {
		n, err := g.IntBetween(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}
}

func TestIntBetween_Bounds(t *testing.T) {
	g := randx.New()
	for i := 0; i < 1000; i++ {
		n, err := g.IntBetween(1, 6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 6)
	}
}

func TestIntBetween_NegativeBounds(t *testing.T) {
	g := randx.New()
	for i := 0; i < 1000; i++ {
		n, err := g.IntBetween(-3, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, -3)
		assert.LessOrEqual(t, n, 3)
	}
}

func TestIntBetween_SeedIsClockDerived(t *testing.T) {
	fixed := func() (int64, int64, error) { return 1234567, 890, nil }
	g := randx.New(randx.WithClock(fixed))

	first, err := g.IntBetween(0, 1_000_000)
	require.NoError(t, err)
	second, err := g.IntBetween(0, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical clock readings must yield identical values")
}

func TestIntBetween_ClockFailure(t *testing.T) {
	readErr := errors.New("clock unavailable")
	g := randx.New(randx.WithClock(func() (int64, int64, error) {
		return 0, 0, readErr
	}))

	n, err := g.IntBetween(1, 6)
	assert.Zero(t, n)
	require.Error(t, err)

	var clockErr *randx.ClockError
	require.ErrorAs(t, err, &clockErr)
	assert.Equal(t, randx.FlagClockFailure, clockErr.Flag())
	assert.ErrorIs(t, err, readErr)
}

func TestIntBetween_PackageLevel(t *testing.T) {
	n, err := randx.IntBetween(1, 6)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 6)
}
