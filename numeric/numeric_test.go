package numeric_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/checkkit-dev/checkkit/numeric"
)

func TestMinMax(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantMin int
		wantMax int
	}{
		{name: "ordered", x: 2, y: 5, wantMin: 2, wantMax: 5},
		{name: "reversed", x: 5, y: 2, wantMin: 2, wantMax: 5},
		{name: "equal", x: 3, y: 3, wantMin: 3, wantMax: 3},
		{name: "negative", x: -4, y: 1, wantMin: -4, wantMax: 1},
		{name: "both negative", x: -4, y: -9, wantMin: -9, wantMax: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMin, numeric.Min(tt.x, tt.y))
			assert.Equal(t, tt.wantMax, numeric.Max(tt.x, tt.y))

			// Selecting both endpoints partitions the pair.
			assert.Equal(t, tt.x+tt.y, numeric.Min(tt.x, tt.y)+numeric.Max(tt.x, tt.y))
		})
	}
}

func TestMinMax_Strings(t *testing.T) {
	assert.Equal(t, "alpha", numeric.Min("alpha", "beta"))
	assert.Equal(t, "beta", numeric.Max("alpha", "beta"))
}

func TestMinMaxFunc_TiesPreferFirstArgument(t *testing.T) {
	type box struct{ v int }
	byValue := func(a, b *box) int { return cmp.Compare(a.v, b.v) }

	x := &box{v: 3}
	y := &box{v: 3}

	assert.Same(t, x, numeric.MinFunc(x, y, byValue))
	assert.Same(t, x, numeric.MaxFunc(x, y, byValue))
	assert.Same(t, y, numeric.MinFunc(y, x, byValue), "first argument wins regardless of order")
	assert.Same(t, y, numeric.MaxFunc(y, x, byValue), "first argument wins regardless of order")
}

func TestMinMaxFunc_Ordering(t *testing.T) {
	type box struct{ v int }
	byValue := func(a, b *box) int { return cmp.Compare(a.v, b.v) }

	lo := &box{v: 1}
	hi := &box{v: 9}

	assert.Same(t, lo, numeric.MinFunc(lo, hi, byValue))
	assert.Same(t, lo, numeric.MinFunc(hi, lo, byValue))
	assert.Same(t, hi, numeric.MaxFunc(lo, hi, byValue))
	assert.Same(t, hi, numeric.MaxFunc(hi, lo, byValue))
}
