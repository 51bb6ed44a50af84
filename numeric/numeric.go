// Package numeric provides minimum/maximum selection with a
// deterministic, left-biased tie-break: on equal arguments the first
// one is returned. The bias matters when callers rely on which of two
// equal-but-distinct values is selected.
package numeric

import "cmp"

// Min returns the smaller of x and y, preferring x on ties.
func Min[T cmp.Ordered](x, y T) T {
	if x <= y {
		return x
	}
	return y
}

// Max returns the larger of x and y, preferring x on ties.
func Max[T cmp.Ordered](x, y T) T {
	if x >= y {
		return x
	}
	return y
}

// MinFunc returns the smaller of x and y under compare, preferring x
// on ties. compare follows the cmp.Compare convention: negative when
// a < b, zero when equal, positive when a > b.
func MinFunc[T any](x, y T, compare func(a, b T) int) T {
	if compare(x, y) <= 0 {
		return x
	}
	return y
}

// MaxFunc returns the larger of x and y under compare, preferring x
// on ties.
func MaxFunc[T any](x, y T, compare func(a, b T) int) T {
	if compare(x, y) >= 0 {
		return x
	}
	return y
}
