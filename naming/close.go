package naming

import "math"

// defaultRelTol is the relative tolerance used by DefaultClose; it matches
// the conventional default for relative floating-point comparison.
const defaultRelTol = 1e-9

// Close reports whether two floats should be considered equal.
// Every tolerance-aware decision in the solver (classification,
// similarity, the SSA boundary case) is routed through a Close predicate,
// so callers can tighten or loosen comparison without touching the
// algorithms.
type Close func(a, b float64) bool

// DefaultClose is the default approximate-equality predicate:
// |a−b| ≤ defaultRelTol·max(|a|,|b|), with exact equality short-circuited
// so that infinities compare equal to themselves. NaN never compares
// equal to anything.
func DefaultClose(a, b float64) bool {
	return Tolerance(defaultRelTol, 0)(a, b)
}

// Tolerance builds a Close predicate from a relative and an absolute
// tolerance: |a−b| ≤ max(relTol·max(|a|,|b|), absTol).
//
// relTol governs comparison of large magnitudes, absTol comparison near
// zero. Tolerance(0, eps) yields a plain |a−b| ≤ eps predicate.
//
// Complexity: O(1) per comparison.
func Tolerance(relTol, absTol float64) Close {
	return func(a, b float64) bool {
		if a == b {
			return true
		}
		if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
			return false
		}
		diff := math.Abs(a - b)
		scale := math.Max(math.Abs(a), math.Abs(b))

		return diff <= math.Max(relTol*scale, absTol)
	}
}
