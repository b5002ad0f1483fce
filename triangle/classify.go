package triangle

import "math"

// Classification predicates. All of them thread the configured
// approximate-equality predicate, and all satisfy the Filter signature,
// so any of them can serve directly as an SSA acceptance predicate.
//
// The three-way split is exclusive by policy: a triangle whose largest
// angle lies within tolerance of π/2 is Pythagorean and is classified as
// neither Acute nor Obtuse. Callers filtering by Acute/Obtuse should
// reach for NotObtuse/NotAcute when near-right triangles must not fall
// through the gap.

// Equilateral reports whether all three sides are pairwise approximately
// equal.
func (t *Triangle) Equilateral() bool {
	a, b, c := t.Sides[0], t.Sides[1], t.Sides[2]

	return t.names.Equal(a, b) && t.names.Equal(b, c) && t.names.Equal(a, c)
}

// Isosceles reports whether at least one pair of sides is approximately
// equal. The definition is inclusive: every equilateral triangle is also
// isosceles.
func (t *Triangle) Isosceles() bool {
	a, b, c := t.Sides[0], t.Sides[1], t.Sides[2]

	return t.names.Equal(a, b) || t.names.Equal(a, c) || t.names.Equal(b, c)
}

// Pythagorean reports whether some angle is approximately π/2, i.e. the
// triangle is a right triangle within tolerance.
func (t *Triangle) Pythagorean() bool {
	for _, angle := range t.Angles {
		if t.names.Equal(angle, math.Pi/2) {
			return true
		}
	}

	return false
}

// Acute reports whether every angle is strictly below π/2 and the
// triangle is not Pythagorean.
func (t *Triangle) Acute() bool {
	if t.Pythagorean() {
		return false
	}
	for _, angle := range t.Angles {
		if angle >= math.Pi/2 {
			return false
		}
	}

	return true
}

// Obtuse reports whether some angle is strictly above π/2 and the
// triangle is not Pythagorean.
func (t *Triangle) Obtuse() bool {
	if t.Pythagorean() {
		return false
	}
	for _, angle := range t.Angles {
		if angle > math.Pi/2 {
			return true
		}
	}

	return false
}

// NotAcute reports Obtuse or Pythagorean.
func (t *Triangle) NotAcute() bool { return t.Pythagorean() || t.Obtuse() }

// NotObtuse reports Acute or Pythagorean.
func (t *Triangle) NotObtuse() bool { return t.Pythagorean() || t.Acute() }
