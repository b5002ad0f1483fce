package triangle

import (
	"fmt"
	"math"
	"sort"

	"github.com/trigonkit/trigon/naming"
)

// Area returns the triangle's area via Heron's formula:
//
//	s = (a+b+c)/2;  area = √(s(s−a)(s−b)(s−c))
//
// The triangle inequality was established at construction and is not
// re-validated here.
func (t *Triangle) Area() float64 {
	a, b, c := t.Sides[0], t.Sides[1], t.Sides[2]
	s := (a + b + c) / 2

	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

// Altitude returns the height relative to the named base side:
// 2·area / base. Returns naming.ErrUnknownName if base is not a side
// name of the active configuration.
func (t *Triangle) Altitude(base string) (float64, error) {
	i := t.names.SideIndex(base)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q is not a side name", naming.ErrUnknownName, base)
	}

	return 2 * t.Area() / t.Sides[i], nil
}

// Scale multiplies all three sides by factor in place. Angles are left
// untouched: uniform scaling preserves similarity. The factor is not
// validated; a non-positive factor produces a geometrically meaningless
// result and is the caller's responsibility.
func (t *Triangle) Scale(factor float64) {
	for i := range t.Sides {
		t.Sides[i] *= factor
	}
}

// Canonical returns a new triangle with the sides permuted into
// non-decreasing order and each angle permuted identically, so
// opposition is preserved under the relabeling. This is a pure
// permutation, not a re-solve: no value is recomputed, and applying
// Canonical twice yields the same result as once.
func (t *Triangle) Canonical() *Triangle {
	order := [3]int{0, 1, 2}
	sort.Slice(order[:], func(i, j int) bool {
		return t.Sides[order[i]] < t.Sides[order[j]]
	})

	c := &Triangle{names: t.names, given: append([]string(nil), t.names.Sides[:]...)}
	for i, from := range order {
		c.Sides[i] = t.Sides[from]
		c.Angles[i] = t.Angles[from]
	}

	return c
}

// Similar reports whether u is geometrically similar to t: the side
// lengths of both, sorted ascending, must be a constant multiple of each
// other within the configured tolerance. The check is order-independent
// and scale-invariant, so rotation, reflection, relabeling and uniform
// scaling never break similarity.
func (t *Triangle) Similar(u *Triangle) bool {
	ts := sortedSides(t)
	us := sortedSides(u)

	r0 := ts[0] / us[0]
	r1 := ts[1] / us[1]
	r2 := ts[2] / us[2]

	return t.names.Equal(r0, r1) && t.names.Equal(r1, r2) && t.names.Equal(r0, r2)
}

// sortedSides returns the side lengths in ascending order.
func sortedSides(t *Triangle) [3]float64 {
	s := t.Sides
	sort.Float64s(s[:])

	return s
}
