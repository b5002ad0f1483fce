package triangle

import (
	"fmt"
	"strings"

	"github.com/trigonkit/trigon/naming"
)

// Attr returns the value stored under the given side or angle name.
// Returns naming.ErrUnknownName for a name outside the configuration.
func (t *Triangle) Attr(name string) (float64, error) {
	if i := t.names.SideIndex(name); i >= 0 {
		return t.Sides[i], nil
	}
	if i := t.names.AngleIndex(name); i >= 0 {
		return t.Angles[i], nil
	}

	return 0, fmt.Errorf("%w: %q", naming.ErrUnknownName, name)
}

// SetAttr stores v under the given side or angle name. No invariant is
// re-validated; keeping the triangle consistent afterwards is the
// caller's responsibility, exactly as with direct field mutation.
func (t *Triangle) SetAttr(name string, v float64) error {
	if i := t.names.SideIndex(name); i >= 0 {
		t.Sides[i] = v

		return nil
	}
	if i := t.names.AngleIndex(name); i >= 0 {
		t.Angles[i] = v

		return nil
	}

	return fmt.Errorf("%w: %q", naming.ErrUnknownName, name)
}

// Opposing returns the value stored opposite the given name: the
// opposing angle value for a side name, or vice versa.
func (t *Triangle) Opposing(name string) (float64, error) {
	opp, err := t.names.OpposingName(name)
	if err != nil {
		return 0, err
	}

	return t.Attr(opp)
}

// ThreeSides returns the three side lengths in declaration order.
func (t *Triangle) ThreeSides() [3]float64 { return t.Sides }

// ThreeAngles returns the three angles in declaration order.
func (t *Triangle) ThreeAngles() [3]float64 { return t.Angles }

// Copy returns an independent copy of the triangle, preserving current
// field values (including any post-construction mutation), the naming
// configuration, and provenance.
func (t *Triangle) Copy() *Triangle {
	c := *t
	c.given = append([]string(nil), t.given...)

	return &c
}

// String renders the canonical textual form:
//
//	Triangle(p1=v1, p2=v2, p3=v3)
//
// where p1..p3 are the three originally supplied attribute names, in the
// fixed declaration order of the configuration (independent of the order
// the caller wrote them), and v1..v3 are the current field values.
func (t *Triangle) String() string {
	var sb strings.Builder
	sb.WriteString("Triangle(")
	for i, name := range t.given {
		if i > 0 {
			sb.WriteString(", ")
		}
		v, _ := t.Attr(name)
		fmt.Fprintf(&sb, "%s=%v", name, v)
	}
	sb.WriteString(")")

	return sb.String()
}
