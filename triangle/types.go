// Package triangle defines the Triangle entity, solver options, and
// sentinel errors for the trigon solving engine.
package triangle

import (
	"errors"

	"github.com/trigonkit/trigon/naming"
)

// Sentinel errors for solving and geometry queries.
var (
	// ErrInvalidSpec indicates a specification that matches none of the
	// five solvable cases: wrong attribute count, an unrecognized name,
	// or an out-of-range value (sides must be positive, angles in (0, π)).
	ErrInvalidSpec = errors.New("triangle: specification does not match a solvable case")
	// ErrDegenerate indicates an impossible flat triangle: a strict
	// triangle-inequality violation, or a computed third angle ≤ 0.
	ErrDegenerate = errors.New("triangle: degenerate triangle")
	// ErrNoSolution indicates an SSA specification no triangle satisfies.
	ErrNoSolution = errors.New("triangle: no triangle satisfies the specification")
	// ErrAmbiguous indicates an SSA specification that did not resolve to
	// exactly one triangle, with or without an acceptance predicate.
	ErrAmbiguous = errors.New("triangle: ambiguous specification")
)

// Filter is an acceptance predicate used to disambiguate multi-solution
// SSA specifications. It receives a fully-solved candidate and must be
// side-effect-free. The classification methods of *Triangle satisfy this
// signature, so method values such as (*Triangle).Acute work directly:
//
//	t, err := triangle.Solve(spec, &triangle.Options{Filter: (*Triangle).Acute})
type Filter func(*Triangle) bool

// Options configures a solving call.
//
// Fields:
//   - Names  — the naming configuration translating attribute names to
//     positions. The zero value selects naming.Default().
//   - Filter — optional acceptance predicate applied to each candidate,
//     in engine order, when a specification admits more than one
//     solution. Exactly one candidate must be accepted.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	Names  naming.Names
	Filter Filter
}

// DefaultOptions returns Options with the default naming configuration
// and no acceptance predicate.
func DefaultOptions() Options {
	return Options{Names: naming.Default()}
}

// names resolves the active naming configuration, defaulting the zero value.
func (o *Options) names() naming.Names {
	if o == nil || o.Names.Sides == [3]string{} {
		return naming.Default()
	}

	return o.Names
}

// filter resolves the acceptance predicate, nil when absent.
func (o *Options) filter() Filter {
	if o == nil {
		return nil
	}

	return o.Filter
}

// Triangle is a fully-solved triangle: three side lengths and the three
// opposing angles, in radians.
//
// Invariant at construction: Angles[i] opposes Sides[i] under the
// configuration returned by Names(); the angles sum to π, every side
// satisfies the strict triangle inequality, and sides and angles are
// law-of-cosines consistent — all within the configured tolerance.
//
// Sides and Angles are exported and directly mutable: Scale and manual
// edits adjust them in place. The invariants are NOT re-validated after
// such mutation; keeping the fields consistent is the caller's
// responsibility.
type Triangle struct {
	// Sides holds the three side lengths, indexed per Names().Sides.
	Sides [3]float64
	// Angles holds the three angles in radians, indexed per Names().Angles.
	Angles [3]float64

	// names is the naming configuration the triangle was solved under.
	names naming.Names
	// given records the originally supplied attribute names, in the fixed
	// declaration order of the configuration. Used only by String().
	given []string
}

// Names returns the naming configuration this triangle was solved under.
func (t *Triangle) Names() naming.Names { return t.names }
