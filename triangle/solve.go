package triangle

import (
	"fmt"
	"math"

	"github.com/trigonkit/trigon/naming"
)

// Solve — triangle solving engine.
//
// Description:
//
//	Solve accepts a specification of exactly three attributes (sides
//	and/or angles, keyed by the names of the active configuration) and
//	computes the remaining three, returning a fully-populated Triangle.
//	Which algorithm runs is determined by how many of the supplied
//	attributes are sides and which side opposes the supplied angle(s):
//
//	    SSS — three sides
//	    SAS — two sides and the included angle
//	    SSA — two sides and an angle opposing one of them
//	    ASA — two angles and the included side
//	    AAS — two angles and a side opposing one of them
//
// Algorithm outline:
//  1. Validate the specification: three entries, recognized names,
//     sides > 0, angles in (0, π).
//  2. Reduce the case to one or two complete side-length (SSS) triples:
//     - SSS: verify the strict triangle inequality.
//     - SAS: third side via the law of cosines.
//     - ASA/AAS: third angle = π − α₁ − α₂ (reject ≤ 0), then sides via
//       the law of sines from the known side/angle ratio.
//     - SSA: sin of the angle opposing the second side via the law of
//       sines; both arcsine branches θ and π−θ are enumerated, each kept
//       only if it leaves a positive third angle, and completed to a
//       full triple via the law of sines.
//  3. Derive all three angles from each triple via the law of cosines
//     (arccos argument clamped to [-1, 1] to absorb float overshoot),
//     then restore the exact supplied values over the recomputed ones.
//  4. Resolve multiplicity: without a Filter exactly one candidate must
//     exist; with a Filter exactly one candidate must be accepted.
//
// Errors:
//   - ErrInvalidSpec — malformed specification (step 1 or unmatched case).
//   - ErrDegenerate  — inequality violation or non-positive third angle.
//   - ErrNoSolution  — SSA ratio > 1 beyond tolerance, or no viable branch.
//   - ErrAmbiguous   — candidate count ≠ 1 after (optional) filtering.
//
// Complexity: O(1) — constant trigonometric work per call.
func Solve(spec map[string]float64, opts *Options) (*Triangle, error) {
	nm := opts.names()
	given, sv, av, err := splitSpec(spec, nm)
	if err != nil {
		return nil, err
	}

	triples, err := enumerate(spec, sv, av, nm)
	if err != nil {
		return nil, err
	}

	cands := make([]*Triangle, len(triples))
	for i, sides := range triples {
		t, err := fromSides(sides, nm)
		if err != nil {
			return nil, err
		}
		t.overlay(spec)
		t.given = given
		cands[i] = t
	}

	return resolve(cands, opts.filter())
}

// Solutions returns every geometrically valid side-length (SSS)
// specification admitted by spec, before any filtering: one map for
// SSS/SAS/ASA/AAS and unambiguous SSA, two for the ambiguous SSA case.
// Each map is keyed by the configured side names and can be fed back
// into Solve. Useful for inspecting both SSA branches explicitly.
func Solutions(spec map[string]float64, opts *Options) ([]map[string]float64, error) {
	nm := opts.names()
	_, sv, av, err := splitSpec(spec, nm)
	if err != nil {
		return nil, err
	}

	triples, err := enumerate(spec, sv, av, nm)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]float64, len(triples))
	for i, sides := range triples {
		m := make(map[string]float64, 3)
		for j, name := range nm.Sides {
			m[name] = sides[j]
		}
		out[i] = m
	}

	return out, nil
}

// splitSpec validates the raw specification and partitions its keys.
// Returns the supplied names in declaration order (sides, then angles),
// plus the side-name and angle-name subsets.
func splitSpec(spec map[string]float64, nm naming.Names) (given, sv, av []string, err error) {
	if len(spec) != 3 {
		return nil, nil, nil, fmt.Errorf("%w: got %d attributes, want 3", ErrInvalidSpec, len(spec))
	}

	for name, v := range spec {
		switch {
		case nm.IsSide(name):
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return nil, nil, nil, fmt.Errorf("%w: side %s=%v must be a positive real", ErrInvalidSpec, name, v)
			}
		case nm.IsAngle(name):
			if math.IsNaN(v) || v <= 0 || v >= math.Pi {
				return nil, nil, nil, fmt.Errorf("%w: angle %s=%v must lie in (0, π)", ErrInvalidSpec, name, v)
			}
		default:
			return nil, nil, nil, fmt.Errorf("%w: unrecognized attribute %q", ErrInvalidSpec, name)
		}
	}

	for _, name := range nm.Sides {
		if _, ok := spec[name]; ok {
			sv = append(sv, name)
		}
	}
	for _, name := range nm.Angles {
		if _, ok := spec[name]; ok {
			av = append(av, name)
		}
	}
	given = append(append([]string{}, sv...), av...)

	return given, sv, av, nil
}

// enumerate reduces a validated specification to its complete side
// triples, indexed per the configuration's declaration order.
func enumerate(spec map[string]float64, sv, av []string, nm naming.Names) ([][3]float64, error) {
	switch {
	case len(sv) == 3:
		return solveSSS(spec, nm)
	case len(sv) == 2 && len(av) == 1:
		oppSide, _ := nm.OpposingName(av[0])
		if oppSide == sv[0] || oppSide == sv[1] {
			return solveSSA(spec, sv, av[0], nm)
		}

		return solveSAS(spec, sv, av[0], nm)
	case len(sv) == 1 && len(av) == 2:
		// ASA and AAS share one derivation: once the third angle is
		// known, the law of sines fills in both missing sides.
		return solveAngles(spec, sv[0], nm)
	default:
		return nil, fmt.Errorf("%w: %d sides and %d angles", ErrInvalidSpec, len(sv), len(av))
	}
}

// solveSSS validates the strict triangle inequality; the given sides
// already form the solution.
func solveSSS(spec map[string]float64, nm naming.Names) ([][3]float64, error) {
	var s [3]float64
	for i, name := range nm.Sides {
		s[i] = spec[name]
	}
	if a, b, c := s[0], s[1], s[2]; a+b <= c || a+c <= b || b+c <= a {
		return nil, fmt.Errorf("%w: sides %v fail the triangle inequality", ErrDegenerate, s)
	}

	return [][3]float64{s}, nil
}

// solveSAS derives the side opposing the included angle via the law of
// cosines: c = √(a² + b² − 2ab·cos C).
func solveSAS(spec map[string]float64, sv []string, angle string, nm naming.Names) ([][3]float64, error) {
	a := spec[sv[0]]
	b := spec[sv[1]]
	c := math.Sqrt(a*a + b*b - 2*a*b*math.Cos(spec[angle]))

	var s [3]float64
	s[nm.SideIndex(sv[0])] = a
	s[nm.SideIndex(sv[1])] = b
	s[nm.AngleIndex(angle)] = c // included angle opposes the missing side

	return [][3]float64{s}, nil
}

// solveAngles handles ASA and AAS: third angle by angle sum, missing
// sides by the law of sines from the one known side/angle ratio.
func solveAngles(spec map[string]float64, side string, nm naming.Names) ([][3]float64, error) {
	var angles [3]float64
	third := math.Pi
	thirdIdx := -1
	for i, name := range nm.Angles {
		if v, ok := spec[name]; ok {
			angles[i] = v
			third -= v
		} else {
			thirdIdx = i
		}
	}
	if third <= 0 {
		return nil, fmt.Errorf("%w: supplied angles leave no room for %s", ErrDegenerate, nm.Angles[thirdIdx])
	}
	angles[thirdIdx] = third

	si := nm.SideIndex(side)
	ratio := spec[side] / math.Sin(angles[si])

	var s [3]float64
	for i := range s {
		if i == si {
			s[i] = spec[side]
			continue
		}
		s[i] = math.Sin(angles[i]) * ratio
	}

	return [][3]float64{s}, nil
}

// solveSSA handles the ambiguous case. The supplied angle opposes one of
// the two supplied sides; the law of sines bounds the angle opposing the
// other, and both arcsine branches are enumerated.
func solveSSA(spec map[string]float64, sv []string, angle string, nm naming.Names) ([][3]float64, error) {
	aName, _ := nm.OpposingName(angle) // side opposing the supplied angle
	bName := sv[0]
	if bName == aName {
		bName = sv[1]
	}
	missing, err := nm.OtherNames(sv[0], sv[1])
	if err != nil {
		return nil, err
	}
	cName := missing[0]

	alpha := spec[angle]
	a := spec[aName]
	b := spec[bName]

	// Law of sines: sin β = b·sin α / a. A ratio beyond 1 means no angle
	// works; within tolerance of 1 it is clamped to the single
	// right-angle solution.
	sinAlpha := math.Sin(alpha)
	ratio := b * sinAlpha / a
	if ratio > 1 {
		if !nm.Equal(ratio, 1) {
			return nil, fmt.Errorf("%w: no angle solution opposing side %s", ErrNoSolution, bName)
		}
		ratio = 1
	}

	theta := math.Asin(ratio)
	branches := []float64{theta, math.Pi - theta}
	if branches[1] == branches[0] {
		branches = branches[:1]
	}

	var out [][3]float64
	for _, beta := range branches {
		gamma := math.Pi - alpha - beta
		if gamma <= 0 {
			continue
		}
		c := a * math.Sin(gamma) / sinAlpha

		var s [3]float64
		s[nm.SideIndex(aName)] = a
		s[nm.SideIndex(bName)] = b
		s[nm.SideIndex(cName)] = c
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no angle solution leaves a positive third angle", ErrNoSolution)
	}

	return out, nil
}

// fromSides builds a Triangle from a complete side triple: re-checks the
// strict triangle inequality and derives every angle via the law of
// cosines, clamping the arccos argument to absorb float overshoot.
func fromSides(s [3]float64, nm naming.Names) (*Triangle, error) {
	a, b, c := s[0], s[1], s[2]
	if a+b <= c || a+c <= b || b+c <= a {
		return nil, fmt.Errorf("%w: sides %v fail the triangle inequality", ErrDegenerate, s)
	}

	t := &Triangle{Sides: s, names: nm}
	for i := range t.Angles {
		opp := s[i]
		y := s[(i+1)%3]
		z := s[(i+2)%3]
		t.Angles[i] = math.Acos(clamp((y*y+z*z-opp*opp)/(2*y*z), -1, 1))
	}

	return t, nil
}

// overlay restores the exact supplied values over the recomputed ones,
// so attributes the caller passed in are stored verbatim.
func (t *Triangle) overlay(spec map[string]float64) {
	for name, v := range spec {
		if i := t.names.SideIndex(name); i >= 0 {
			t.Sides[i] = v
			continue
		}
		if i := t.names.AngleIndex(name); i >= 0 {
			t.Angles[i] = v
		}
	}
}

// resolve enforces the exactly-one-survivor policy, applying the
// acceptance predicate when present.
func resolve(cands []*Triangle, filter Filter) (*Triangle, error) {
	if filter == nil {
		if len(cands) != 1 {
			return nil, fmt.Errorf("%w: %d solutions and no filter", ErrAmbiguous, len(cands))
		}

		return cands[0], nil
	}

	var kept []*Triangle
	for _, cand := range cands {
		if filter(cand) {
			kept = append(kept, cand)
		}
	}
	if len(kept) != 1 {
		return nil, fmt.Errorf("%w: filter accepted %d of %d solutions", ErrAmbiguous, len(kept), len(cands))
	}

	return kept[0], nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
