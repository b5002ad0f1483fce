// Package triangle solves and classifies geometric triangles from any of
// the five classical minimal specifications.
//
// 🚀 What does it solve?
//
//	Given exactly three attributes — a mix of side lengths and angles in
//	radians, keyed by the names of a naming.Names configuration — Solve
//	computes the other three and returns a fully-populated Triangle:
//	  • SSS — three sides (law of cosines)
//	  • SAS — two sides + included angle (law of cosines)
//	  • ASA — two angles + included side (law of sines)
//	  • AAS — two angles + adjacent side (law of sines)
//	  • SSA — two sides + adjacent angle, the ambiguous case:
//	          zero, one, or two geometrically valid triangles
//
// ✨ Key features:
//   - acceptance predicates (Options.Filter) disambiguate SSA branches;
//     every classification method doubles as a predicate
//   - Solutions() exposes both SSA branches as raw SSS specifications
//   - queries: Area (Heron), Altitude, Scale, Canonical reordering,
//     Similar (sorted side ratios)
//   - classification: Equilateral, Isosceles, Pythagorean, Acute,
//     Obtuse, NotAcute, NotObtuse — tolerance-aware, mutually exclusive
//     three-way acute/right/obtuse split
//   - CoordsSpec turns three 2D points into a solvable specification
//
// ⚙️ Usage:
//
//	import "github.com/trigonkit/trigon/triangle"
//
//	t, err := triangle.Solve(map[string]float64{"a": 3, "b": 4, "c": 5}, nil)
//	if err != nil {
//	  // ErrInvalidSpec, ErrDegenerate, ErrNoSolution or ErrAmbiguous
//	}
//	fmt.Println(t.Area())        // 6
//	fmt.Println(t.Pythagorean()) // true
//
// Errors are package-level sentinels matched with errors.Is. All
// operations are deterministic and side-effect-free except the
// documented in-place mutators (Scale, SetAttr, direct field edits),
// which never re-validate invariants.
//
// Performance: every operation is O(1) constant trigonometric work.
//
// See example_test.go for SSA disambiguation and custom-naming
// walkthroughs.
package triangle
