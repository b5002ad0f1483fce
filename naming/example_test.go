package naming_test

import (
	"fmt"

	"github.com/trigonkit/trigon/naming"
)

// ExampleNames_OpposingName shows opposition lookup under the default
// configuration: side b opposes angle beta and vice versa.
func ExampleNames_OpposingName() {
	nm := naming.Default()

	opp, _ := nm.OpposingName("b")
	fmt.Println(opp)

	opp, _ = nm.OpposingName("beta")
	fmt.Println(opp)
	// Output:
	// beta
	// b
}

// ExampleNames_OtherNames shows remaining-name resolution within one
// name-space.
func ExampleNames_OtherNames() {
	nm := naming.Default()

	rest, _ := nm.OtherNames("a", "c")
	fmt.Println(rest)

	rest, _ = nm.OtherNames("gamma")
	fmt.Println(rest)
	// Output:
	// [b]
	// [alpha beta]
}

// ExampleFromNames builds a vertex-named configuration the way a
// geometry textbook labels a triangle: angles at vertices P, Q, R and
// each side named by its two endpoints.
func ExampleFromNames() {
	nm, _ := naming.FromNames("PQR")

	fmt.Println(nm.Angles)
	fmt.Println(nm.Sides)

	opp, _ := nm.OpposingName("Q")
	fmt.Println("Q opposes", opp)
	// Output:
	// [P Q R]
	// [QR PR PQ]
	// Q opposes PR
}

// ExampleTolerance builds a loose absolute-tolerance predicate.
func ExampleTolerance() {
	within := naming.Tolerance(0, 0.25)

	fmt.Println(within(1.0, 1.2))
	fmt.Println(within(1.0, 1.5))
	// Output:
	// true
	// false
}
