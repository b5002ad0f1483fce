package triangle_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/trigonkit/trigon/naming"
	"github.com/trigonkit/trigon/triangle"
)

// ExampleSolve solves the classic 3-4-5 right triangle from its three
// sides and queries it.
func ExampleSolve() {
	t, err := triangle.Solve(map[string]float64{"a": 3, "b": 4, "c": 5}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	h, _ := t.Altitude("c")
	fmt.Printf("area=%.1f\n", t.Area())
	fmt.Printf("altitude(c)=%.1f\n", h)
	fmt.Println("right:", t.Pythagorean())
	// Output:
	// area=6.0
	// altitude(c)=2.4
	// right: true
}

// ExampleSolve_ambiguousCase walks the two-solution SSA input
// a=3, b=4, alpha=π/4. Without a filter it is rejected; the Acute and
// Obtuse classification methods each pick one branch.
func ExampleSolve_ambiguousCase() {
	spec := map[string]float64{"a": 3, "b": 4, "alpha": math.Pi / 4}

	_, err := triangle.Solve(spec, nil)
	fmt.Println("no filter:", errors.Is(err, triangle.ErrAmbiguous))

	both, _ := triangle.Solutions(spec, nil)
	for _, sss := range both {
		fmt.Printf("candidate c=%.7f\n", sss["c"])
	}

	acute, _ := triangle.Solve(spec, &triangle.Options{Filter: (*triangle.Triangle).Acute})
	obtuse, _ := triangle.Solve(spec, &triangle.Options{Filter: (*triangle.Triangle).Obtuse})
	fmt.Printf("acute  c=%.7f\n", acute.Sides[2])
	fmt.Printf("obtuse c=%.7f\n", obtuse.Sides[2])
	// Output:
	// no filter: true
	// candidate c=3.8284271
	// candidate c=1.8284271
	// acute  c=3.8284271
	// obtuse c=1.8284271
}

// ExampleCoordsSpec solves a triangle placed on the plane: each side
// opposes its same-index point.
func ExampleCoordsSpec() {
	pts := [3]triangle.Point{{0, 0}, {3, 0}, {0, 4}}

	t, err := triangle.Solve(triangle.CoordsSpec(pts, naming.Names{}), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(t)
	fmt.Printf("area=%.1f\n", t.Area())
	// Output:
	// Triangle(a=5, b=4, c=3)
	// area=6.0
}

// ExampleTriangle_Canonical relabels a triangle so its sides come out in
// non-decreasing order, with every angle still opposing its side.
func ExampleTriangle_Canonical() {
	t, _ := triangle.Solve(map[string]float64{"a": 5, "b": 4, "c": 3}, nil)

	fmt.Println(t.Canonical())
	fmt.Println("still right:", t.Canonical().Pythagorean())
	// Output:
	// Triangle(a=3, b=4, c=5)
	// still right: true
}

// ExampleSolve_customNaming solves under textbook vertex naming built by
// the compact-string factory.
func ExampleSolve_customNaming() {
	nm, _ := naming.FromNames("PQR")
	spec := map[string]float64{"QR": 3, "PR": 4, "PQ": 5}

	t, err := triangle.Solve(spec, &triangle.Options{Names: nm})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, _ := t.Attr("R")
	fmt.Printf("angle R=%.4f rad\n", r)
	// Output:
	// angle R=1.5708 rad
}
