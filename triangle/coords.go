package triangle

import (
	"math"

	"github.com/trigonkit/trigon/naming"
)

// Point is a 2D point in Cartesian coordinates.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance from p to q.
func (p Point) Dist(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// CoordsSpec converts three 2D points into a side-length specification
// keyed by the side names of nm (the zero value selects the default
// configuration). Side i is the distance between the two points other
// than point i, so each side opposes its same-index point in the usual
// geometric sense.
//
// Collinear points are accepted here; the resulting flat triple fails
// with ErrDegenerate once fed to Solve.
func CoordsSpec(pts [3]Point, nm naming.Names) map[string]float64 {
	if nm.Sides == [3]string{} {
		nm = naming.Default()
	}

	spec := make(map[string]float64, 3)
	for i, name := range nm.Sides {
		spec[name] = pts[(i+1)%3].Dist(pts[(i+2)%3])
	}

	return spec
}
