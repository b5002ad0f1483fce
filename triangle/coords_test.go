package triangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trigonkit/trigon/naming"
	"github.com/trigonkit/trigon/triangle"
)

// TestCoordsSpec_FixedOrder verifies positional opposition: side i is
// the distance between the two points other than point i.
func TestCoordsSpec_FixedOrder(t *testing.T) {
	pts := [3]triangle.Point{{0, 0}, {3, 0}, {0, 4}}
	sss := coordsDefault(pts)

	assert.InDelta(t, 5, sss["a"], 1e-12, "side a opposes the first point")
	assert.InDelta(t, 4, sss["b"], 1e-12, "side b opposes the second point")
	assert.InDelta(t, 3, sss["c"], 1e-12, "side c opposes the third point")
}

// coordsDefault is shorthand for CoordsSpec under the default naming.
func coordsDefault(pts [3]triangle.Point) map[string]float64 {
	return triangle.CoordsSpec(pts, naming.Names{})
}

// TestCoordsSpec_TranslationInvariant verifies translated and reflected
// placements of a 3-4-5 right angle all solve to the same shape.
func TestCoordsSpec_TranslationInvariant(t *testing.T) {
	base := solve345(t)
	placements := [][3]triangle.Point{
		{{0, 0}, {3, 0}, {3, 4}},
		{{100, 100}, {103, 100}, {103, 104}},
		{{100, -200}, {103, -200}, {103, -204}},
		{{-100, -200}, {-103, -200}, {-103, -204}},
		{{-200, -100}, {-203, -100}, {-203, -104}},
	}

	for _, pts := range placements {
		tri, err := triangle.Solve(coordsDefault(pts), nil)
		require.NoError(t, err, "points %v", pts)
		assert.True(t, base.Similar(tri), "points %v must form a 3-4-5 shape", pts)
	}
}

// TestCoordsSpec_CollinearSurfacesAsDegenerate verifies collinear points
// pass through the adapter and fail in the SSS solver.
func TestCoordsSpec_CollinearSurfacesAsDegenerate(t *testing.T) {
	sss := coordsDefault([3]triangle.Point{{0, 0}, {1, 0}, {3, 0}})

	_, err := triangle.Solve(sss, nil)
	assert.ErrorIs(t, err, triangle.ErrDegenerate)
}

// TestCoordsSpec_CustomNames verifies the specification is keyed by the
// supplied configuration's side names.
func TestCoordsSpec_CustomNames(t *testing.T) {
	nm, err := naming.FromNames("PQR")
	require.NoError(t, err)

	sss := triangle.CoordsSpec([3]triangle.Point{{0, 0}, {3, 0}, {0, 4}}, nm)
	assert.Len(t, sss, 3)
	assert.Contains(t, sss, "QR")
	assert.Contains(t, sss, "PR")
	assert.Contains(t, sss, "PQ")

	tri, err := triangle.Solve(sss, &triangle.Options{Names: nm})
	require.NoError(t, err)
	assert.True(t, tri.Pythagorean())
}
