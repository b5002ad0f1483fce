package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trigonkit/trigon/naming"
)

// TestFromNames_VertexTriple verifies the "ABC" form: letters become
// angle names and each side concatenates its two non-opposing letters.
func TestFromNames_VertexTriple(t *testing.T) {
	nm, err := naming.FromNames("ABC")
	require.NoError(t, err)

	assert.Equal(t, [3]string{"A", "B", "C"}, nm.Angles)
	assert.Equal(t, [3]string{"BC", "AC", "AB"}, nm.Sides)

	opp, err := nm.OpposingName("A")
	require.NoError(t, err)
	assert.Equal(t, "BC", opp, "angle A must oppose side BC")
}

// TestFromNames_ExplicitFragments verifies the side<angle fragment form
// with comma and space separators.
func TestFromNames_ExplicitFragments(t *testing.T) {
	for _, s := range []string{"x<X,y<Y,z<Z", "x<X y<Y z<Z"} {
		nm, err := naming.FromNames(s)
		require.NoError(t, err, "spec %q", s)
		assert.Equal(t, [3]string{"x", "y", "z"}, nm.Sides)
		assert.Equal(t, [3]string{"X", "Y", "Z"}, nm.Angles)
	}
}

// TestFromNames_SingleLetterDefaulting verifies the case-flipping
// defaulting rules: a lowercase fragment names the side and infers the
// uppercase angle, an uppercase fragment the reverse.
func TestFromNames_SingleLetterDefaulting(t *testing.T) {
	nm, err := naming.FromNames("p,Q,r<H")
	require.NoError(t, err)

	assert.Equal(t, [3]string{"p", "q", "r"}, nm.Sides)
	assert.Equal(t, [3]string{"P", "Q", "H"}, nm.Angles)
}

// TestFromNames_Rejections verifies malformed strings fail with
// ErrBadNameSpec.
func TestFromNames_Rejections(t *testing.T) {
	bad := []string{
		"",        // empty
		"AB",      // too short for the vertex form
		"ABCD",    // too long
		"A1C",     // non-letter in the vertex form
		"a,b",     // two fragments
		"a,b,c,d", // four fragments
		"ab,c,d",  // multi-letter fragment without '<'
		"a<,b,c",  // empty angle half
		"<A,b,c",  // empty side half
		"a,a,b",   // duplicate pair
		"x<Q,q,r", // angle Q collides with fragment q's inferred angle
	}

	for _, s := range bad {
		_, err := naming.FromNames(s)
		assert.ErrorIs(t, err, naming.ErrBadNameSpec, "spec %q must be rejected", s)
	}
}

// TestFromNames_DefaultCloseAttached verifies the factory attaches a
// usable equality predicate.
func TestFromNames_DefaultCloseAttached(t *testing.T) {
	nm, err := naming.FromNames("PQR")
	require.NoError(t, err)
	assert.True(t, nm.Equal(2.0, 2.0+1e-12))
}
