package naming

import "errors"

// Sentinel errors for naming operations.
var (
	// ErrUnknownName indicates a name outside the active configuration.
	ErrUnknownName = errors.New("naming: name not in configuration")
	// ErrMixedNames indicates side and angle names mixed in one lookup.
	ErrMixedNames = errors.New("naming: side and angle names must not be mixed")
	// ErrBadNameSpec indicates an invalid configuration or name-string.
	ErrBadNameSpec = errors.New("naming: invalid name specification")
)

// Names is a triangle naming configuration: two index-aligned triples of
// identifiers plus an equality predicate.
//
// Invariant: Angles[i] opposes Sides[i]. All six identifiers are
// non-empty and pairwise distinct. Names is read-only by convention
// after construction and may be read concurrently without
// synchronization.
//
// The zero value is not usable directly; start from Default() or New().
type Names struct {
	// Sides holds the three side identifiers in declaration order.
	Sides [3]string
	// Angles holds the three angle identifiers; Angles[i] opposes Sides[i].
	Angles [3]string
	// Close is the approximate-equality predicate threaded into every
	// tolerance-aware comparison. Nil falls back to DefaultClose.
	Close Close
}

// Default returns the standard configuration: sides a/b/c opposing
// angles alpha/beta/gamma, compared with DefaultClose.
func Default() Names {
	return Names{
		Sides:  [3]string{"a", "b", "c"},
		Angles: [3]string{"alpha", "beta", "gamma"},
		Close:  DefaultClose,
	}
}

// New builds a validated configuration from two identifier triples and
// an optional equality predicate (nil selects DefaultClose).
// Returns ErrBadNameSpec if any identifier is empty or the six are not
// pairwise distinct.
func New(sides, angles [3]string, close Close) (Names, error) {
	seen := make(map[string]struct{}, 6)
	for _, triple := range [2][3]string{sides, angles} {
		for _, id := range triple {
			if id == "" {
				return Names{}, ErrBadNameSpec
			}
			if _, dup := seen[id]; dup {
				return Names{}, ErrBadNameSpec
			}
			seen[id] = struct{}{}
		}
	}
	if close == nil {
		close = DefaultClose
	}

	return Names{Sides: sides, Angles: angles, Close: close}, nil
}

// Equal applies the configured Close predicate, falling back to
// DefaultClose when none is set.
func (n Names) Equal(a, b float64) bool {
	if n.Close == nil {
		return DefaultClose(a, b)
	}

	return n.Close(a, b)
}

// SideIndex returns the position of name in Sides, or -1.
func (n Names) SideIndex(name string) int {
	for i, s := range n.Sides {
		if s == name {
			return i
		}
	}

	return -1
}

// AngleIndex returns the position of name in Angles, or -1.
func (n Names) AngleIndex(name string) int {
	for i, a := range n.Angles {
		if a == name {
			return i
		}
	}

	return -1
}

// IsSide reports whether name is one of the configured side identifiers.
func (n Names) IsSide(name string) bool { return n.SideIndex(name) >= 0 }

// IsAngle reports whether name is one of the configured angle identifiers.
func (n Names) IsAngle(name string) bool { return n.AngleIndex(name) >= 0 }

// OpposingName returns the paired identifier at the same index: the
// opposing angle name for a side name, or vice versa.
// Returns ErrUnknownName for anything else.
func (n Names) OpposingName(name string) (string, error) {
	if i := n.SideIndex(name); i >= 0 {
		return n.Angles[i], nil
	}
	if i := n.AngleIndex(name); i >= 0 {
		return n.Sides[i], nil
	}

	return "", ErrUnknownName
}

// OtherNames returns, in declaration order, the identifiers from the
// same name-space (all sides or all angles) as the given ones that are
// not present in given.
//
// At least one name is required. All given names must belong to a single
// name-space: mixing sides with angles returns ErrMixedNames, and a name
// outside the configuration returns ErrUnknownName.
func (n Names) OtherNames(given ...string) ([]string, error) {
	if len(given) == 0 {
		return nil, ErrUnknownName
	}

	var pool [3]string
	switch {
	case n.IsSide(given[0]):
		pool = n.Sides
	case n.IsAngle(given[0]):
		pool = n.Angles
	default:
		return nil, ErrUnknownName
	}

	// Every given name must come from the chosen pool: an identifier from
	// the other name-space is a mix, anything else is unknown.
	for _, g := range given[1:] {
		switch {
		case inPool(pool, g):
			// ok
		case n.IsSide(g) || n.IsAngle(g):
			return nil, ErrMixedNames
		default:
			return nil, ErrUnknownName
		}
	}

	rest := make([]string, 0, 2)
	for _, candidate := range pool {
		if !contains(given, candidate) {
			rest = append(rest, candidate)
		}
	}

	return rest, nil
}

// inPool reports whether name is one of the three pool identifiers.
func inPool(pool [3]string, name string) bool {
	return pool[0] == name || pool[1] == name || pool[2] == name
}

// contains reports whether names includes name.
func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
