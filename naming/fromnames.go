package naming

import (
	"strings"
	"unicode"
)

// FromNames builds a configuration from a compact name-string.
//
// Two forms are recognized:
//
//  1. A bare triple of letters, e.g. "ABC": the three letters become the
//     angle names and each side is named by concatenating the two
//     non-opposing angle letters, so "ABC" yields angles A, B, C and
//     sides BC, AC, AB (side BC opposes angle A, and so on). Handy for
//     classroom-style problems where vertices carry the names.
//
//  2. A list of exactly three fragments separated by commas or spaces,
//     each naming one side/angle opposition pair:
//     - "side<angle" gives both names explicitly, e.g. "x<X";
//     - a single lowercase letter names the side, with the opposing
//       angle defaulted to its uppercase, e.g. "p" ⇒ pair p/P;
//     - a single uppercase letter names the angle, with the opposing
//       side defaulted to its lowercase, e.g. "Q" ⇒ pair q/Q.
//
// The resulting configuration uses DefaultClose; adjust the Close field
// afterwards if a different tolerance is needed.
//
// Returns ErrBadNameSpec for anything else: wrong fragment count,
// malformed fragments, empty halves, or duplicate identifiers.
func FromNames(s string) (Names, error) {
	if fields := splitFragments(s); len(fields) == 3 {
		return fromFragments(fields)
	}
	if isLetterTriple(s) {
		return fromVertices(s)
	}

	return Names{}, ErrBadNameSpec
}

// splitFragments splits on commas and spaces, dropping empties.
func splitFragments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// isLetterTriple reports whether s is exactly three letters.
func isLetterTriple(s string) bool {
	runes := []rune(s)
	if len(runes) != 3 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

// fromVertices handles the "ABC" form: letters are angle (vertex) names,
// sides concatenate the two letters of their non-opposing angles.
func fromVertices(s string) (Names, error) {
	v := []rune(s)
	angles := [3]string{string(v[0]), string(v[1]), string(v[2])}
	sides := [3]string{
		string(v[1]) + string(v[2]),
		string(v[0]) + string(v[2]),
		string(v[0]) + string(v[1]),
	}

	return New(sides, angles, nil)
}

// fromFragments handles the three-fragment form, applying the
// case-flipping defaulting rules for single-letter fragments.
func fromFragments(fields []string) (Names, error) {
	var sides, angles [3]string
	for i, frag := range fields {
		side, angle, err := splitPair(frag)
		if err != nil {
			return Names{}, err
		}
		sides[i], angles[i] = side, angle
	}

	return New(sides, angles, nil)
}

// splitPair resolves one fragment into its (side, angle) pair.
func splitPair(frag string) (side, angle string, err error) {
	if before, after, found := strings.Cut(frag, "<"); found {
		if before == "" || after == "" {
			return "", "", ErrBadNameSpec
		}

		return before, after, nil
	}

	runes := []rune(frag)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return "", "", ErrBadNameSpec
	}
	r := runes[0]
	if unicode.IsUpper(r) {
		return string(unicode.ToLower(r)), string(r), nil
	}

	return string(r), string(unicode.ToUpper(r)), nil
}
