// Package naming defines the side/angle naming configuration consumed by
// the triangle solver, together with the approximate-equality policy and
// a compact name-string factory.
//
// 🚀 What is a naming configuration?
//
//	Two index-aligned ordered triples of identifiers — one for sides, one
//	for angles — plus an equality predicate for tolerance-aware float
//	comparison. The alignment encodes opposition:
//
//	    Angles[i] is the angle opposing Sides[i]
//
//	The default configuration names sides a, b, c and angles alpha, beta,
//	gamma, so side a opposes angle alpha, and so on.
//
// ✨ Key features:
//   - Names is a plain value: pass it explicitly, share it freely —
//     it is read-only after construction and safe for concurrent reads
//   - OpposingName / OtherNames resolve "which attribute opposes which"
//   - Close predicates make every "is equal" decision pluggable;
//     DefaultClose mirrors conventional relative float comparison
//   - FromNames builds a configuration from compact strings such as
//     "ABC" or "x<X y<Y z<Z"
//
// ⚙️ Usage:
//
//	import "github.com/trigonkit/trigon/naming"
//
//	nm := naming.Default()
//	opp, _ := nm.OpposingName("b")   // "beta"
//	rest, _ := nm.OtherNames("a")    // ["b", "c"]
//
//	pqr, _ := naming.FromNames("PQR") // angles P,Q,R; sides QR,PR,PQ
//
// See example_test.go for complete walkthroughs.
package naming
