// Package trigon is an in-memory toolkit for solving, classifying and
// interrogating geometric triangles — from the five classical
// specification cases to similarity and altitude queries.
//
// 🚀 What is trigon?
//
//	A modern, deterministic, zero-dependency library that brings together:
//		• Solving: SSS, SAS, ASA, AAS and the ambiguous SSA case
//		• Ambiguity control: acceptance predicates pick between SSA branches
//		• Queries: area (Heron), altitude, scaling, canonical reordering
//		• Classification: equilateral, isosceles, right, acute, obtuse
//		• Naming: configurable side/angle identifiers with opposition pairing
//		• Coordinates: three 2D points → side-length specification
//
// ✨ Why choose trigon?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, tolerance-aware comparisons
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – plug in your own equality predicate and attribute names
//
// Under the hood, everything is organized under two subpackages:
//
//	naming/   — side/angle naming configurations, opposition helpers,
//	            approximate-equality policy, compact name-string factory
//	triangle/ — the Triangle entity, the solving engine, geometry queries
//	            and classification predicates
//
// Quick ASCII example:
//
//	        C
//	       /│
//	    b / │ a
//	     /  │
//	    A───B
//	      c
//
//	side a opposes angle alpha (at A), b opposes beta, c opposes gamma.
//
// Dive into the per-package docs and example tests for full walkthroughs
// of the ambiguous case, custom naming and coordinate input.
//
//	go get github.com/trigonkit/trigon/triangle
package trigon
