// Package rules provides the fixed catalog of precedence rules between
// operations and the fence predicate used by the movement engine.
//
// The catalog is declared once at process start and never mutated, so a
// single Catalog value is safely shared across documents without locks.
// Rules are checked pairwise: a chain a<b<c holds only through the explicit
// adjacent rules actually present in the catalog, no transitive closure is
// computed. Operation names are interned to small integer handles when the
// catalog is built so the per-crossing check in a move walk is a map probe,
// not a string compare.
package rules
