// Package order implements the order list store: the owned, slice-backed
// sequence of entries that resolves which operation runs when.
//
// A List exclusively owns its entries; copies are always deep and positions
// are plain indices, so no caller ever holds an aliased node across a
// mutation. Lookups never fail hard: a miss returns a sentinel (RankUnused,
// or a false "found" flag) and at most a debug log. After every structural
// mutation the list is renumbered so ranks stay contiguous from 1.
//
// The package also owns the built-in canonical tables and the one-time
// migration for legacy float-ranked lists.
package order
