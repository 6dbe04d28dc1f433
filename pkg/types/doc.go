// Package types defines the core value types shared across the pixelpipe
// engine: order entries, precedence rules, and the versioned-order
// identifiers.
//
// Everything here is a plain value with structural equality and no behavior
// beyond comparison. An Entry is identified by its (Operation, Instance)
// pair; Rank is a derived field that the order store recomputes after every
// structural mutation and is never part of an entry's identity.
package types
