package types

import (
	"fmt"
	"math"
)

const (
	// RankUnused marks a module with no matching order entry. Such a module
	// sorts after every ranked one and is skipped by rank-dependent checks.
	RankUnused = math.MaxInt32

	// AnyInstance is the wildcard instance discriminator for lookups that
	// match the first entry of an operation regardless of instance.
	AnyInstance = -1

	// BaseInstance is the canonical instance of an operation.
	BaseInstance = 0

	// MaxOperationNameLen bounds operation names on the wire.
	MaxOperationNameLen = 20

	// MaxInstance bounds instance discriminators on the wire.
	MaxInstance = 1000
)

// Entry is one element of an order list: an operation type plus an instance
// discriminator, with a derived rank and an optional human label.
type Entry struct {
	// Operation is the short stable identifier of the operation type,
	// e.g. "demosaic". Immutable once created.
	Operation string

	// Instance distinguishes multiple entries of the same operation.
	// BaseInstance denotes the canonical copy.
	Instance int

	// Name is an optional human label used only to disambiguate instances
	// during reconciliation against named module copies.
	Name string

	// Rank is the entry's position in the resolved order, assigned by
	// Renumber and never set directly.
	Rank int
}

// Same reports whether the entry matches the given (operation, instance)
// key. AnyInstance matches every instance of the operation.
func (e Entry) Same(operation string, instance int) bool {
	if e.Operation != operation {
		return false
	}
	return instance == AnyInstance || e.Instance == instance
}

// Equal reports structural identity on (operation, instance).
func (e Entry) Equal(other Entry) bool {
	return e.Operation == other.Operation && e.Instance == other.Instance
}

// String renders the entry's durable key the way the text codec does.
func (e Entry) String() string {
	return fmt.Sprintf("%s,%d", e.Operation, e.Instance)
}

// Rule is a declared precedence constraint: no live entry matching After may
// be ordered ahead of a live entry matching Before when both are present,
// regardless of instance.
type Rule struct {
	Before string
	After  string
}

// Equal reports structural identity on (before, after).
func (r Rule) Equal(other Rule) bool {
	return r.Before == other.Before && r.After == other.After
}

func (r Rule) String() string {
	return fmt.Sprintf("%s < %s", r.Before, r.After)
}
