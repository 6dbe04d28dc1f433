package order

import "github.com/dusklight/pixelpipe/pkg/types"

const (
	// FirstOperation anchors the head of every sane order list.
	FirstOperation = "rawprepare"

	// LastOperation anchors the tail of every sane order list.
	LastOperation = "gamma"
)

// canonicalCurrent is the current built-in ordering (types.VersionCurrent).
var canonicalCurrent = []string{
	"rawprepare",
	"invert",
	"temperature",
	"highlights",
	"hotpixels",
	"rawdenoise",
	"demosaic",
	"denoiseprofile",
	"exposure",
	"flip",
	"crop",
	"basecurve",
	"tonecurve",
	"colorin",
	"channelmixer",
	"velvia",
	"sharpen",
	"colorout",
	"borders",
	"watermark",
	"gamma",
}

// canonicalLegacy is the original ordering (types.VersionLegacy). It differs
// from the current table in where exposure, denoising and the geometry
// operations sit, but honors the same precedence rules.
var canonicalLegacy = []string{
	"rawprepare",
	"invert",
	"temperature",
	"highlights",
	"hotpixels",
	"rawdenoise",
	"demosaic",
	"exposure",
	"denoiseprofile",
	"basecurve",
	"flip",
	"crop",
	"colorin",
	"tonecurve",
	"channelmixer",
	"velvia",
	"sharpen",
	"colorout",
	"borders",
	"watermark",
	"gamma",
}

// CanonicalTable returns the operation sequence of a built-in table, or nil
// for VersionCustom and unknown versions.
func CanonicalTable(version types.Version) []string {
	switch version {
	case types.VersionLegacy:
		return canonicalLegacy
	case types.VersionCurrent:
		return canonicalCurrent
	default:
		return nil
	}
}

// NewCanonicalList builds a fresh list from a built-in table, base instances
// only, already renumbered. Returns nil for non-built-in versions.
func NewCanonicalList(version types.Version) *List {
	table := CanonicalTable(version)
	if table == nil {
		return nil
	}
	return NewListFromOperations(table)
}
