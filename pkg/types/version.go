package types

import "fmt"

// Version tags a built-in canonical order table, or marks a list as custom.
// The integer values are persisted and must not be renumbered.
type Version int

const (
	// VersionLegacy is the original canonical ordering.
	VersionLegacy Version = 1

	// VersionCurrent is the current canonical ordering.
	VersionCurrent Version = 2

	// VersionCustom marks a list that no longer matches any built-in table;
	// the full list travels alongside it as a serialized blob.
	VersionCustom Version = 3
)

// IsBuiltin reports whether the version selects a built-in canonical table.
func (v Version) IsBuiltin() bool {
	return v == VersionLegacy || v == VersionCurrent
}

func (v Version) String() string {
	switch v {
	case VersionLegacy:
		return "legacy"
	case VersionCurrent:
		return "current"
	case VersionCustom:
		return "custom"
	default:
		return fmt.Sprintf("version(%d)", int(v))
	}
}

// ParseVersion maps a version name to its Version, for config and CLI input.
func ParseVersion(s string) (Version, bool) {
	switch s {
	case "legacy":
		return VersionLegacy, true
	case "current":
		return VersionCurrent, true
	case "custom":
		return VersionCustom, true
	default:
		return 0, false
	}
}
