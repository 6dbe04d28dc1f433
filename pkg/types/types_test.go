package types_test

import (
	"testing"

	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestEntrySame(t *testing.T) {
	e := types.Entry{Operation: "exposure", Instance: 2}

	assert.True(t, e.Same("exposure", 2))
	assert.True(t, e.Same("exposure", types.AnyInstance))
	assert.False(t, e.Same("exposure", 0))
	assert.False(t, e.Same("demosaic", types.AnyInstance))
}

func TestEntryEqual(t *testing.T) {
	a := types.Entry{Operation: "exposure", Instance: 1, Rank: 4}
	b := types.Entry{Operation: "exposure", Instance: 1, Rank: 9, Name: "sky"}
	c := types.Entry{Operation: "exposure", Instance: 2}

	// Identity is (operation, instance); rank and name do not participate
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRuleEqual(t *testing.T) {
	r := types.Rule{Before: "demosaic", After: "colorin"}
	assert.True(t, r.Equal(types.Rule{Before: "demosaic", After: "colorin"}))
	assert.False(t, r.Equal(types.Rule{Before: "colorin", After: "demosaic"}))
	assert.Equal(t, "demosaic < colorin", r.String())
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want types.Version
		ok   bool
	}{
		{"legacy", types.VersionLegacy, true},
		{"current", types.VersionCurrent, true},
		{"custom", types.VersionCustom, true},
		{"v99", 0, false},
	}
	for _, tt := range tests {
		got, ok := types.ParseVersion(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestVersionIsBuiltin(t *testing.T) {
	assert.True(t, types.VersionLegacy.IsBuiltin())
	assert.True(t, types.VersionCurrent.IsBuiltin())
	assert.False(t, types.VersionCustom.IsBuiltin())
}
