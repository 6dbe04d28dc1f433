package rules_test

import (
	"testing"

	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/rules"
	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := rules.DefaultCatalog()
	ruleList := cat.Rules()
	require.Len(t, ruleList, 9)

	// The raw-to-display chain is declared pairwise
	assert.True(t, ruleList[0].Equal(types.Rule{Before: "rawprepare", After: "invert"}))
	assert.True(t, cat.Forbids("demosaic", "colorin"))
	assert.True(t, cat.Forbids("colorin", "colorout"))

	// Rules are directional
	assert.False(t, cat.Forbids("colorin", "demosaic"))

	// No transitive closure: rawprepare<temperature is not a rule even
	// though rawprepare<invert and invert<temperature are
	assert.False(t, cat.Forbids("rawprepare", "temperature"))

	// Unknown operations never match
	assert.False(t, cat.Forbids("demosaic", "nonexistent"))
}

func TestViolates(t *testing.T) {
	cat := rules.DefaultCatalog()

	// Moving colorin backward across demosaic would put colorin first:
	// rule (demosaic, colorin) forbids it
	assert.True(t, cat.Violates("colorin", "demosaic", false))

	// Moving demosaic forward across colorin is the same violation
	assert.True(t, cat.Violates("demosaic", "colorin", true))

	// The legal directions
	assert.False(t, cat.Violates("colorin", "demosaic", true))
	assert.False(t, cat.Violates("demosaic", "colorin", false))
}

func TestIsFence(t *testing.T) {
	cat := rules.DefaultCatalog()

	assert.True(t, cat.IsFence(&pipeline.Module{Operation: "demosaic", Fence: true}))
	assert.False(t, cat.IsFence(&pipeline.Module{Operation: "exposure"}))
	assert.False(t, cat.IsFence(nil))
}

func TestRulesCopyIsIndependent(t *testing.T) {
	cat := rules.DefaultCatalog()
	got := cat.Rules()
	got[0] = types.Rule{Before: "x", After: "y"}

	assert.True(t, cat.Rules()[0].Equal(types.Rule{Before: "rawprepare", After: "invert"}))
}
