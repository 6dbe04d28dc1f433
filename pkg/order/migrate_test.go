package order_test

import (
	"testing"

	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportLegacyFloatOrder(t *testing.T) {
	legacy := []order.FloatRanked{
		{Operation: "gamma", Instance: 0, Rank: 9.5},
		{Operation: "rawprepare", Instance: 0, Rank: 1.0},
		{Operation: "exposure", Instance: 1, Rank: 3.25},
		{Operation: "exposure", Instance: 0, Rank: 3.25},
		{Operation: "demosaic", Instance: 0, Rank: 2.0},
	}

	l := order.ImportLegacyFloatOrder(legacy)
	require.Equal(t, 5, l.Len())

	assert.Equal(t, []string{"rawprepare", "demosaic", "exposure", "exposure", "gamma"}, opsOf(l))

	// Equal float ranks keep their original relative order (stable sort)
	assert.Equal(t, 1, l.At(2).Instance)
	assert.Equal(t, 0, l.At(3).Instance)

	// Integer ranks are freshly derived
	for i, e := range l.Entries() {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestImportLegacyFloatOrderEmpty(t *testing.T) {
	l := order.ImportLegacyFloatOrder(nil)
	assert.Equal(t, 0, l.Len())
}
