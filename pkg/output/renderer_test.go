package output_test

import (
	"testing"

	"github.com/dusklight/pixelpipe/pkg/output"
	"github.com/dusklight/pixelpipe/pkg/testutil"
	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTable(t *testing.T) {
	doc := testutil.NewDocument(3, []string{"rawprepare", "demosaic", "gamma"}, "demosaic")
	r := output.NewRenderer("never")

	table, err := r.OrderTable(doc)
	require.NoError(t, err)

	assert.Contains(t, table, "OPERATION")
	assert.Contains(t, table, "rawprepare")
	assert.Contains(t, table, "demosaic")
	assert.Contains(t, table, "fence")
}

func TestOrderSummary(t *testing.T) {
	doc := testutil.NewDocument(3, []string{"rawprepare", "gamma"})
	r := output.NewRenderer("never")

	s := r.OrderSummary(doc, types.VersionCurrent)
	assert.Contains(t, s, "image 3")
	assert.Contains(t, s, "2 entries")
	assert.Contains(t, s, "current")
}

func TestVerdicts(t *testing.T) {
	r := output.NewRenderer("never")
	assert.Equal(t, "order consistent", r.AuditResult(true))
	assert.Equal(t, "order inconsistent, see log", r.AuditResult(false))
	assert.Equal(t, "moved", r.MoveResult(true))
	assert.Equal(t, "not moved", r.MoveResult(false))
}
