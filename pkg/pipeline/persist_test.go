package pipeline_test

import (
	"testing"

	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/testutil"
	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrderFallbacks(t *testing.T) {
	t.Run("missing_image_uses_default", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		list, version := pipeline.LoadOrder(store, 1, types.VersionCurrent)
		assert.Equal(t, types.VersionCurrent, version)
		assert.Equal(t, order.NewCanonicalList(types.VersionCurrent).Entries(), list.Entries())
	})

	t.Run("read_failure_uses_default", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		store.FailReads = true
		list, version := pipeline.LoadOrder(store, 1, types.VersionLegacy)
		assert.Equal(t, types.VersionLegacy, version)
		require.NotNil(t, list)
	})

	t.Run("corrupt_blob_uses_default", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		require.NoError(t, store.Write(1, types.VersionCustom, []byte{0xff, 0xff}))
		list, version := pipeline.LoadOrder(store, 1, types.VersionCurrent)
		assert.Equal(t, types.VersionCurrent, version)
		require.NotNil(t, list)
	})
}

func TestSaveOrderRoundTrip(t *testing.T) {
	t.Run("canonical_saves_version_marker", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		doc := pipeline.NewDocument(9, order.NewCanonicalList(types.VersionLegacy))

		require.NoError(t, pipeline.SaveOrder(store, doc))

		version, blob, err := store.Read(9)
		require.NoError(t, err)
		assert.Equal(t, types.VersionLegacy, version)
		assert.Empty(t, blob)
	})

	t.Run("custom_saves_blob", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		list := order.NewCanonicalList(types.VersionCurrent)
		i, _ := list.Find("exposure", 0)
		list.InsertAt(i+1, types.Entry{Operation: "exposure", Instance: 1})
		doc := pipeline.NewDocument(9, list)

		require.NoError(t, pipeline.SaveOrder(store, doc))

		loaded, version := pipeline.LoadOrder(store, 9, types.VersionCurrent)
		assert.Equal(t, types.VersionCustom, version)
		assert.Equal(t, testutil.Operations(list), testutil.Operations(loaded))
	})
}
