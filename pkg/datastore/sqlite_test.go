package datastore_test

import (
	"path/filepath"
	"testing"

	"github.com/dusklight/pixelpipe/pkg/codec"
	"github.com/dusklight/pixelpipe/pkg/datastore"
	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *datastore.SQLiteStore {
	t.Helper()
	store, err := datastore.OpenSQLite(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestReadMissingImage(t *testing.T) {
	store := openTestStore(t)

	_, _, err := store.Read(404)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestWriteReadBuiltin(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Write(7, types.VersionCurrent, nil))

	version, blob, err := store.Read(7)
	require.NoError(t, err)
	assert.Equal(t, types.VersionCurrent, version)
	assert.Empty(t, blob)
}

func TestWriteReadCustomBlob(t *testing.T) {
	store := openTestStore(t)

	list := order.NewListFromEntries([]types.Entry{
		{Operation: "rawprepare"},
		{Operation: "exposure", Instance: 1},
		{Operation: "gamma"},
	})
	require.NoError(t, store.Write(7, types.VersionCustom, codec.EncodeBinary(list)))

	version, blob, err := store.Read(7)
	require.NoError(t, err)
	assert.Equal(t, types.VersionCustom, version)

	decoded, err := codec.DecodeBinary(blob)
	require.NoError(t, err)
	assert.Equal(t, list.Entries(), decoded.Entries())
}

func TestWriteReplaces(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Write(7, types.VersionLegacy, nil))
	require.NoError(t, store.Write(7, types.VersionCurrent, nil))

	version, _, err := store.Read(7)
	require.NoError(t, err)
	assert.Equal(t, types.VersionCurrent, version)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Write(7, types.VersionCurrent, nil))
	require.NoError(t, store.Delete(7))

	_, _, err := store.Read(7)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	// Deleting a missing image is not an error
	assert.NoError(t, store.Delete(7))
}
