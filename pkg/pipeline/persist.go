package pipeline

import (
	"github.com/dusklight/pixelpipe/pkg/codec"
	"github.com/dusklight/pixelpipe/pkg/datastore"
	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// LoadOrder resolves an image's order list from the store. Every failure —
// missing row, read error, undecodable blob, unknown version — degrades to
// the given default built-in table; the engine never aborts a load.
func LoadOrder(store datastore.Store, imageID int64, defaultVersion types.Version) (*order.List, types.Version) {
	logger := logging.GetLogger("pipeline.persist")

	version, blob, err := store.Read(imageID)
	if err != nil {
		logger.Debug().Err(err).Int64("image", imageID).Msg("no stored order, using default table")
		return order.NewCanonicalList(defaultVersion), defaultVersion
	}

	if version.IsBuiltin() {
		return order.NewCanonicalList(version), version
	}

	list, err := codec.DecodeBinary(blob)
	if err != nil || list.Len() == 0 {
		logger.Warn().Err(err).Int64("image", imageID).Msg("stored order invalid, using default table")
		return order.NewCanonicalList(defaultVersion), defaultVersion
	}
	return list, types.VersionCustom
}

// SaveOrder persists a document's order: a cheap version marker when the
// list still matches a built-in table, the full blob otherwise.
func SaveOrder(store datastore.Store, doc *Document) error {
	if version, ok := doc.Order.MatchingVersion(); ok && !doc.Order.HasMultipleInstances() {
		return store.Write(doc.ImageID, version, nil)
	}
	return store.Write(doc.ImageID, types.VersionCustom, codec.EncodeBinary(doc.Order))
}
