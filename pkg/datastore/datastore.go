package datastore

import "github.com/dusklight/pixelpipe/pkg/types"

// Store persists the order state of documents, keyed by image identifier.
type Store interface {
	// Read returns the stored version tag and, for custom orders, the
	// serialized list blob. A missing image returns a NOT_FOUND error.
	Read(imageID int64) (types.Version, []byte, error)

	// Write stores the version tag and blob for an image, replacing any
	// previous row. The blob may be nil for built-in versions.
	Write(imageID int64, version types.Version, blob []byte) error

	// Delete removes an image's stored order. Deleting a missing image is
	// not an error.
	Delete(imageID int64) error

	// Close releases the store's resources.
	Close() error
}
