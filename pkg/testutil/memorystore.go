package testutil

import (
	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/types"
)

type storedOrder struct {
	version types.Version
	blob    []byte
}

// MemoryStore is an in-memory datastore.Store for tests. Optional failure
// hooks simulate a broken backing store.
type MemoryStore struct {
	orders map[int64]storedOrder

	// FailReads and FailWrites make the corresponding calls error, so
	// callers' fall-back-to-default paths can be exercised.
	FailReads  bool
	FailWrites bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[int64]storedOrder)}
}

// Read implements datastore.Store.
func (s *MemoryStore) Read(imageID int64) (types.Version, []byte, error) {
	if s.FailReads {
		return 0, nil, errors.New(errors.ErrStoreRead, "simulated read failure")
	}
	stored, ok := s.orders[imageID]
	if !ok {
		return 0, nil, errors.Newf(errors.ErrNotFound, "no stored order for image %d", imageID)
	}
	blob := make([]byte, len(stored.blob))
	copy(blob, stored.blob)
	return stored.version, blob, nil
}

// Write implements datastore.Store.
func (s *MemoryStore) Write(imageID int64, version types.Version, blob []byte) error {
	if s.FailWrites {
		return errors.New(errors.ErrStoreWrite, "simulated write failure")
	}
	copied := make([]byte, len(blob))
	copy(copied, blob)
	s.orders[imageID] = storedOrder{version: version, blob: copied}
	return nil
}

// Delete implements datastore.Store.
func (s *MemoryStore) Delete(imageID int64) error {
	delete(s.orders, imageID)
	return nil
}

// Close implements datastore.Store.
func (s *MemoryStore) Close() error {
	return nil
}
