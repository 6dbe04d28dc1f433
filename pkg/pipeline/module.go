package pipeline

import "fmt"

// Module is one live instance of an operation in a document's pipeline.
// Rank mirrors the matching order entry and is rewritten by SyncModuleRanks;
// types.RankUnused means no entry matches.
type Module struct {
	Operation string
	Instance  int
	Name      string
	Rank      int
	Enabled   bool

	// Fence forbids any interactive reorder that would cross this module.
	// Fences do not affect rule checks, the codec or the reconciler.
	Fence bool
}

// Same reports whether the module matches the (operation, instance) key.
func (m *Module) Same(operation string, instance int) bool {
	return m.Operation == operation && m.Instance == instance
}

func (m *Module) String() string {
	return fmt.Sprintf("%s,%d", m.Operation, m.Instance)
}

// DefaultFenceOperations lists the operations flagged as fences when a
// module set is built from scratch. The color pipeline boundaries and the
// demosaic step must never be crossed by a drag reorder.
var DefaultFenceOperations = map[string]bool{
	"demosaic": true,
	"colorin":  true,
	"colorout": true,
	"gamma":    true,
}
