package pipeline

import (
	"sort"

	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// History is the read-only edit-history collaborator: it answers whether a
// module instance is referenced by saved history, which the auditor's dedup
// helper consults before renumbering anything a user has edited.
type History interface {
	Contains(operation string, instance int) bool
}

// NoHistory is the empty history.
type NoHistory struct{}

// Contains always reports false.
func (NoHistory) Contains(string, int) bool { return false }

// Document is the per-image context: the order list and the live module
// collection it sequences. Owned exclusively by one caller for the duration
// of a logical operation.
type Document struct {
	ImageID int64
	Order   *order.List
	Modules []*Module
	History History
}

// NewDocument builds a document around an existing order list, with a live
// module set derived from the list (base state: all enabled, fences from
// DefaultFenceOperations) and ranks already synced.
func NewDocument(imageID int64, list *order.List) *Document {
	doc := &Document{
		ImageID: imageID,
		Order:   list,
		History: NoHistory{},
	}
	for _, e := range list.Entries() {
		doc.Modules = append(doc.Modules, &Module{
			Operation: e.Operation,
			Instance:  e.Instance,
			Name:      e.Name,
			Enabled:   true,
			Fence:     DefaultFenceOperations[e.Operation],
		})
	}
	SyncModuleRanks(doc)
	return doc
}

// Module returns the live module matching (operation, instance), or nil.
func (d *Document) Module(operation string, instance int) *Module {
	for _, m := range d.Modules {
		if m.Same(operation, instance) {
			return m
		}
	}
	return nil
}

// ModulesByRank returns the live modules (rank != RankUnused) in rank order.
func (d *Document) ModulesByRank() []*Module {
	live := make([]*Module, 0, len(d.Modules))
	for _, m := range d.Modules {
		if m.Rank != types.RankUnused {
			live = append(live, m)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Rank < live[j].Rank
	})
	return live
}

// SyncModuleRanks re-derives every module's rank from the order list.
// Modules without a matching entry get types.RankUnused.
func SyncModuleRanks(doc *Document) {
	for _, m := range doc.Modules {
		if i, ok := doc.Order.Find(m.Operation, m.Instance); ok {
			m.Rank = doc.Order.At(i).Rank
		} else {
			m.Rank = types.RankUnused
		}
	}
}
