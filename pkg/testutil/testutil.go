package testutil

import (
	"fmt"

	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
)

// NewDocument builds a document over the given operation sequence with all
// modules enabled and only the named operations flagged as fences.
func NewDocument(imageID int64, operations []string, fences ...string) *pipeline.Document {
	doc := pipeline.NewDocument(imageID, order.NewListFromOperations(operations))
	fenced := make(map[string]bool, len(fences))
	for _, op := range fences {
		fenced[op] = true
	}
	for _, m := range doc.Modules {
		m.Fence = fenced[m.Operation]
	}
	return doc
}

// Operations returns the operation names of a list in order, for assertions.
func Operations(l *order.List) []string {
	ops := make([]string, 0, l.Len())
	for _, e := range l.Entries() {
		ops = append(ops, e.Operation)
	}
	return ops
}

// MapHistory is a History backed by a set of "operation,instance" keys.
type MapHistory map[string]bool

// Contains implements pipeline.History.
func (h MapHistory) Contains(operation string, instance int) bool {
	return h[fmt.Sprintf("%s,%d", operation, instance)]
}
