package reconcile

import (
	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// Request asks for one instance of an operation to exist in the document,
// optionally under a given name. Batches of requests come from applying a
// style or duplicating modules.
type Request struct {
	Operation string
	Instance  int
	Name      string
}

// ExtractMultiInstance deep-copies every entry whose operation appears more
// than once in the list, preserving relative order. Used to remember the
// instance layout before a whole-list order is discarded.
func ExtractMultiInstance(list *order.List) *order.List {
	var extracted []types.Entry
	for _, e := range list.Entries() {
		if list.InstanceCount(e.Operation) > 1 {
			extracted = append(extracted, e)
		}
	}
	return order.NewListFromEntries(extracted)
}

// MergeMultiInstance re-applies an extracted instance layout onto dest and
// returns the merged list; dest is not mutated. Per operation present in
// extracted: existing dest entries are re-tagged in forward order, surplus
// extracted instances are appended right after the last replaced entry, and
// leftover dest entries are removed. Operations absent from dest are
// skipped — the merge never invents entries for unknown operations.
func MergeMultiInstance(dest, extracted *order.List) *order.List {
	logger := logging.GetLogger("reconcile.merge")
	merged := dest.Copy()

	for _, op := range distinctOperations(extracted) {
		wanted := entriesOf(extracted, op)

		positions := positionsOf(merged, op)
		if len(positions) == 0 {
			logger.Debug().Str("operation", op).Msg("operation absent from destination, skipped")
			continue
		}

		n := len(positions)
		if len(wanted) < n {
			n = len(wanted)
		}

		// Re-tag in forward order, keeping the destination's positions
		for i := 0; i < n; i++ {
			e := merged.At(positions[i])
			e.Instance = wanted[i].Instance
			e.Name = wanted[i].Name
			merged.ReplaceAt(positions[i], e)
		}

		// Surplus extracted instances go immediately after the replaced ones
		insertAt := positions[n-1] + 1
		for i := n; i < len(wanted); i++ {
			merged.InsertAt(insertAt, types.Entry{
				Operation: op,
				Instance:  wanted[i].Instance,
				Name:      wanted[i].Name,
			})
			insertAt++
		}

		// Leftover destination entries are removed back-to-front so the
		// recorded positions stay valid
		for i := len(positions) - 1; i >= len(wanted); i-- {
			merged.RemoveAt(positions[i])
		}
	}

	merged.Renumber()
	return merged
}

// ReconcileForEntries applies a batch of instance requests to the document's
// order list. In append mode existing enabled instances are preserved and
// only the deficit is appended with freshly minted instance numbers; in
// overwrite mode disabled live instances are recycled before new ones are
// minted. A named request that matches no current module forces append
// semantics for that operation, so distinctly named instances are never
// silently overwritten. Renumbers once at the end.
func ReconcileForEntries(doc *pipeline.Document, requests []Request, appendMode bool) {
	logger := logging.GetLogger("reconcile.entries")

	for _, op := range requestOperations(requests) {
		group := requestsOf(requests, op)

		positions := positionsOf(doc.Order, op)
		if len(positions) == 0 {
			// Unknown operation: never invent entries for it
			logger.Debug().Str("operation", op).Msg("requested operation unknown to order list, skipped")
			continue
		}

		enabled, disabled := 0, 0
		for _, m := range doc.Modules {
			if m.Operation != op {
				continue
			}
			if m.Enabled {
				enabled++
			} else {
				disabled++
			}
		}

		forceAppend := false
		for _, r := range group {
			if r.Name != "" && !moduleNameExists(doc, op, r.Name) {
				forceAppend = true
				break
			}
		}

		deficit := len(group) - enabled
		if !appendMode && !forceAppend {
			// Overwrite: recycle disabled live instances first
			recycled := disabled
			if recycled > deficit {
				recycled = deficit
			}
			if recycled > 0 {
				deficit -= recycled
				logger.Debug().
					Str("operation", op).
					Int("recycled", recycled).
					Msg("recycling disabled instances")
			}
		}

		if deficit <= 0 {
			continue
		}

		next := maxInstance(doc, op) + 1
		insertAt := positions[len(positions)-1] + 1
		for i := 0; i < deficit; i++ {
			name := group[len(group)-deficit+i].Name
			doc.Order.InsertAt(insertAt, types.Entry{
				Operation: op,
				Instance:  next,
				Name:      name,
			})
			logger.Debug().
				Str("operation", op).
				Int("instance", next).
				Str("name", name).
				Msg("minted new instance")
			insertAt++
			next++
		}
	}

	doc.Order.Renumber()
	pipeline.SyncModuleRanks(doc)
}

// ResyncWithModules removes every order entry for which no live module
// instance exists. Used after modules are deleted from the pipeline.
func ResyncWithModules(doc *pipeline.Document) {
	logger := logging.GetLogger("reconcile.resync")

	for i := doc.Order.Len() - 1; i >= 0; i-- {
		e := doc.Order.At(i)
		if doc.Module(e.Operation, e.Instance) == nil {
			logger.Debug().
				Str("operation", e.Operation).
				Int("instance", e.Instance).
				Msg("removing orphaned order entry")
			doc.Order.RemoveAt(i)
		}
	}
	pipeline.SyncModuleRanks(doc)
}

func distinctOperations(list *order.List) []string {
	seen := make(map[string]bool)
	var ops []string
	for _, e := range list.Entries() {
		if !seen[e.Operation] {
			seen[e.Operation] = true
			ops = append(ops, e.Operation)
		}
	}
	return ops
}

func entriesOf(list *order.List, operation string) []types.Entry {
	var out []types.Entry
	for _, e := range list.Entries() {
		if e.Operation == operation {
			out = append(out, e)
		}
	}
	return out
}

func positionsOf(list *order.List, operation string) []int {
	var out []int
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Operation == operation {
			out = append(out, i)
		}
	}
	return out
}

func requestOperations(requests []Request) []string {
	seen := make(map[string]bool)
	var ops []string
	for _, r := range requests {
		if !seen[r.Operation] {
			seen[r.Operation] = true
			ops = append(ops, r.Operation)
		}
	}
	return ops
}

func requestsOf(requests []Request, operation string) []Request {
	var out []Request
	for _, r := range requests {
		if r.Operation == operation {
			out = append(out, r)
		}
	}
	return out
}

func moduleNameExists(doc *pipeline.Document, operation, name string) bool {
	for _, m := range doc.Modules {
		if m.Operation == operation && m.Name == name {
			return true
		}
	}
	return false
}

func maxInstance(doc *pipeline.Document, operation string) int {
	max := doc.Order.MaxInstance(operation)
	for _, m := range doc.Modules {
		if m.Operation == operation && m.Instance > max {
			max = m.Instance
		}
	}
	return max
}
