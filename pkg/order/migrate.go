package order

import (
	"sort"

	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// FloatRanked is one entry of a legacy float-ranked list, as found in
// documents persisted before ranks became integers.
type FloatRanked struct {
	Operation string
	Instance  int
	Rank      float64
}

// ImportLegacyFloatOrder converts a legacy float-ranked list into a fresh
// integer-ranked one: a single stable sort by the float value, then integer
// ranks from Renumber. The float values are discarded; this is a one-time
// migration, not a dual representation.
func ImportLegacyFloatOrder(legacy []FloatRanked) *List {
	sorted := make([]FloatRanked, len(legacy))
	copy(sorted, legacy)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})

	l := &List{entries: make([]types.Entry, 0, len(sorted))}
	for _, f := range sorted {
		l.entries = append(l.entries, types.Entry{Operation: f.Operation, Instance: f.Instance})
	}
	l.Renumber()

	logger := logging.GetLogger("order.migrate")
	logger.Info().Int("entries", l.Len()).Msg("imported legacy float-ranked order")
	return l
}
