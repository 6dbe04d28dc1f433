package audit

import (
	"github.com/rs/zerolog"

	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/order"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/rules"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// maxDedupPasses bounds the adjacent-duplicate repair. The original
// implementation restarted from the list head after every fix and could
// loop on adversarial inputs; a pass cap turns that into a reported
// unresolved conflict.
const maxDedupPasses = 10

// Checker runs the consistency audit for documents against one rule catalog.
type Checker struct {
	catalog *rules.Catalog
	logger  zerolog.Logger
}

// NewChecker creates an auditor bound to a rule catalog.
func NewChecker(catalog *rules.Catalog) *Checker {
	return &Checker{
		catalog: catalog,
		logger:  logging.GetLogger("audit.checker"),
	}
}

// Check verifies the document's live module sequence: terminal anchor in
// place, no enabled module unranked, no disabled base instance unranked,
// strictly increasing ranks, and every catalog rule and fence honored.
// Side-effect free except for logging; reports overall health.
func (c *Checker) Check(doc *pipeline.Document) bool {
	ok := true
	live := doc.ModulesByRank()

	if len(live) == 0 {
		c.logger.Warn().Int64("image", doc.ImageID).Msg("no live modules")
		return false
	}

	if last := live[len(live)-1]; last.Operation != order.LastOperation {
		c.logger.Warn().
			Str("module", last.String()).
			Str("want", order.LastOperation).
			Msg("terminal anchor out of position")
		ok = false
	}

	for _, m := range doc.Modules {
		if m.Rank != types.RankUnused {
			continue
		}
		if m.Enabled {
			c.logger.Warn().Str("module", m.String()).Msg("enabled module has no rank")
			ok = false
		} else if m.Instance == types.BaseInstance {
			c.logger.Warn().Str("module", m.String()).Msg("disabled base instance has no rank")
			ok = false
		}
	}

	for i := 1; i < len(live); i++ {
		if live[i].Rank <= live[i-1].Rank {
			c.logger.Warn().
				Str("module", live[i].String()).
				Int("rank", live[i].Rank).
				Str("previous", live[i-1].String()).
				Int("previousRank", live[i-1].Rank).
				Msg("ranks not strictly increasing")
			ok = false
		}
	}

	if !c.checkRules(live) {
		ok = false
	}
	if !c.checkFences(live) {
		ok = false
	}
	return ok
}

// checkRules re-runs every catalog rule against the live sequence.
func (c *Checker) checkRules(live []*pipeline.Module) bool {
	ok := true
	for _, r := range c.catalog.Rules() {
		for _, before := range live {
			if before.Operation != r.Before {
				continue
			}
			for _, after := range live {
				if after.Operation != r.After {
					continue
				}
				if after.Rank < before.Rank {
					c.logger.Warn().
						Str("rule", r.String()).
						Str("before", before.String()).
						Int("beforeRank", before.Rank).
						Str("after", after.String()).
						Int("afterRank", after.Rank).
						Msg("rule violated")
					ok = false
				}
			}
		}
	}
	return ok
}

// checkFences verifies the fence modules appear in their canonical relative
// order; a fence out of sequence means some reorder crossed it.
func (c *Checker) checkFences(live []*pipeline.Module) bool {
	canonical := order.CanonicalTable(types.VersionCurrent)
	position := make(map[string]int, len(canonical))
	for i, op := range canonical {
		position[op] = i
	}

	ok := true
	prev := -1
	prevName := ""
	for _, m := range live {
		if !c.catalog.IsFence(m) {
			continue
		}
		pos, known := position[m.Operation]
		if !known {
			continue
		}
		if pos < prev {
			c.logger.Warn().
				Str("fence", m.String()).
				Str("previousFence", prevName).
				Msg("fence out of canonical sequence")
			ok = false
		} else {
			prev = pos
			prevName = m.String()
		}
	}
	return ok
}

// DeduplicateAdjacentRanks repairs adjacent live modules sharing a rank by
// nudging whichever of the pair is disabled and not referenced by edit
// history. Best effort: when neither member qualifies, or the pass cap is
// hit, the duplicate is logged and left in place. Reports whether the
// sequence ended up duplicate-free.
func (c *Checker) DeduplicateAdjacentRanks(doc *pipeline.Document) bool {
	history := doc.History
	if history == nil {
		history = pipeline.NoHistory{}
	}

	for pass := 0; pass < maxDedupPasses; pass++ {
		fixed := 0
		unresolved := 0
		live := doc.ModulesByRank()

		for i := 1; i < len(live); i++ {
			a, b := live[i-1], live[i]
			if a.Rank != b.Rank {
				continue
			}
			victim := c.nudgeCandidate(a, b, history)
			if victim == nil {
				c.logger.Warn().
					Str("module", a.String()).
					Str("other", b.String()).
					Int("rank", a.Rank).
					Msg("duplicate rank, neither module safe to renumber")
				unresolved++
				continue
			}
			victim.Rank++
			c.logger.Info().
				Str("module", victim.String()).
				Int("rank", victim.Rank).
				Msg("nudged duplicate rank")
			fixed++
		}

		if fixed == 0 {
			return unresolved == 0
		}
	}

	c.logger.Warn().Int64("image", doc.ImageID).Msg("duplicate ranks unresolved after retry cap")
	return false
}

// nudgeCandidate picks which member of a duplicate pair may be renumbered:
// it must be disabled and absent from edit history.
func (c *Checker) nudgeCandidate(a, b *pipeline.Module, history pipeline.History) *pipeline.Module {
	if !b.Enabled && !history.Contains(b.Operation, b.Instance) {
		return b
	}
	if !a.Enabled && !history.Contains(a.Operation, a.Instance) {
		return a
	}
	return nil
}
