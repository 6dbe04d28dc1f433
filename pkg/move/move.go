package move

import (
	"github.com/rs/zerolog"

	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/rules"
)

// Engine validates and executes interactive reorders against one document
// at a time. It holds no per-document state and may be reused.
type Engine struct {
	catalog *rules.Catalog
	logger  zerolog.Logger
}

// NewEngine creates a movement engine bound to a rule catalog.
func NewEngine(catalog *rules.Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		logger:  logging.GetLogger("move.engine"),
	}
}

// CanMoveBefore reports whether mod can be re-inserted immediately before
// target. A mod already in place is feasible with zero effect.
func (e *Engine) CanMoveBefore(doc *pipeline.Document, mod, target *pipeline.Module) bool {
	if mod == nil || target == nil {
		return false
	}
	if e.catalog.IsFence(mod) {
		e.logger.Debug().
			Str("module", mod.String()).
			Msg("move rejected, module is a fence")
		return false
	}
	if mod.Rank == target.Rank {
		// Equal ranks mean rank assignment is corrupted upstream
		e.logger.Error().
			Str("module", mod.String()).
			Str("target", target.String()).
			Int("rank", mod.Rank).
			Msg("move rejected, equal ranks")
		return false
	}

	modPos, ok := doc.Order.Find(mod.Operation, mod.Instance)
	if !ok {
		return false
	}
	targetPos, ok := doc.Order.Find(target.Operation, target.Instance)
	if !ok {
		return false
	}

	return e.canMoveToIndex(doc, mod, modPos, targetPos)
}

// MoveBefore unlinks mod's entry and re-inserts it immediately before
// target's entry, then renumbers and re-syncs live module ranks. Reports
// whether a structural change occurred; infeasible or not-found moves
// return false without mutating anything.
func (e *Engine) MoveBefore(doc *pipeline.Document, mod, target *pipeline.Module) bool {
	if mod == nil || target == nil {
		return false
	}
	if !e.CanMoveBefore(doc, mod, target) {
		return false
	}

	modPos, ok := doc.Order.Find(mod.Operation, mod.Instance)
	if !ok {
		return false
	}
	targetPos, ok := doc.Order.Find(target.Operation, target.Instance)
	if !ok {
		return false
	}

	return e.apply(doc, mod, modPos, targetPos)
}

// MoveAfter re-inserts mod immediately after targetPrev: before the entry
// that follows it, or at the list end when targetPrev is last.
func (e *Engine) MoveAfter(doc *pipeline.Document, mod, targetPrev *pipeline.Module) bool {
	if mod == nil || targetPrev == nil {
		return false
	}
	if e.catalog.IsFence(mod) {
		e.logger.Debug().
			Str("module", mod.String()).
			Msg("move rejected, module is a fence")
		return false
	}
	if mod.Rank == targetPrev.Rank {
		e.logger.Error().
			Str("module", mod.String()).
			Str("target", targetPrev.String()).
			Int("rank", mod.Rank).
			Msg("move rejected, equal ranks")
		return false
	}

	modPos, ok := doc.Order.Find(mod.Operation, mod.Instance)
	if !ok {
		return false
	}
	prevPos, ok := doc.Order.Find(targetPrev.Operation, targetPrev.Instance)
	if !ok {
		return false
	}
	insertPos := prevPos + 1

	if !e.canMoveToIndex(doc, mod, modPos, insertPos) {
		return false
	}
	return e.apply(doc, mod, modPos, insertPos)
}

// canMoveToIndex checks the walk between mod's position and the insertion
// index (the index of the entry mod would land in front of; Len() appends).
// Forward, the landing entry stays behind the mover and is not crossed;
// backward, the mover ends up ahead of it, so it is part of the walk.
func (e *Engine) canMoveToIndex(doc *pipeline.Document, mod *pipeline.Module, modPos, insertPos int) bool {
	var lo, hi int
	forward := modPos < insertPos
	if forward {
		lo, hi = modPos+1, insertPos-1
	} else {
		lo, hi = insertPos, modPos-1
	}

	for i := lo; i <= hi; i++ {
		crossed := doc.Order.At(i)
		if crossedModule := doc.Module(crossed.Operation, crossed.Instance); e.catalog.IsFence(crossedModule) {
			e.logger.Debug().
				Str("module", mod.String()).
				Str("fence", crossedModule.String()).
				Msg("move rejected, fence in the way")
			return false
		}
		if e.catalog.Violates(mod.Operation, crossed.Operation, forward) {
			e.logger.Debug().
				Str("module", mod.String()).
				Str("crossed", crossed.Operation).
				Bool("forward", forward).
				Msg("move rejected, rule violation")
			return false
		}
	}
	return true
}

// apply performs the unlink/re-insert and the post-move renumber and rank
// sync. Returns false when the move lands the entry where it already is.
func (e *Engine) apply(doc *pipeline.Document, mod *pipeline.Module, modPos, insertPos int) bool {
	// Landing in front of the entry it precedes already, or in front of
	// itself, changes nothing.
	if insertPos == modPos || insertPos == modPos+1 {
		return false
	}

	entry := doc.Order.At(modPos)
	doc.Order.RemoveAt(modPos)
	if insertPos > modPos {
		insertPos--
	}
	doc.Order.InsertAt(insertPos, entry)
	pipeline.SyncModuleRanks(doc)

	e.logger.Debug().
		Str("module", mod.String()).
		Int("rank", mod.Rank).
		Msg("module moved")
	return true
}
