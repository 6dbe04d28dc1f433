package rules

import (
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// defaultRules is the process-wide precedence catalog. Ordered pairs:
// no entry of the second operation may sit ahead of an entry of the first.
var defaultRules = []types.Rule{
	{Before: "rawprepare", After: "invert"},
	{Before: "invert", After: "temperature"},
	{Before: "temperature", After: "highlights"},
	{Before: "highlights", After: "demosaic"},
	{Before: "demosaic", After: "colorin"},
	{Before: "colorin", After: "colorout"},
	{Before: "colorout", After: "gamma"},
	{Before: "flip", After: "crop"},
	{Before: "crop", After: "borders"},
}

// Catalog is the immutable rule set plus the fence predicate.
type Catalog struct {
	rules   []types.Rule
	handles map[string]uint16
	pairs   map[uint32]struct{}
}

// DefaultCatalog builds the catalog from the built-in rule table.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultRules)
}

// NewCatalog builds a catalog from an explicit rule list. Only tests and
// fixtures should need anything but DefaultCatalog.
func NewCatalog(ruleList []types.Rule) *Catalog {
	c := &Catalog{
		rules:   make([]types.Rule, len(ruleList)),
		handles: make(map[string]uint16),
		pairs:   make(map[uint32]struct{}, len(ruleList)),
	}
	copy(c.rules, ruleList)
	for _, r := range c.rules {
		c.pairs[pairKey(c.intern(r.Before), c.intern(r.After))] = struct{}{}
	}
	return c
}

func (c *Catalog) intern(operation string) uint16 {
	if h, ok := c.handles[operation]; ok {
		return h
	}
	h := uint16(len(c.handles) + 1)
	c.handles[operation] = h
	return h
}

func pairKey(before, after uint16) uint32 {
	return uint32(before)<<16 | uint32(after)
}

// Rules returns the catalog in declaration order. The slice is a copy.
func (c *Catalog) Rules() []types.Rule {
	out := make([]types.Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Forbids reports whether a rule (before, after) exists for the exact pair.
func (c *Catalog) Forbids(before, after string) bool {
	hb, ok := c.handles[before]
	if !ok {
		return false
	}
	ha, ok := c.handles[after]
	if !ok {
		return false
	}
	_, found := c.pairs[pairKey(hb, ha)]
	return found
}

// Violates reports whether moving moverOp across crossedOp breaks a rule.
// A forward move puts the mover after the crossed entry, so a rule
// (mover, crossed) forbids it; a backward move puts the mover before the
// crossed entry, so (crossed, mover) forbids it.
func (c *Catalog) Violates(moverOp, crossedOp string, forward bool) bool {
	if forward {
		return c.Forbids(moverOp, crossedOp)
	}
	return c.Forbids(crossedOp, moverOp)
}

// IsFence delegates to the module's declared capability flag.
func (c *Catalog) IsFence(m *pipeline.Module) bool {
	return m != nil && m.Fence
}
