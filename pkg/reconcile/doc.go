// Package reconcile keeps an order list's set of entries aligned with the
// live module instances of a document, which can drift apart when modules
// are duplicated, renamed or deleted, or when a style describes a different
// instance layout than the document currently has.
//
// The extract/merge pair preserves instance identities across a whole-list
// order switch: extract remembers every multi-instance operation's layout,
// merge re-applies it onto a fresh canonical list. Merge is deterministic
// and idempotent — replacement proceeds in forward list order, keeps the
// destination's positions, and only re-tags instances or adds/removes
// entries at the boundary.
package reconcile
