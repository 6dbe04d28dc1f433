// Package audit is the read-only consistency pass run after structural
// changes and before persistence: it verifies rank integrity, anchor
// position and rule/fence compliance across a document's live modules, and
// reports violations through the log without fixing them.
//
// The one repair it offers, DeduplicateAdjacentRanks, nudges the safe
// member of an adjacent duplicate-rank pair and is capped: when repeated
// passes cannot clear every duplicate the conflict is reported as
// unresolved instead of retrying forever.
package audit
