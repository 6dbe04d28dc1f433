package order

import (
	"strings"

	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// Kind classifies a list against the built-in canonical tables.
type Kind int

const (
	// KindCanonical means the list's operation sequence (extra instances
	// ignored) matches a built-in table.
	KindCanonical Kind = iota

	// KindCustom means no built-in table matches and a full serialization
	// is needed to persist the list.
	KindCustom
)

// List is the ordered sequence of entries for one document. It exclusively
// owns its entries; use Copy before handing a list to another owner.
type List struct {
	entries []types.Entry
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// NewListFromOperations builds a renumbered list of base instances, one per
// operation, in the given sequence.
func NewListFromOperations(operations []string) *List {
	l := &List{entries: make([]types.Entry, 0, len(operations))}
	for _, op := range operations {
		l.entries = append(l.entries, types.Entry{Operation: op, Instance: types.BaseInstance})
	}
	l.Renumber()
	return l
}

// NewListFromEntries builds a renumbered list from the given entries. The
// entries are copied; the caller's slice is not retained.
func NewListFromEntries(entries []types.Entry) *List {
	l := &List{entries: make([]types.Entry, len(entries))}
	copy(l.entries, entries)
	l.Renumber()
	return l
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// At returns the entry at index i. The index must be in range.
func (l *List) At(i int) types.Entry {
	return l.entries[i]
}

// Entries returns a copy of the entry sequence, safe for the caller to hold
// across mutations.
func (l *List) Entries() []types.Entry {
	out := make([]types.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Find returns the index of the first entry matching (operation, instance).
// types.AnyInstance matches the first entry of the operation regardless of
// instance. A miss returns found=false, never an error.
func (l *List) Find(operation string, instance int) (int, bool) {
	for i, e := range l.entries {
		if e.Same(operation, instance) {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether any entry matches (operation, instance).
func (l *List) Contains(operation string, instance int) bool {
	_, ok := l.Find(operation, instance)
	return ok
}

// RankOf returns the entry's rank, or types.RankUnused on a miss. Callers
// must treat a miss as "considered last / disabled", not abort.
func (l *List) RankOf(operation string, instance int) int {
	if i, ok := l.Find(operation, instance); ok {
		return l.entries[i].Rank
	}
	logger := logging.GetLogger("order.list")
	logger.Debug().
		Str("operation", operation).
		Int("instance", instance).
		Msg("rank lookup miss")
	return types.RankUnused
}

// InsertBefore inserts a fresh base-instance entry for newOperation
// immediately before the first entry matching anchorOperation. A no-op if
// newOperation is already present anywhere in the list, or if the anchor is
// missing. Used to retrofit newly introduced operation types into lists that
// predate them. Reports whether the list changed.
func (l *List) InsertBefore(anchorOperation, newOperation string) bool {
	if l.Contains(newOperation, types.AnyInstance) {
		return false
	}
	at, ok := l.Find(anchorOperation, types.AnyInstance)
	if !ok {
		logger := logging.GetLogger("order.list")
		logger.Debug().
			Str("anchor", anchorOperation).
			Str("operation", newOperation).
			Msg("insert anchor not found")
		return false
	}
	l.InsertAt(at, types.Entry{Operation: newOperation, Instance: types.BaseInstance})
	return true
}

// InsertAt splices an entry in at index i (0 <= i <= Len) and renumbers.
func (l *List) InsertAt(i int, entry types.Entry) {
	l.entries = append(l.entries, types.Entry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = entry
	l.Renumber()
}

// Append adds an entry at the tail and renumbers.
func (l *List) Append(entry types.Entry) {
	l.entries = append(l.entries, entry)
	l.Renumber()
}

// ReplaceAt overwrites the entry at index i, keeping its position, and
// renumbers.
func (l *List) ReplaceAt(i int, entry types.Entry) {
	l.entries[i] = entry
	l.Renumber()
}

// RemoveAt unlinks the entry at index i and renumbers.
func (l *List) RemoveAt(i int) {
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	l.Renumber()
}

// Renumber walks the list front-to-back assigning rank 1, 2, 3, …
// Called after every structural mutation.
func (l *List) Renumber() {
	for i := range l.entries {
		l.entries[i].Rank = i + 1
	}
}

// Copy returns a fully independent deep copy.
func (l *List) Copy() *List {
	out := &List{entries: make([]types.Entry, len(l.entries))}
	copy(out.entries, l.entries)
	return out
}

// Kind compares the list's operation sequence, first instance of each
// operation only, against the built-in canonical tables.
func (l *List) Kind() Kind {
	if _, ok := l.MatchingVersion(); ok {
		return KindCanonical
	}
	return KindCustom
}

// MatchingVersion returns the built-in version whose table matches the
// list's operation sequence, extra instances beyond the first ignored.
func (l *List) MatchingVersion() (types.Version, bool) {
	seq := l.operationSequence()
	for _, v := range []types.Version{types.VersionCurrent, types.VersionLegacy} {
		if equalSequence(seq, CanonicalTable(v)) {
			return v, true
		}
	}
	return types.VersionCustom, false
}

// operationSequence returns the operations in list order, keeping only the
// first occurrence of each.
func (l *List) operationSequence() []string {
	seen := make(map[string]bool, len(l.entries))
	seq := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		if seen[e.Operation] {
			continue
		}
		seen[e.Operation] = true
		seq = append(seq, e.Operation)
	}
	return seq
}

func equalSequence(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HasMultipleInstances reports whether any operation appears more than once.
func (l *List) HasMultipleInstances() bool {
	counts := make(map[string]int, len(l.entries))
	for _, e := range l.entries {
		counts[e.Operation]++
		if counts[e.Operation] > 1 {
			return true
		}
	}
	return false
}

// InstanceCount returns how many entries carry the given operation.
func (l *List) InstanceCount(operation string) int {
	n := 0
	for _, e := range l.entries {
		if e.Operation == operation {
			n++
		}
	}
	return n
}

// MaxInstance returns the highest instance discriminator present for the
// operation, or -1 when the operation is absent.
func (l *List) MaxInstance(operation string) int {
	max := -1
	for _, e := range l.entries {
		if e.Operation == operation && e.Instance > max {
			max = e.Instance
		}
	}
	return max
}

// String renders the list in the text codec's form, for logs and tests.
func (l *List) String() string {
	parts := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ",")
}
