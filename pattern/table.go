package pattern

import "iter"

// Table is a dense, PatternId-indexed vector, generic over the per-pattern
// value it stores (a Description during extraction; a *Weight, a
// direction-compatibility list or an initial-support tuple inside
// GlobalStats).
type Table[T any] struct {
	entries []T
}

// NewTable wraps entries as a Table; entries becomes owned by the Table.
func NewTable[T any](entries []T) Table[T] {
	return Table[T]{entries: entries}
}

// Len returns the number of patterns in the table.
func (t Table[T]) Len() int {
	return len(t.entries)
}

// Get returns the entry for id.
func (t Table[T]) Get(id ID) T {
	return t.entries[id]
}

// Set stores v for id.
func (t Table[T]) Set(id ID, v T) {
	t.entries[id] = v
}

// Enumerate streams (id, value) pairs in ascending PatternId order.
func (t Table[T]) Enumerate() iter.Seq2[ID, T] {
	return func(yield func(ID, T) bool) {
		for i, v := range t.entries {
			if !yield(ID(i), v) {
				return
			}
		}
	}
}

// Clone returns a Table backed by a fresh copy of the entries slice.
func (t Table[T]) Clone() Table[T] {
	entries := make([]T, len(t.entries))
	copy(entries, t.entries)
	return Table[T]{entries: entries}
}
