package chainmap

import "github.com/graph-guard/chainmap/pkg/container/list"

// Iterator walks every key-value pair of a Map in bucket order.
//
// Mutating the map while iterating invalidates the iterator.
type Iterator[V any] struct {
	m       *Map[V]
	bucket  int
	it      *list.Iterator[V]
	visited int
}

// NewIterator creates a new iterator positioned
// at the first key-value pair of m.
func NewIterator[V any](m *Map[V]) *Iterator[V] {
	i := &Iterator[V]{m: m}
	i.seek(0)
	return i
}

// seek positions the iterator at the head of the first non-empty
// bucket starting from b, or at the last bucket if there's none.
func (i *Iterator[V]) seek(b int) {
	last := len(i.m.buckets) - 1
	for b < last && i.m.buckets[b].IsEmpty() {
		b++
	}
	if b > last {
		b = last
	}
	i.bucket = b
	i.it = list.NewIterator(i.m.buckets[b])
}

// Next advances the iterator to the next key-value pair.
// Returns false if all pairs were already visited.
func (i *Iterator[V]) Next() bool {
	if i.AtEnd() {
		return false
	}
	i.it.Next()
	i.visited++
	if i.it.AtEnd() && !i.AtEnd() {
		i.seek(i.bucket + 1)
	}
	return true
}

// AtEnd returns true once every key-value pair was visited.
// It's true right away for an empty map.
func (i *Iterator[V]) AtEnd() bool { return i.visited == i.m.count }

// Key returns the current key,
// otherwise returns ("", false) if the iterator is at the end.
func (i *Iterator[V]) Key() (string, bool) {
	if i.AtEnd() {
		return "", false
	}
	return i.it.Key()
}

// Value returns the current value,
// otherwise returns (zeroValue, false) if the iterator is at the end.
func (i *Iterator[V]) Value() (value V, ok bool) {
	if i.AtEnd() {
		return value, false
	}
	return i.it.Value()
}
