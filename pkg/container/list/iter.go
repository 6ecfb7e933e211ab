package list

// Iterator is an external cursor over a List.
//
// The cursor is a pair of node references: cur and prev.
// prev == cur means the cursor is positioned at the head of the list
// (both are nil when the list is empty), otherwise prev.Next == cur.
// The cursor is at the end of the list when cur is nil.
//
// Mutating the list through anything but the iterator itself
// invalidates the iterator.
type Iterator[V any] struct {
	l    *List[V]
	cur  *node[V]
	prev *node[V]
}

// NewIterator creates a new iterator positioned at the first element of l.
func NewIterator[V any](l *List[V]) *Iterator[V] {
	return &Iterator[V]{l: l, cur: l.first, prev: l.first}
}

// Next advances the cursor to the next element.
// Returns false if the cursor is already at the end.
func (i *Iterator[V]) Next() bool {
	if i.cur == nil {
		return false
	}
	i.prev, i.cur = i.cur, i.cur.Next
	return true
}

// AtEnd returns true if the cursor went past the last element.
func (i *Iterator[V]) AtEnd() bool { return i.cur == nil }

// Key returns the key of the current element,
// otherwise returns ("", false) if the cursor is at the end.
func (i *Iterator[V]) Key() (string, bool) {
	if i.cur == nil {
		return "", false
	}
	return i.cur.Key, true
}

// Value returns the value of the current element,
// otherwise returns (zeroValue, false) if the cursor is at the end.
func (i *Iterator[V]) Value() (value V, ok bool) {
	if i.cur == nil {
		return value, false
	}
	return i.cur.Value, true
}

// Insert inserts a new element at the cursor position.
// The new element becomes the current element and the element
// previously under the cursor, if any, becomes its successor.
func (i *Iterator[V]) Insert(key string, value V) {
	switch {
	case i.l.IsEmpty(), i.prev == i.cur:
		// Cursor at the head
		i.l.PushFront(key, value)
		i.cur, i.prev = i.l.first, i.l.first
	case i.cur == nil:
		// Cursor past the last element
		i.l.PushBack(key, value)
		i.cur = i.prev.Next
	default:
		n := newNode(key, value)
		n.Next = i.cur
		i.prev.Next = n
		i.l.len++
		i.cur = n
	}
}

// Remove detaches the current element and returns its value.
// The cursor moves on to the successor of the removed element.
// Returns (zeroValue, false) if the list is empty
// or the cursor is at the end.
func (i *Iterator[V]) Remove() (value V, ok bool) {
	if i.l.IsEmpty() || i.cur == nil {
		return value, false
	}
	if i.cur == i.prev {
		// Cursor at the head
		value, _ = i.l.RemoveFront()
		i.cur, i.prev = i.l.first, i.l.first
		return value, true
	}

	n := i.cur
	i.prev.Next = n.Next
	if n.Next == nil {
		i.l.last = i.prev
	}
	// prev keeps pointing at the predecessor of the new current element.
	i.cur = n.Next
	i.l.len--
	n.Next = nil
	return n.Value, true
}
