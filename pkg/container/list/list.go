// Package list provides a singly linked list of string keyed values
// together with an external iterator supporting insertion and removal
// at the cursor position.
//
// Every node owns a private copy of its key, mutating the caller's
// key buffer after insertion never affects the list.
//
// WARNING: List and Iterator are not safe for concurrent use.
// Callers must synchronize access externally.
package list

import "strings"

type node[V any] struct {
	Key   string
	Value V
	Next  *node[V]
}

func newNode[V any](key string, value V) *node[V] {
	return &node[V]{Key: strings.Clone(key), Value: value}
}

// List is a singly linked list of key-value pairs.
type List[V any] struct {
	len   int
	first *node[V]
	last  *node[V]
}

// New creates a new empty list.
func New[V any]() *List[V] { return &List[V]{} }

// IsEmpty returns true if the list holds no elements.
func (l *List[V]) IsEmpty() bool { return l.len == 0 }

// Len returns the number of elements.
func (l *List[V]) Len() int { return l.len }

// PushFront inserts a new element at the front of the list.
func (l *List[V]) PushFront(key string, value V) {
	n := newNode(key, value)
	n.Next = l.first
	l.first = n
	if l.len == 0 {
		l.last = n
	}
	l.len++
}

// PushBack inserts a new element at the back of the list.
func (l *List[V]) PushBack(key string, value V) {
	n := newNode(key, value)
	if l.len == 0 {
		l.first = n
	} else {
		l.last.Next = n
	}
	l.last = n
	l.len++
}

// Front returns the key and value of the first element,
// otherwise returns ok=false if the list is empty.
func (l *List[V]) Front() (key string, value V, ok bool) {
	if l.len == 0 {
		return "", value, false
	}
	return l.first.Key, l.first.Value, true
}

// RemoveFront detaches the first element and returns its value,
// otherwise returns (zeroValue, false) if the list is empty.
func (l *List[V]) RemoveFront() (value V, ok bool) {
	if l.len == 0 {
		return value, false
	}
	n := l.first
	l.first = n.Next
	l.len--
	if l.len == 0 {
		l.last = nil
	}
	n.Next = nil
	return n.Value, true
}

// Find returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (l *List[V]) Find(key string) (value V, ok bool) {
	for n := l.first; n != nil; n = n.Next {
		if n.Key == key {
			return n.Value, true
		}
	}
	return value, false
}

// Replace associates key with value if key exists and returns
// the previous value, otherwise it's a noop returning ok=false.
func (l *List[V]) Replace(key string, value V) (old V, ok bool) {
	for n := l.first; n != nil; n = n.Next {
		if n.Key == key {
			old, n.Value = n.Value, value
			return old, true
		}
	}
	return old, false
}

// Visit calls fn for every element front to back.
// Returns immediately if fn returns false.
func (l *List[V]) Visit(fn func(key string, value V) bool) {
	for n := l.first; n != nil; n = n.Next {
		if !fn(n.Key, n.Value) {
			return
		}
	}
}

// Destroy removes all elements calling destroy for every value
// unless destroy is nil.
func (l *List[V]) Destroy(destroy func(V)) {
	for l.len > 0 {
		v, _ := l.RemoveFront()
		if destroy != nil {
			destroy(v)
		}
	}
}
