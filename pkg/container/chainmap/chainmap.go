// Package chainmap provides a hash map of string keys
// using separate chaining over singly linked lists.
//
// The map starts with 13 buckets and is rehashed eagerly and entirely
// whenever its load factor crosses a threshold: the number of buckets
// is doubled before an insertion bringing the number of entries
// to the number of buckets and halved before a deletion leaving
// the load factor at or below 0.1. Load factors are computed using
// integer division.
//
// By default keys are hashed using MurmurHash2 (see package murmur2),
// any custom Hasher can be provided during initialization.
//
// WARNING: Map and Iterator are not safe for concurrent use.
// Concurrent mutation is undefined behavior, callers must synchronize
// access externally.
package chainmap

import (
	"github.com/graph-guard/chainmap/pkg/container/list"
	"github.com/phuslu/log"
)

// InitialBuckets is the default number of buckets of a new map.
const InitialBuckets = 13

const (
	growFactor    = 2
	shrinkDivisor = 2
	growRatio     = 1
	shrinkRatio   = 0.1
)

// Map is a string keyed hash map.
type Map[V any] struct {
	buckets []*list.List[V]
	count   int
	initial int
	resizes int
	destroy func(V)
	hasher  Hasher
	log     *log.Logger
}

// Option configures a Map during initialization.
type Option[V any] func(*Map[V])

// WithDestructor makes the map call fn for every value it releases:
// overwritten values and values remaining when the map is destroyed.
func WithDestructor[V any](fn func(V)) Option[V] {
	return func(m *Map[V]) { m.destroy = fn }
}

// WithHasher replaces the default MurmurHash2 hasher.
func WithHasher[V any](h Hasher) Option[V] {
	return func(m *Map[V]) {
		if h != nil {
			m.hasher = h
		}
	}
}

// WithLogger makes the map log resizes at debug level.
func WithLogger[V any](l *log.Logger) Option[V] {
	return func(m *Map[V]) { m.log = l }
}

// WithInitialBuckets overrides InitialBuckets.
// Values smaller than 1 are ignored.
func WithInitialBuckets[V any](n int) Option[V] {
	return func(m *Map[V]) {
		if n > 0 {
			m.initial = n
		}
	}
}

// New creates a new empty map.
func New[V any](opts ...Option[V]) *Map[V] {
	m := &Map[V]{
		initial: InitialBuckets,
		hasher:  HasherMurmur2{},
	}
	for _, o := range opts {
		o(m)
	}
	m.buckets = makeBuckets[V](m.initial)
	return m
}

func makeBuckets[V any](n int) []*list.List[V] {
	b := make([]*list.List[V], n)
	for i := range b {
		b[i] = list.New[V]()
	}
	return b
}

func (m *Map[V]) bucket(key string) *list.List[V] {
	return m.buckets[index(m.hasher.Hash(key), len(m.buckets))]
}

// Set associates key with value overwriting any existing association.
// The overwritten value is passed to the destructor if any.
func (m *Map[V]) Set(key string, value V) {
	if (m.count+1)/len(m.buckets) >= growRatio {
		m.resize(len(m.buckets) * growFactor)
	}
	l := m.bucket(key)
	if old, ok := l.Replace(key, value); ok {
		if m.destroy != nil {
			m.destroy(old)
		}
		return
	}
	l.PushBack(key, value)
	m.count++
}

// Delete removes key and returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
// The removed value is handed back to the caller
// and never passed to the destructor.
//
// The shrink check precedes the lookup, deleting a key that doesn't
// exist can still shrink the map.
func (m *Map[V]) Delete(key string) (value V, ok bool) {
	if m.count > 0 && float64((m.count-1)/len(m.buckets)) <= shrinkRatio {
		m.resize(len(m.buckets) / shrinkDivisor)
	}
	it := list.NewIterator(m.bucket(key))
	for ; !it.AtEnd(); it.Next() {
		if k, _ := it.Key(); k == key {
			value, _ = it.Remove()
			m.count--
			return value, true
		}
	}
	return value, false
}

// Get returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (m *Map[V]) Get(key string) (value V, ok bool) {
	return m.bucket(key).Find(key)
}

// Contains returns true if key exists.
func (m *Map[V]) Contains(key string) bool {
	_, ok := m.bucket(key).Find(key)
	return ok
}

// Len returns the number of stored key-value pairs.
func (m *Map[V]) Len() int { return m.count }

// Buckets returns the current number of buckets.
func (m *Map[V]) Buckets() int { return len(m.buckets) }

// Visit calls fn for every stored key-value pair in bucket order.
// Returns immediately if fn returns false.
func (m *Map[V]) Visit(fn func(key string, value V) bool) {
	stop := false
	for _, l := range m.buckets {
		l.Visit(func(k string, v V) bool {
			if !fn(k, v) {
				stop = true
			}
			return !stop
		})
		if stop {
			return
		}
	}
}

// Destroy removes all key-value pairs passing every value
// to the destructor if any. The map is reset to its initial
// number of buckets and remains usable.
func (m *Map[V]) Destroy() {
	for _, l := range m.buckets {
		l.Destroy(m.destroy)
	}
	m.buckets = makeBuckets[V](m.initial)
	m.count, m.resizes = 0, 0
}

// resize rehashes all entries into n new buckets.
// Noop if n is 0.
func (m *Map[V]) resize(n int) {
	from := len(m.buckets)
	if n == 0 {
		if m.log != nil {
			m.log.Debug().
				Int("buckets", from).
				Int("entries", m.count).
				Msg("resize skipped")
		}
		return
	}

	b := makeBuckets[V](n)
	for _, l := range m.buckets {
		for {
			k, v, ok := l.Front()
			if !ok {
				break
			}
			b[index(m.hasher.Hash(k), n)].PushBack(k, v)
			l.RemoveFront()
		}
	}
	m.buckets = b
	m.resizes++

	if m.log != nil {
		m.log.Debug().
			Int("from", from).
			Int("to", n).
			Int("entries", m.count).
			Msg("resized")
	}
}

// Stats describes the bucket layout of a map.
type Stats struct {
	Len          int
	Buckets      int
	Occupied     int
	LongestChain int
	Resizes      int
}

// Stats returns the current bucket layout statistics.
func (m *Map[V]) Stats() Stats {
	s := Stats{
		Len:     m.count,
		Buckets: len(m.buckets),
		Resizes: m.resizes,
	}
	for _, l := range m.buckets {
		if l.IsEmpty() {
			continue
		}
		s.Occupied++
		if l.Len() > s.LongestChain {
			s.LongestChain = l.Len()
		}
	}
	return s
}
