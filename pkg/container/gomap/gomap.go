// package gomap provides a container.Mapper implementation
// backed by Go's native map for reference in tests and benchmarks.
package gomap

type Gomap[V any] struct {
	m       map[string]V
	destroy func(V)
}

// New creates a new map. destroy is called for overwritten values
// and values remaining on Destroy unless it's nil.
func New[V any](capacity int, destroy func(V)) *Gomap[V] {
	return &Gomap[V]{
		m:       make(map[string]V, capacity),
		destroy: destroy,
	}
}

func (m *Gomap[V]) Set(key string, value V) {
	if old, ok := m.m[key]; ok && m.destroy != nil {
		m.destroy(old)
	}
	m.m[key] = value
}

func (m *Gomap[V]) Delete(key string) (v V, ok bool) {
	if v, ok = m.m[key]; ok {
		delete(m.m, key)
	}
	return v, ok
}

func (m *Gomap[V]) Get(key string) (v V, ok bool) {
	v, ok = m.m[key]
	return v, ok
}

func (m *Gomap[V]) Contains(key string) bool {
	_, ok := m.m[key]
	return ok
}

func (m *Gomap[V]) Destroy() {
	if m.destroy != nil {
		for _, v := range m.m {
			m.destroy(v)
		}
	}
	m.m = make(map[string]V)
}

func (m *Gomap[V]) Len() int {
	return len(m.m)
}

func (m *Gomap[V]) Visit(fn func(string, V) bool) {
	for k, v := range m.m {
		if !fn(k, v) {
			break
		}
	}
}
