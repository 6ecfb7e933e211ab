// Package container defines the contract shared by
// the string keyed map implementations.
package container

// Mapper is a string keyed map.
type Mapper[V any] interface {
	Set(key string, value V)
	Get(key string) (value V, ok bool)
	Contains(key string) bool
	Delete(key string) (value V, ok bool)
	Len() int
	Visit(fn func(key string, value V) bool)
	Destroy()
}
