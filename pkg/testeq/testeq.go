// Package testeq provides test helpers reporting every
// difference between expected and actual map contents
// in a deterministic order.
package testeq

import (
	"fmt"

	"github.com/graph-guard/chainmap/pkg/container"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Writer interface {
	Helper()
	Errorf(fmt string, v ...any)
}

// Maps reports mismatching, missing and unexpected keys
// of actual compared to expected ordered by key.
func Maps[K constraints.Ordered, V any](
	writer Writer,
	title string,
	expected, actual map[K]V,
	check func(expected, actual V) (errMsg string),
	stringify func(V) string,
) (ok bool) {
	writer.Helper()
	ok = true

	expKeys := maps.Keys(expected)
	slices.Sort(expKeys)
	for _, k := range expKeys {
		ev := expected[k]
		av, found := actual[k]
		if !found {
			writer.Errorf("missing %s %v (%s)", title, k, stringify(ev))
			ok = false
			continue
		}
		if msg := check(ev, av); msg != "" {
			writer.Errorf("mismatching %s %v: %s", title, k, msg)
			ok = false
		}
	}

	actKeys := maps.Keys(actual)
	slices.Sort(actKeys)
	for _, k := range actKeys {
		if _, found := expected[k]; !found {
			writer.Errorf("unexpected %s %v (%s)", title, k, stringify(actual[k]))
			ok = false
		}
	}
	return ok
}

// Mapper checks that m holds exactly the pairs of expected.
// Besides comparing the visited pairs it verifies that Len,
// Get and Contains agree with them and that no key
// is visited twice.
func Mapper[V comparable, M container.Mapper[V]](
	writer Writer,
	expected map[string]V,
	m M,
) (ok bool) {
	writer.Helper()
	ok = true

	actual := make(map[string]V, m.Len())
	m.Visit(func(key string, value V) bool {
		if _, dup := actual[key]; dup {
			writer.Errorf("key %q visited twice", key)
			ok = false
		}
		actual[key] = value
		return true
	})

	if m.Len() != len(expected) {
		writer.Errorf("expected length %d, got %d", len(expected), m.Len())
		ok = false
	}

	keys := maps.Keys(expected)
	slices.Sort(keys)
	for _, k := range keys {
		v, found := m.Get(k)
		if !found || v != expected[k] {
			writer.Errorf("Get(%q): expected (%v, true), got (%v, %t)",
				k, expected[k], v, found)
			ok = false
		}
		if !m.Contains(k) {
			writer.Errorf("Contains(%q): expected true", k)
			ok = false
		}
	}

	return Maps(writer, "key", expected, actual,
		func(e, a V) string {
			if e != a {
				return fmt.Sprintf("expected %v, got %v", e, a)
			}
			return ""
		},
		func(v V) string { return fmt.Sprintf("%v", v) },
	) && ok
}
