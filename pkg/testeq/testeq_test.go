package testeq_test

import (
	"fmt"
	"testing"

	"github.com/graph-guard/chainmap/pkg/container/gomap"
	"github.com/graph-guard/chainmap/pkg/testeq"
	"github.com/stretchr/testify/require"
)

func TestMapsEqual(t *testing.T) {
	w := new(TestWriter)
	exp := map[string]string{"a": "1", "b": "2"}
	act := map[string]string{"b": "2", "a": "1"}
	ok := testeq.Maps(w, "key", exp, act, compareStrings, stringify)
	require.Len(t, w.Writes, 0)
	require.True(t, ok)
}

func TestMapsDifferences(t *testing.T) {
	w := new(TestWriter)
	exp := map[string]string{"a": "1", "b": "2", "c": "3"}
	act := map[string]string{"a": "y", "c": "3", "d": "4", "e": "5"}
	ok := testeq.Maps(w, "key", exp, act, compareStrings, stringify)
	require.Equal(t, []string{
		"mismatching key a: not equal",
		"missing key b (2)",
		"unexpected key d (4)",
		"unexpected key e (5)",
	}, w.Writes)
	require.False(t, ok)
}

func TestMapperEqual(t *testing.T) {
	w := new(TestWriter)
	m := gomap.New[int](0, nil)
	m.Set("a", 1)
	m.Set("b", 2)
	ok := testeq.Mapper(w, map[string]int{"a": 1, "b": 2}, m)
	require.Len(t, w.Writes, 0)
	require.True(t, ok)
}

func TestMapperDifferences(t *testing.T) {
	w := new(TestWriter)
	m := gomap.New[int](0, nil)
	m.Set("a", 1)
	m.Set("c", 3)
	ok := testeq.Mapper(w, map[string]int{"a": 10, "b": 2}, m)
	require.Equal(t, []string{
		"Get(\"a\"): expected (10, true), got (1, true)",
		"Get(\"b\"): expected (2, true), got (0, false)",
		"Contains(\"b\"): expected true",
		"mismatching key a: expected 10, got 1",
		"missing key b (2)",
		"unexpected key c (3)",
	}, w.Writes)
	require.False(t, ok)
}

func TestMapperLength(t *testing.T) {
	w := new(TestWriter)
	m := gomap.New[int](0, nil)
	m.Set("a", 1)
	ok := testeq.Mapper(w, map[string]int{}, m)
	require.Equal(t, []string{
		"expected length 0, got 1",
		"unexpected key a (1)",
	}, w.Writes)
	require.False(t, ok)
}

func compareStrings(expected, actual string) string {
	if expected != actual {
		return "not equal"
	}
	return ""
}

func stringify(s string) string { return s }

type TestWriter struct{ Writes []string }

func (w *TestWriter) Helper() {}

func (w *TestWriter) Errorf(format string, v ...any) {
	w.Writes = append(w.Writes, fmt.Sprintf(format, v...))
}
