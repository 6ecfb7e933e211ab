package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/graph-guard/chainmap/pkg/cli"
	"github.com/graph-guard/chainmap/pkg/config"
	"github.com/graph-guard/chainmap/pkg/container/chainmap"
	yaml "gopkg.in/yaml.v3"
)

// load reads a YAML mapping of keys to values into a map
// and prints its statistics.
func load(w io.Writer, c cli.CommandLoad) bool {
	conf := ReadConfig(w, c.ConfigPath)
	if conf == nil {
		return false
	}
	l := newLogger(os.Stderr, conf, "load")

	f, err := os.Open(c.FilePath)
	if err != nil {
		fmt.Fprintf(w, "opening input: %s\n", err)
		return false
	}
	defer f.Close()

	m := chainmap.New(config.MapOptions[string](conf, l)...)
	if err := readPairs(f, m.Set); err != nil {
		fmt.Fprintf(w, "reading %s: %s\n", c.FilePath, err)
		return false
	}
	l.Info().
		Str("file", c.FilePath).
		Int("entries", m.Len()).
		Msg("loaded")

	writeStats(w, conf, m.Stats())
	return true
}

// readPairs decodes a YAML mapping of scalars calling set
// for every pair in document order.
func readPairs(r io.Reader, set func(key, value string)) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping at line %d", doc.Line)
	}
	n := doc.Content[0]
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf(
				"expected scalar key and value at line %d", k.Line,
			)
		}
		set(k.Value, v.Value)
	}
	return nil
}

func writeStats(w io.Writer, conf *config.Config, s chainmap.Stats) {
	fmt.Fprintf(w, "hasher: %s\n", conf.HasherName)
	fmt.Fprintf(w, "entries: %s\n", humanize.Comma(int64(s.Len)))
	fmt.Fprintf(w, "buckets: %s (%s occupied)\n",
		humanize.Comma(int64(s.Buckets)),
		humanize.Comma(int64(s.Occupied)))
	fmt.Fprintf(w, "longest chain: %d\n", s.LongestChain)
	fmt.Fprintf(w, "resizes: %d\n", s.Resizes)
}
