package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/graph-guard/chainmap/pkg/cli"
	"github.com/graph-guard/chainmap/pkg/config"
	"github.com/graph-guard/chainmap/pkg/container/chainmap"
)

// bench inserts c.N random UUID keys, reads and iterates them
// and finally deletes them all, printing the duration of each phase.
func bench(w io.Writer, c cli.CommandBench) bool {
	conf := ReadConfig(w, c.ConfigPath)
	if conf == nil {
		return false
	}
	l := newLogger(os.Stderr, conf, "bench")

	keys := make([]string, c.N)
	for i := range keys {
		keys[i] = uuid.NewString()
	}

	m := chainmap.New(config.MapOptions[int](conf, l)...)
	var peak chainmap.Stats
	ok := true

	phase := func(name string, fn func()) {
		start := time.Now()
		fn()
		d := time.Since(start)
		perOp := d / time.Duration(c.N)
		fmt.Fprintf(w, "%-8s %12s %10s/op\n", name, d, perOp)
		l.Info().
			Str("phase", name).
			Dur("duration", d).
			Int("entries", m.Len()).
			Int("buckets", m.Buckets()).
			Msg("done")
	}

	phase("set", func() {
		for i := range keys {
			m.Set(keys[i], i)
		}
		peak = m.Stats()
	})
	phase("get", func() {
		for i := range keys {
			if v, found := m.Get(keys[i]); !found || v != i {
				ok = false
			}
		}
	})
	phase("iterate", func() {
		n := 0
		for it := chainmap.NewIterator(m); !it.AtEnd(); it.Next() {
			n++
		}
		if n != c.N {
			ok = false
		}
	})
	phase("delete", func() {
		for i := range keys {
			if _, found := m.Delete(keys[i]); !found {
				ok = false
			}
		}
	})

	fmt.Fprintf(w, "keys: %s\n", humanize.Comma(int64(c.N)))
	fmt.Fprintln(w, "peak layout:")
	writeStats(w, conf, peak)
	fmt.Fprintf(w, "buckets after delete: %s\n", humanize.Comma(int64(m.Buckets())))
	fmt.Fprintf(w, "resizes total: %d\n", m.Stats().Resizes)

	if !ok || m.Len() != 0 {
		fmt.Fprintln(w, "consistency check failed")
		return false
	}
	return true
}
