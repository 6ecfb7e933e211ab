package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graph-guard/chainmap/pkg/cli"
	"github.com/graph-guard/chainmap/pkg/config"
	"github.com/phuslu/log"
)

func main() {
	w := os.Stdout
	var ok bool
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandLoad:
		ok = load(w, c)
	case cli.CommandBench:
		ok = bench(w, c)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
		return
	}
	if !ok {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, conf *config.Config, component string) *log.Logger {
	l := &log.Logger{
		Level:  conf.LogLevel,
		Writer: &log.IOWriter{Writer: w},
	}
	l.Context = log.NewContext(nil).Str("component", component).Value()
	return l
}
