package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const EnvConfig = "CHAINMAP_CONFIG"
const DefaultBenchN = 100_000

// Command can be any of:
//
//	CommandLoad
//	CommandBench
type Command any

type CommandLoad struct {
	ConfigPath string
	FilePath   string
}

type CommandBench struct {
	ConfigPath string
	N          int
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "chainmap"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("chainmap", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() { printUsage(w, executableName) }

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	configFlagUsage := fm("-config <path>: defines the configuration file path "+
		"(default: $%s, built-in defaults if unset)", EnvConfig)

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	switch args[1] {
	case "load":
		c := CommandLoad{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s load [-config <path>] <file>", executableName),
				"",
				"flags:",
				configFlagUsage,
			)
		}
		flags.StringVar(&c.ConfigPath, "config", os.Getenv(EnvConfig), "")
		if !parseFlags() {
			return nil
		}
		if flags.NArg() != 1 {
			writeLines(w, "expected exactly one input file")
			flags.Usage()
			return nil
		}
		c.FilePath = flags.Arg(0)
		cmd = c

	case "bench":
		c := CommandBench{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s bench [-config <path>] [-n <count>]", executableName),
				"",
				"flags:",
				configFlagUsage,
				fm("-n <count>: number of keys (default: %d)", DefaultBenchN),
			)
		}
		flags.StringVar(&c.ConfigPath, "config", os.Getenv(EnvConfig), "")
		flags.IntVar(&c.N, "n", DefaultBenchN, "")
		if !parseFlags() {
			return nil
		}
		if c.N < 1 {
			writeLines(w, fm("-n must be greater 0, got %d", c.N))
			flags.Usage()
			return nil
		}
		cmd = c

	case "help":
		PrintHelp(w)
		return nil

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func printUsage(w io.Writer, executableName string) {
	writeLines(w,
		fmt.Sprintf("usage: %s <command> [flags]", executableName),
		"",
		"commands available:",
		" load - loads a YAML key-value file and prints map statistics",
		" bench - inserts, reads and deletes random keys and prints timings",
		" help - prints this help",
	)
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer) {
	printUsage(w, "chainmap")
}
