// Package config reads the YAML configuration
// controlling the tuning, hashing and logging of chainmap maps.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/graph-guard/chainmap/pkg/container/chainmap"
	"github.com/phuslu/log"
	yaml "gopkg.in/yaml.v3"
)

const (
	DefaultInitialBuckets = chainmap.InitialBuckets
	DefaultHasher         = chainmap.HasherNameMurmur2
	DefaultLogLevel       = "info"
)

type Config struct {
	FilePath       string
	InitialBuckets int
	HasherName     string
	Seed           uint64
	Hasher         chainmap.Hasher
	LogLevel       log.Level
}

type fileConfig struct {
	InitialBuckets *int   `yaml:"initial-buckets"`
	Hasher         string `yaml:"hasher"`
	Seed           uint64 `yaml:"seed"`
	LogLevel       string `yaml:"log-level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	h, _ := chainmap.HasherByName(DefaultHasher, 0)
	return &Config{
		InitialBuckets: DefaultInitialBuckets,
		HasherName:     DefaultHasher,
		Hasher:         h,
		LogLevel:       log.ParseLevel(DefaultLogLevel),
	}
}

// Read reads the configuration file at filePath from filesystem.
// Fields absent from the file take their default values.
func Read(filesystem fs.FS, filePath string) (*Config, error) {
	f, err := filesystem.Open(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ErrorMissing{FilePath: filePath}
	} else if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	var c fileConfig
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ErrorIllegal{
			FilePath: filePath,
			Feature:  "syntax",
			Message:  err.Error(),
		}
	}

	conf := Default()
	conf.FilePath = filePath

	if c.InitialBuckets != nil {
		if *c.InitialBuckets < 1 {
			return nil, &ErrorIllegal{
				FilePath: filePath,
				Feature:  "initial-buckets",
				Message:  fmt.Sprintf("must be greater 0, got %d", *c.InitialBuckets),
			}
		}
		conf.InitialBuckets = *c.InitialBuckets
	}

	if c.Hasher != "" {
		h, ok := chainmap.HasherByName(c.Hasher, c.Seed)
		if !ok {
			return nil, &ErrorIllegal{
				FilePath: filePath,
				Feature:  "hasher",
				Message:  fmt.Sprintf("unknown hasher %q", c.Hasher),
			}
		}
		conf.HasherName, conf.Hasher = c.Hasher, h
	}
	conf.Seed = c.Seed

	if c.LogLevel != "" {
		if !isLogLevel(c.LogLevel) {
			return nil, &ErrorIllegal{
				FilePath: filePath,
				Feature:  "log-level",
				Message:  fmt.Sprintf("unknown log level %q", c.LogLevel),
			}
		}
		conf.LogLevel = log.ParseLevel(strings.ToLower(c.LogLevel))
	}

	return conf, nil
}

// MapOptions translates c into chainmap options.
// l is passed to chainmap.WithLogger unless it's nil.
func MapOptions[V any](c *Config, l *log.Logger) []chainmap.Option[V] {
	o := []chainmap.Option[V]{
		chainmap.WithInitialBuckets[V](c.InitialBuckets),
		chainmap.WithHasher[V](c.Hasher),
	}
	if l != nil {
		o = append(o, chainmap.WithLogger[V](l))
	}
	return o
}

func isLogLevel(s string) bool {
	switch strings.ToLower(s) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
		return true
	}
	return false
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("missing ") + len(e.FilePath))
		b.WriteString("missing ")
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.Grow(len("missing ") + len(e.Feature) + len(" in ") + len(e.FilePath))
	b.WriteString("missing ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.Grow(len("illegal ") +
		len(e.Feature) +
		len(" in ") +
		len(e.FilePath) +
		len(": ") +
		len(e.Message))
	b.WriteString("illegal ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
