package config_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/graph-guard/chainmap/pkg/config"
	"github.com/graph-guard/chainmap/pkg/container/chainmap"
	"github.com/phuslu/log"
	"github.com/stretchr/testify/require"
)

const ConfigFileName = "config.yml"

func read(t *testing.T, contents string) (*config.Config, error) {
	t.Helper()
	return config.Read(fstest.MapFS{
		ConfigFileName: &fstest.MapFile{Data: []byte(contents)},
	}, ConfigFileName)
}

func TestRead(t *testing.T) {
	c, err := read(t, lines(
		`initial-buckets: 31`,
		`hasher: xxh3`,
		`seed: 7`,
		`log-level: debug`,
	))
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		FilePath:       ConfigFileName,
		InitialBuckets: 31,
		HasherName:     chainmap.HasherNameXXH3,
		Seed:           7,
		Hasher:         &chainmap.HasherXXH3{Seed: 7},
		LogLevel:       log.DebugLevel,
	}, c)
}

func TestReadDefaults(t *testing.T) {
	for _, td := range []struct {
		name     string
		contents string
	}{
		{"empty", ""},
		{"hasher_only", lines(`hasher: murmur2`)},
	} {
		t.Run(td.name, func(t *testing.T) {
			c, err := read(t, td.contents)
			require.NoError(t, err)
			expect := config.Default()
			expect.FilePath = ConfigFileName
			require.Equal(t, expect, c)
			require.Equal(t, chainmap.InitialBuckets, c.InitialBuckets)
			require.Equal(t, chainmap.HasherMurmur2{}, c.Hasher)
			require.Equal(t, log.InfoLevel, c.LogLevel)
		})
	}
}

func TestReadLogLevelCase(t *testing.T) {
	c, err := read(t, lines(`log-level: WARN`))
	require.NoError(t, err)
	require.Equal(t, log.WarnLevel, c.LogLevel)
}

func TestErrMissing(t *testing.T) {
	c, err := config.Read(fstest.MapFS{}, ConfigFileName)
	require.Equal(t, &config.ErrorMissing{FilePath: ConfigFileName}, err)
	require.Equal(t, "missing config.yml", err.Error())
	require.Nil(t, c)
}

func TestErrIllegal(t *testing.T) {
	for _, td := range []struct {
		name     string
		contents string
		feature  string
		message  string
	}{
		{"syntax", lines("not a valid config"), "syntax", ""},
		{"unknown_field", lines(`buckets: 3`), "syntax", ""},
		{"initial_buckets_type", lines(`initial-buckets: many`), "syntax", ""},
		{
			"initial_buckets_zero",
			lines(`initial-buckets: 0`),
			"initial-buckets", "must be greater 0, got 0",
		},
		{
			"initial_buckets_negative",
			lines(`initial-buckets: -4`),
			"initial-buckets", "must be greater 0, got -4",
		},
		{
			"hasher",
			lines(`hasher: sha256`),
			"hasher", `unknown hasher "sha256"`,
		},
		{
			"log_level",
			lines(`log-level: verbose`),
			"log-level", `unknown log level "verbose"`,
		},
	} {
		t.Run(td.name, func(t *testing.T) {
			c, err := read(t, td.contents)
			require.Nil(t, c)
			require.IsType(t, &config.ErrorIllegal{}, err)
			e := err.(*config.ErrorIllegal)
			require.Equal(t, ConfigFileName, e.FilePath)
			require.Equal(t, td.feature, e.Feature)
			if td.message != "" {
				require.Equal(t, td.message, e.Message)
				require.Equal(t,
					"illegal "+td.feature+" in "+ConfigFileName+": "+td.message,
					err.Error(),
				)
			}
		})
	}
}

func TestMapOptions(t *testing.T) {
	c, err := read(t, lines(`initial-buckets: 5`, `hasher: xxh64`))
	require.NoError(t, err)
	m := chainmap.New(config.MapOptions[int](c, nil)...)
	require.Equal(t, 5, m.Buckets())
	m.Set("a", 1)
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	l := &log.Logger{Level: log.DebugLevel, Writer: &log.IOWriter{Writer: new(strings.Builder)}}
	require.Len(t, config.MapOptions[int](c, l), 3)
}

func lines(lines ...string) string {
	var b strings.Builder
	for i := range lines {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	return b.String()
}
