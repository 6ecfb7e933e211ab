package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/graph-guard/chainmap/pkg/config"
)

// ReadConfig returns the built-in defaults if configPath is empty.
func ReadConfig(w io.Writer, configPath string) *config.Config {
	if configPath == "" {
		return config.Default()
	}
	basePath, fileName := basePathAndFileName(configPath)
	conf, err := config.Read(os.DirFS(basePath), fileName)
	if err != nil {
		fmt.Fprintf(w, "reading config: %s\n", err)
		return nil
	}
	return conf
}

func basePathAndFileName(p string) (basePath, fileName string) {
	return filepath.Dir(p), filepath.Base(p)
}
