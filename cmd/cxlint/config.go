package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// lintConfig is the decoded cxlint.toml, looked up from the working
// directory upward. All fields are optional; flags win over config.
type lintConfig struct {
	Lint lintSection `toml:"lint"`
}

type lintSection struct {
	Extensions     []string `toml:"extensions"`
	Jobs           int      `toml:"jobs"`
	MaxDiagnostics int      `toml:"max-diagnostics"`
}

func findCxlintToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "cxlint.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadLintConfig(startDir string) (*lintConfig, error) {
	var cfg lintConfig
	path, ok, err := findCxlintToml(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %q", undecoded[0].String(), path)
	}
	return &cfg, nil
}
