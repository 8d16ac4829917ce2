// Package config loads the pols.toml configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
)

// FileName is looked up at the root of every workspace folder.
const FileName = "pols.toml"

// DefaultIncludeDepth bounds include expansion when no configuration says
// otherwise.
const DefaultIncludeDepth = 3

type Config struct {
	Workspace Workspace `toml:"workspace"`
	Resolve   Resolve   `toml:"resolve"`
	Log       Log       `toml:"log"`
}

type Workspace struct {
	// Exclude holds doublestar globs matched against slash-separated paths
	// relative to the workspace root.
	Exclude []string `toml:"exclude"`
	// Filter is a CEL expression over name, path, ext and size. Files for
	// which it evaluates to false are not loaded.
	Filter string `toml:"filter"`
	Watch  bool   `toml:"watch"`
}

type Resolve struct {
	IncludeDepth int `toml:"include_depth"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no pols.toml exists.
func Default() Config {
	return Config{
		Workspace: Workspace{
			Exclude: []string{"**/.*", "**/.*/**"},
			Watch:   true,
		},
		Resolve: Resolve{IncludeDepth: DefaultIncludeDepth},
		Log:     Log{Level: "info"},
	}
}

// Parse decodes data over the defaults and validates the result. Unknown
// keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown configuration keys:\n%s", strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Find loads root/pols.toml, falling back to Default when the file does not
// exist. The returned path is empty in that case.
func Find(root string) (Config, string, error) {
	path := filepath.Join(root, FileName)
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func (c Config) Validate() error {
	if c.Resolve.IncludeDepth < 1 {
		return fmt.Errorf("resolve.include_depth must be at least 1, got %d", c.Resolve.IncludeDepth)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	for _, pattern := range c.Workspace.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("workspace.exclude: invalid pattern %q", pattern)
		}
	}
	if _, err := NewFileFilter(c.Workspace.Filter); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Excluded reports whether the slash-separated path rel, relative to the
// workspace root, matches one of the exclude globs.
func (w Workspace) Excluded(rel string) bool {
	for _, pattern := range w.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
