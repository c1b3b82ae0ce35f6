// Package config loads loom.toml, the per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"loom/internal/trace"
)

// FileName is the name looked up by Find.
const FileName = "loom.toml"

type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics"`
	Parse       Parse       `toml:"parse"`
	Trace       Trace       `toml:"trace"`
}

type Diagnostics struct {
	Max    int    `toml:"max"`
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type Parse struct {
	Jobs     int    `toml:"jobs"`
	Cache    bool   `toml:"cache"`
	CacheDir string `toml:"cache_dir"`
}

type Trace struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Output string `toml:"output"`
	Format string `toml:"format"` // auto|text|ndjson
}

// Default returns the settings used when no loom.toml exists.
func Default() Config {
	return Config{
		Diagnostics: Diagnostics{Max: 100, Color: "auto", Format: "pretty"},
		Trace:       Trace{Level: "off", Mode: "stream"},
	}
}

// Manifest is a loaded loom.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	meta   toml.MetaData
}

// IsDefined reports whether the file sets the key, e.g. IsDefined("parse", "jobs").
// A nil manifest defines nothing.
func (m *Manifest) IsDefined(key ...string) bool {
	return m != nil && m.meta.IsDefined(key...)
}

// Find walks up from startDir looking for loom.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
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

// Discover finds and loads loom.toml above startDir. The bool is false
// when there is none; the returned manifest then holds Default().
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Default()}, false, nil
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Load reads path. Keys missing from the file keep their Default() values;
// unknown keys are errors.
func Load(path string) (*Manifest, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
		meta:   meta,
	}, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative, got %d", c.Diagnostics.Max)
	}
	if !oneOf(c.Diagnostics.Color, "auto", "on", "off") {
		return fmt.Errorf("[diagnostics].color must be auto|on|off, got %q", c.Diagnostics.Color)
	}
	if !oneOf(c.Diagnostics.Format, "pretty", "json", "short") {
		return fmt.Errorf("[diagnostics].format must be pretty|json|short, got %q", c.Diagnostics.Format)
	}
	if c.Parse.Jobs < 0 {
		return fmt.Errorf("[parse].jobs must not be negative, got %d", c.Parse.Jobs)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	return nil
}

// CacheDir resolves [parse].cache_dir against the manifest directory.
// Empty means the driver default.
func (m *Manifest) CacheDir() string {
	dir := strings.TrimSpace(m.Config.Parse.CacheDir)
	if dir == "" || filepath.IsAbs(dir) || m.Root == "" {
		return dir
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}

func oneOf(v string, allowed ...string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
