package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Limits for log.max_count
const (
	DefaultMaxCount = 20
	MaxMaxCount     = 1000
)

// DefaultRemote is the remote used for force pushes and sync hints
const DefaultRemote = "origin"

// PathEnv overrides the config file location
const PathEnv = "GRH_CONFIG"

// ScanConfig controls the repository scan
type ScanConfig struct {
	SkipDirs []string `toml:"skip_dirs"` // directory names never descended into
}

// LogConfig controls the commit listing
type LogConfig struct {
	MaxCount int `toml:"max_count"` // commits offered for selection
}

// PushConfig controls the post-reset force push
type PushConfig struct {
	Remote string `toml:"remote"`
}

// Config holds the grh configuration
type Config struct {
	Scan ScanConfig `toml:"scan"`
	Log  LogConfig  `toml:"log"`
	Push PushConfig `toml:"push"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Scan: ScanConfig{SkipDirs: []string{"node_modules"}},
		Log:  LogConfig{MaxCount: DefaultMaxCount},
		Push: PushConfig{Remote: DefaultRemote},
	}
}

// Path returns the config file path: $GRH_CONFIG if set,
// otherwise ~/.config/grh/config.toml
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grh", "config.toml"), nil
}

// Load reads config from the default location.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML on top of the defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}
