// Package config stores the server URL and access token for planka-cli.
//
// Values live in a JSON file under the user's config directory with
// owner-only permissions. Non-empty PLANKA_URL and PLANKA_TOKEN
// environment variables override the file values for the current
// invocation; the file itself is never rewritten by an override.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hauxir/planka-cli/internal/telemetry/logger"
)

// EnvPrefix is the prefix of the override environment variables.
const EnvPrefix = "PLANKA_"

// Config holds the stored credentials. The zero value means "not logged
// in" and is what Load returns when no file exists.
type Config struct {
	URL   string `koanf:"url" json:"url"`
	Token string `koanf:"token" json:"token"`
}

// DefaultPath returns the per-user config file location,
// ~/.config/planka/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "planka", "config.json")
}

// Load reads the config file (if present) and overlays PLANKA_* values
// from the environment. An empty path selects the default location. A
// missing file yields a zero config, not an error; an unreadable or
// malformed file is an error naming the file.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	// Environment overrides the file by load order: PLANKA_URL -> url.
	// A variable that is set but empty is treated as unset, so it cannot
	// wipe a stored value.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads only the file values, ignoring the environment. Writers
// (login, config-set-url, logout) go through this so an environment
// override is never baked into the stored file.
func LoadFile(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories as needed,
// and restricts it to owner read/write. A failed permission change is a
// warning, not an error.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("cannot determine config path: no home directory")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	// WriteFile only applies the mode on creation; tighten pre-existing files.
	if err := os.Chmod(path, 0o600); err != nil {
		logger.Warn("could not restrict config file permissions", "path", path, "err", err.Error())
	}
	return nil
}

// Clear removes the stored token but keeps the server URL, so the next
// login does not have to re-enter it. A missing file is a no-op.
func Clear(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	if cfg == (Config{}) {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return nil
		}
	}
	cfg.Token = ""
	return Save(cfg, path)
}
