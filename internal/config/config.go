package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gurisko/sentrycli/internal/debug"
	"github.com/gurisko/sentrycli/internal/paths"
	"github.com/spf13/viper"
)

const (
	keyOrganization = "organization"
	keyAuthToken    = "auth_token"
)

// Config holds the organization slug and auth token.
// A nil field means the value is not configured.
type Config struct {
	Organization *string `json:"organization"`
	AuthToken    *string `json:"auth_token"`
}

// Merge returns a copy of c with every field set in other taking precedence.
func (c Config) Merge(other Config) Config {
	out := c
	if other.Organization != nil {
		out.Organization = other.Organization
	}
	if other.AuthToken != nil {
		out.AuthToken = other.AuthToken
	}
	return out
}

// String returns a pointer to s, for building Config literals.
func String(s string) *string { return &s }

// Store reads and writes the configuration files.
type Store struct {
	// Path is the primary JSON config file.
	Path string
	// RCPath is the read-only ~/.sentryclirc fallback.
	RCPath string
}

// NewStore returns a Store using the default per-user locations.
func NewStore() *Store {
	return &Store{
		Path:   paths.DefaultConfigPath(),
		RCPath: paths.DefaultRCPath(),
	}
}

// Load returns the effective configuration. The primary file wins when it
// exists; otherwise the sentryclirc fallback is parsed; otherwise the result
// is an empty Config.
func (s *Store) Load() (Config, error) {
	ok, err := exists(s.Path)
	if err != nil {
		return Config{}, err
	}
	if ok {
		debug.Log("loading config", "path", s.Path)
		return s.loadPrimary()
	}

	ok, err = exists(s.RCPath)
	if err != nil {
		return Config{}, err
	}
	if ok {
		debug.Log("loading fallback config", "path", s.RCPath)
		return loadRC(s.RCPath)
	}

	debug.Log("no config file found", "path", s.Path, "fallback", s.RCPath)
	return Config{}, nil
}

// fileConfig is the on-disk shape. Fields must be strings or null.
type fileConfig struct {
	Organization *string `mapstructure:"organization"`
	AuthToken    *string `mapstructure:"auth_token"`
}

func (s *Store) loadPrimary() (Config, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config at %s: %w", s.Path, err)
	}

	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Config{}, fmt.Errorf("failed to parse config at %s: %w", s.Path, err)
	}
	if err := checkKeyCase(data); err != nil {
		return Config{}, fmt.Errorf("failed to parse config at %s: %w", s.Path, err)
	}

	var fc fileConfig
	strict := func(dc *mapstructure.DecoderConfig) { dc.WeaklyTypedInput = false }
	if err := v.Unmarshal(&fc, strict); err != nil {
		return Config{}, fmt.Errorf("failed to parse config at %s: %w", s.Path, err)
	}
	return Config{Organization: fc.Organization, AuthToken: fc.AuthToken}, nil
}

// checkKeyCase rejects keys that only differ in case from a known key.
// viper folds key case, so "ORGANIZATION" would otherwise be read silently.
func checkKeyCase(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return err
	}
	for key := range top {
		for _, known := range []string{keyOrganization, keyAuthToken} {
			if key != known && strings.EqualFold(key, known) {
				return fmt.Errorf("unknown key %q (did you mean %q?)", key, known)
			}
		}
	}
	return nil
}

// Save overwrites the primary config file with cfg. Unset fields are omitted.
// The file is written to a temp file and renamed into place.
func (s *Store) Save(cfg Config) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	if cfg.Organization != nil {
		v.Set(keyOrganization, *cfg.Organization)
	}
	if cfg.AuthToken != nil {
		v.Set(keyAuthToken, *cfg.AuthToken)
	}

	f, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()
	// Best-effort cleanup if we fail
	defer func() { _ = os.Remove(tmp) }()
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := v.WriteConfigAs(tmp); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}

	debug.Log("saved config", "path", s.Path)
	return nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}
