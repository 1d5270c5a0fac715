package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gurisko/sentrycli/internal/debug"
)

// rcSection is the parser state while walking a sentryclirc file.
type rcSection int

const (
	sectionNone rcSection = iota
	sectionAuth
	sectionDefaults
)

func sectionFor(header string) rcSection {
	switch header {
	case "[auth]":
		return sectionAuth
	case "[defaults]":
		return sectionDefaults
	default:
		return sectionNone
	}
}

func loadRC(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := parseRC(f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return cfg, nil
}

// parseRC extracts [auth] token and [defaults] org from INI-style content.
// Unknown sections and keys are ignored. Later assignments win.
func parseRC(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	state := sectionNone
	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			state = sectionFor(line)
			continue
		}
		if state == sectionNone || line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			debug.Log("skipping sentryclirc line without '='", "line", lineNo)
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case state == sectionAuth && key == "token":
			cfg.AuthToken = String(value)
		case state == sectionDefaults && key == "org":
			cfg.Organization = String(value)
		}
	}
	return cfg, nil
}
