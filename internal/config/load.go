package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "LEAPSEEK_"

// Load resolves the configuration: defaults, then the file at path if
// it exists, then environment overrides. An empty path skips the file
// layer. The result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile merges the file at path into cfg. The format follows the
// extension: .toml, or .yaml/.yml. A missing file is not an error.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: %s: unsupported extension %q", path, ext)
	}
	return nil
}

// applyEnv overlays LEAPSEEK_ variables onto cfg. lookup is injected
// for tests.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPrefix + "ALPHABET"); ok {
		cfg.Alphabet = v
	}
	if v, ok := lookup(EnvPrefix + "CASE_SENSITIVE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CaseSensitive = b
		}
	}
	if v, ok := lookup(EnvPrefix + "MIN_QUERY_LEN"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinQueryLen = n
		}
	}
	if v, ok := lookup(EnvPrefix + "LAYOUT"); ok {
		cfg.Layout = v
	}
	if v, ok := lookup(EnvPrefix + "ACTIVATE_KEY"); ok {
		cfg.ActivateKey = v
	}
	if v, ok := lookup(EnvPrefix + "CANCEL_KEY"); ok {
		cfg.CancelKey = v
	}
	if v, ok := lookup(EnvPrefix + "DELETE_KEY"); ok {
		cfg.DeleteKey = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		cfg.Log.File = v
	}
}
