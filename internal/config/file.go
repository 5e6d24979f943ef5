package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"design-timeline/internal/model"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Dir returns the settings directory (~/.timeline unless TIMELINE_CONFIG_DIR is set).
func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.timeline).
	if v := strings.TrimSpace(os.Getenv("TIMELINE_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".timeline"), nil
}

func Path(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		d, err := Dir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the settings file in dir (or Dir() when empty).
// A missing file yields Default().
func Load(dir string) (Configuration, error) {
	path, err := Path(dir)
	if err != nil {
		return Configuration{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Configuration{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Configuration
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg to the settings file in dir (or Dir() when empty).
func Save(dir string, cfg Configuration) error {
	path, err := Path(dir)
	if err != nil {
		return err
	}
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := atomicWriteFile(parent, "config.yaml.*.tmp", path, b, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

type UnknownKeyError struct {
	Key string
}

func (e UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown config key: %s", e.Key)
}

// Keys lists the keys accepted by Set.
func Keys() []string {
	return []string{
		"role",
		"page_time_days",
		"hours_per_day",
		"multipliers.<normal|medium|hard>",
		"role_presets.<role>",
	}
}

// Set applies a single "key value" edit, as used by `timeline config set`.
func (c *Configuration) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	if key == "role" {
		if !c.SetRole(Role(strings.ToLower(value))) {
			return UnknownRoleError{Role: value}
		}
		return nil
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: expected a number: %w", key, err)
	}

	switch {
	case key == "page_time_days":
		c.SetPageTimeDays(n)
	case key == "hours_per_day":
		c.SetHoursPerDay(n)
	case strings.HasPrefix(key, "multipliers."):
		cx, ok := model.ParseComplexity(strings.TrimPrefix(key, "multipliers."))
		if !ok {
			return UnknownKeyError{Key: key}
		}
		c.SetMultiplier(cx, n)
	case strings.HasPrefix(key, "role_presets."):
		r := Role(strings.TrimPrefix(key, "role_presets."))
		if strings.TrimSpace(string(r)) == "" {
			return UnknownKeyError{Key: key}
		}
		onPreset := c.Role == r && c.RoleMatchesPreset(r)
		c.SetPreset(r, n)
		if onPreset {
			c.PageTimeDays = c.RolePresets[r]
		}
	default:
		return UnknownKeyError{Key: key}
	}
	return nil
}
