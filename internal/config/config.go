package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	dirName        = ".grocery"
	configFileName = "config.toml"
	logFileName    = "grocery.log"

	DefaultBaseURL = "https://grocery-tracker-m29a.onrender.com/api"
)

// Environment overrides.
const (
	EnvConfig   = "GROCERY_CONFIG"
	EnvAPI      = "GROCERY_API"
	EnvLogLevel = "GROCERY_LOG_LEVEL"
)

// Duration reads "3s" / "500ms" style strings from TOML.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is everything the client can be tuned with.
type Config struct {
	BaseURL        string   `toml:"base_url"`
	PollInterval   Duration `toml:"poll_interval"`
	SaveDebounce   Duration `toml:"save_debounce"`
	ConfirmFor     Duration `toml:"confirm_for"`
	RequestTimeout Duration `toml:"request_timeout"`

	Theme     string `toml:"theme"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns the values used when nothing is configured.
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		PollInterval:   Duration(3 * time.Second),
		SaveDebounce:   Duration(500 * time.Millisecond),
		ConfirmFor:     Duration(1500 * time.Millisecond),
		RequestTimeout: Duration(10 * time.Second),
		Theme:          "classic",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Dir is where the config file and the default log live (~/.grocery).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Path resolves the config file: explicit path, then $GROCERY_CONFIG, then ~/.grocery/config.toml.
func Path(explicit string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file at path (missing is fine), then applies env
// overrides and fills defaults. An explicitly named file must exist.
func Load(path string, mustExist bool) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !mustExist:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPI)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if cfg.LogFile == "" {
		if dir, err := Dir(); err == nil {
			cfg.LogFile = filepath.Join(dir, logFileName)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks the fields the client cannot run without.
func (c Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url: want an absolute http(s) URL, got %q", c.BaseURL)
	}
	for name, d := range map[string]Duration{
		"poll_interval":   c.PollInterval,
		"save_debounce":   c.SaveDebounce,
		"confirm_for":     c.ConfirmFor,
		"request_timeout": c.RequestTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s: must be positive, got %s", name, d.Std())
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format: want text or json, got %q", c.LogFormat)
	}
	return nil
}

// Save writes cfg as TOML, creating the directory owner-only.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("toml marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
