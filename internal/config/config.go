// Package config loads offscreen settings: a YAML file, then environment
// overrides, then whatever the command line sets on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"offscreen/internal/deck"
)

const (
	// HomeEnv overrides the ~/.offscreen base directory (for testing).
	HomeEnv = "OFFSCREEN_HOME"
	// DefaultHome is the default base, relative to the user's home.
	DefaultHome = ".offscreen"
	// FileName is the config file looked up inside the base directory.
	FileName = "config.yaml"

	DefaultFlipDelay   = 220 * time.Millisecond
	DefaultSplashDelay = 3 * time.Second
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	DailyLimit  int           `yaml:"daily_limit"`
	PoolsFile   string        `yaml:"pools_file"`
	Seed        int64         `yaml:"seed"` // 0 draws from the clock
	Character   string        `yaml:"character"`
	FlipDelay   time.Duration `yaml:"flip_delay"`
	SplashDelay time.Duration `yaml:"splash_delay"`
	LogFile     string        `yaml:"log_file"`
	Tracing     Tracing       `yaml:"tracing"`
}

type Tracing struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DailyLimit:  deck.DefaultDailyLimit,
		FlipDelay:   DefaultFlipDelay,
		SplashDelay: DefaultSplashDelay,
		Tracing: Tracing{
			ServiceName: "offscreen",
			Insecure:    true,
		},
	}
}

// Dir returns the base directory: $OFFSCREEN_HOME, or ~/.offscreen.
func Dir() (string, error) {
	if base := os.Getenv(HomeEnv); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultHome), nil
}

// DefaultPath returns the config file inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads path over Default. A missing file is not an error unless
// required is set; fields absent from the file keep their defaults.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.PoolsFile != "" && !filepath.IsAbs(cfg.PoolsFile) {
		cfg.PoolsFile = filepath.Join(filepath.Dir(path), cfg.PoolsFile)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.DailyLimit < 1 {
		return fmt.Errorf("%w: daily_limit must be at least 1, got %d", ErrInvalid, c.DailyLimit)
	}
	if c.FlipDelay <= 0 {
		return fmt.Errorf("%w: flip_delay must be positive, got %s", ErrInvalid, c.FlipDelay)
	}
	if c.SplashDelay < 0 {
		return fmt.Errorf("%w: splash_delay must not be negative, got %s", ErrInvalid, c.SplashDelay)
	}
	return nil
}
