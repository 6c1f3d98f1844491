package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.DailyLimit)
	assert.Equal(t, 220*time.Millisecond, cfg.FlipDelay)
	assert.Equal(t, 3*time.Second, cfg.SplashDelay)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
daily_limit: 3
pools_file: pools.yaml
flip_delay: 150ms
character: character3
tracing:
  endpoint: localhost:4318
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DailyLimit)
	assert.Equal(t, 150*time.Millisecond, cfg.FlipDelay)
	assert.Equal(t, DefaultSplashDelay, cfg.SplashDelay, "absent field keeps default")
	assert.Equal(t, "character3", cfg.Character)
	assert.Equal(t, filepath.Join(dir, "pools.yaml"), cfg.PoolsFile, "relative to the config file")
	assert.Equal(t, "localhost:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "offscreen", cfg.Tracing.ServiceName)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("daily_limit: [oops"), 0o644))
	_, err := Load(path, false)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero limit", func(c *Config) { c.DailyLimit = 0 }},
		{"zero flip delay", func(c *Config) { c.FlipDelay = 0 }},
		{"negative splash", func(c *Config) { c.SplashDelay = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDailyLimit, "7")
	t.Setenv(EnvPoolsFile, "/tmp/pools.json")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvCharacter, "character2")
	t.Setenv(EnvOTLPEndpoint, "http://collector:4318")
	t.Setenv(EnvServiceName, "offscreen-test")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, 7, cfg.DailyLimit)
	assert.Equal(t, "/tmp/pools.json", cfg.PoolsFile)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "character2", cfg.Character)
	assert.Equal(t, "http://collector:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "offscreen-test", cfg.Tracing.ServiceName)
}

func TestApplyEnv_IgnoresGarbage(t *testing.T) {
	t.Setenv(EnvDailyLimit, "five")
	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, 5, cfg.DailyLimit)
}

func TestDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	got, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)
}
