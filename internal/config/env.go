package config

import (
	"log"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvDailyLimit   = "OFFSCREEN_DAILY_LIMIT"
	EnvPoolsFile    = "OFFSCREEN_POOLS_FILE"
	EnvSeed         = "OFFSCREEN_SEED"
	EnvCharacter    = "OFFSCREEN_CHARACTER"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
)

// ApplyEnv overrides c with any variables that are set.
// Unparseable numbers are logged and ignored.
func (c *Config) ApplyEnv() {
	if val, ok := getEnvInt(EnvDailyLimit); ok {
		c.DailyLimit = int(val)
	}
	if val := os.Getenv(EnvPoolsFile); val != "" {
		c.PoolsFile = val
	}
	if val, ok := getEnvInt(EnvSeed); ok {
		c.Seed = val
	}
	if val := os.Getenv(EnvCharacter); val != "" {
		c.Character = val
	}
	if val := os.Getenv(EnvOTLPEndpoint); val != "" {
		c.Tracing.Endpoint = val
	}
	if val := os.Getenv(EnvServiceName); val != "" {
		c.Tracing.ServiceName = val
	}
}

func getEnvInt(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("config.ApplyEnv: ignoring %s=%q: %v", key, raw, err)
		return 0, false
	}
	return val, true
}
