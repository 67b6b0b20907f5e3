package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvOutput  = "DECKGEN_OUTPUT"
	EnvLogDir  = "DECKGEN_LOG_DIR"
	EnvHandout = "DECKGEN_HANDOUT"
	EnvStrict  = "DECKGEN_STRICT"
)

// Load builds the configuration from defaults, an optional YAML file and the environment.
// A missing .env file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// decodeYAML overlays data onto cfg; fields absent from data keep their current value.
func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

func applyEnv(cfg *Config) {
	cfg.OutputFile = getEnv(EnvOutput, cfg.OutputFile)
	cfg.LogDir = getEnv(EnvLogDir, cfg.LogDir)
	cfg.Handout = strings.ToLower(getEnv(EnvHandout, cfg.Handout))
	cfg.Strict = getEnvBool(EnvStrict, cfg.Strict)
}

// getEnv returns the environment value or defaultValue when unset or empty
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
