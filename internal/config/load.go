package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"slices"

	"gopkg.in/yaml.v3"
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

func mapEnvKey(key string) string {
	if runtime.GOOS == "windows" && key == "HOSTNAME" {
		return "COMPUTERNAME"
	}
	return key
}

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := mapEnvKey(envPattern.FindStringSubmatch(m)[1])
		return os.Getenv(key)
	})
}

// Load reads a yaml config on top of Default. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// read raw YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	// expand $(ENV_VAR) placeholders
	expanded := expandEnvVars(string(data))

	// unmarshal into the defaults so omitted keys survive
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that can be judged without touching the filesystem.
func (c Config) Validate() error {
	switch {
	case c.Source.Path == "":
		return newError("source.path", "must not be empty")
	case c.Source.Log == "":
		return newError("source.log", "must not be empty")
	case c.Destination.Path == "":
		return newError("destination.path", "must not be empty")
	case c.Destination.Log == "":
		return newError("destination.log", "must not be empty")
	case c.Retention.DeleteAfterDays < 0:
		return newError("retention.deleteAfterDays", fmt.Sprintf("must be >= 0, got %d", c.Retention.DeleteAfterDays))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Logging.Level) {
		return newError("logging.level", fmt.Sprintf("unknown level %q", c.Logging.Level))
	}
	if !slices.Contains([]string{"console", "json"}, c.Logging.Format) {
		return newError("logging.format", fmt.Sprintf("unknown format %q", c.Logging.Format))
	}
	return nil
}
