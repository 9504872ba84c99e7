package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ppiankov/auditrunner/internal/registry"
)

// EnvPrefix namespaces environment overrides (AUDITRUNNER_TIMEOUT, ...).
const EnvPrefix = "AUDITRUNNER"

// FileEnvVar names an explicit config file.
const FileEnvVar = EnvPrefix + "_CONFIG"

// DefaultTimeout mirrors the runner's per-analyzer timeout.
const DefaultTimeout = 5 * time.Minute

// SampleFileName is the config file name searched for and written by init.
const SampleFileName = "auditrunner.yaml"

// DefaultInterpreter is the program the analyzer scripts run under.
func DefaultInterpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// Config holds all configuration for auditrunner
type Config struct {
	// Directory the analyzer paths are relative to.
	// Empty means <binary dir>/analyzers.
	ScriptsDir string `mapstructure:"scripts_dir"`

	// Interpreter command for the analyzer scripts. Empty runs them directly.
	Interpreter string `mapstructure:"interpreter"`

	// Per-analyzer execution timeout
	Timeout time.Duration `mapstructure:"timeout"`

	// Debug logging on stderr
	Debug bool `mapstructure:"debug"`

	// Relative path overrides keyed by analyzer name
	Analyzers map[string]string `mapstructure:"analyzers"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Interpreter: DefaultInterpreter(),
		Timeout:     DefaultTimeout,
		Analyzers:   map[string]string{},
	}
}

// Load loads configuration with the following precedence (lowest to highest):
//  1. Default values
//  2. Config file ($AUDITRUNNER_CONFIG, ./auditrunner.yaml, ~/auditrunner.yaml,
//     $XDG_CONFIG_HOME/auditrunner/auditrunner.yaml)
//  3. Environment variables (AUDITRUNNER_*)
func Load() (*Config, error) {
	return LoadFromFile(os.Getenv(FileEnvVar))
}

// LoadFromFile loads configuration from a specific file path.
// If path is empty, it searches for config in standard locations.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("scripts_dir", defaults.ScriptsDir)
	v.SetDefault("interpreter", defaults.Interpreter)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("analyzers", defaults.Analyzers)

	v.SetConfigName("auditrunner")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "auditrunner"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file in the search path is fine; an explicit or broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Interpreter = strings.TrimSpace(cfg.Interpreter)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}

	var unknown []string
	for name := range c.Analyzers {
		if !registry.IsKnown(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown analyzer(s) in analyzers: %s", strings.Join(unknown, ", "))
	}

	return nil
}

// NewRegistry builds the analyzer registry this configuration describes.
func (c *Config) NewRegistry() (*registry.Registry, error) {
	return registry.New(registry.BaseDirFor(c.ScriptsDir), c.Analyzers)
}

// GenerateSampleConfig generates a sample configuration file content
func GenerateSampleConfig() string {
	return `# auditrunner configuration
# Save this file as ./auditrunner.yaml or ~/auditrunner.yaml

# Directory containing the analyzers (default: <binary dir>/analyzers)
# scripts_dir: ~/.local/share/auditrunner/analyzers

# Interpreter the analyzer scripts run under; "" executes them directly
interpreter: python3

# Per-analyzer timeout; a timed out analyzer is reported as failed
timeout: 5m

# Debug logging on stderr
debug: false

# Override an analyzer's path relative to scripts_dir
# analyzers:
#   security: security/detect_secrets.py
`
}
