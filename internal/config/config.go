// Package config loads the layered agent-hooks configuration: built-in
// defaults, then the YAML config file, then AGENT_HOOKS_* environment
// variables. CLI flags are applied on top by the command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/waki285/agent-hooks/internal/types"
)

// envPrefix is the prefix for environment overrides, e.g.
// AGENT_HOOKS_CHECKS_BLOCK_RM=true or AGENT_HOOKS_LOG_LEVEL=debug.
const envPrefix = "agent_hooks"

var validate = validator.New()

// Checks holds the enable switches for each independent check. All default
// to off; the CLI flags and the config file can only turn them on.
type Checks struct {
	BlockRM                bool `yaml:"block_rm" envconfig:"BLOCK_RM"`
	ConfirmDestructiveFind bool `yaml:"confirm_destructive_find" envconfig:"CONFIRM_DESTRUCTIVE_FIND"`
	DenyRustAllow          bool `yaml:"deny_rust_allow" envconfig:"DENY_RUST_ALLOW"`
}

// Config is the full configuration surface.
type Config struct {
	Checks Checks `yaml:"checks"`

	// Lenient permits #[expect(...)] while still denying #[allow(...)].
	Lenient bool `yaml:"lenient" envconfig:"LENIENT"`

	// AdditionalContext is appended to denial messages.
	AdditionalContext string `yaml:"additional_context" envconfig:"ADDITIONAL_CONTEXT"`

	// ExemptPaths are glob patterns exempt from the attribute check.
	ExemptPaths []string `yaml:"exempt_paths" envconfig:"EXEMPT_PATHS"`

	LogLevel types.LogLevel `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
	NoColor  bool           `yaml:"no_color" envconfig:"NO_COLOR"`
}

// Default returns the built-in configuration: every check off, warn-level
// logging.
func Default() Config {
	return Config{LogLevel: types.LogWarn}
}

// DefaultPath returns the default config file location, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "agent-hooks", "config.yaml")
}

// Load reads the config file at path (or the default location when path is
// empty), applies environment overrides, and validates the result. A
// missing file at the default location is not an error; a missing file that
// was named explicitly is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// No config file; run on defaults.
		default:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints and compiles every exempt glob so bad
// patterns surface at load time, not mid-evaluation.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, p := range c.ExemptPaths {
		if _, err := glob.Compile(p, '/'); err != nil {
			return fmt.Errorf("exempt_paths: pattern %q: %w", p, err)
		}
	}
	return nil
}
