package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fixturehost/internal/files/pathutil"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment overrides, applied after fixturehost.yaml.
const (
	EnvCaseSensitive    = "FIXTUREHOST_CASE_SENSITIVE"
	EnvCurrentDirectory = "FIXTUREHOST_CURRENT_DIRECTORY"
	EnvFixture          = "FIXTUREHOST_FIXTURE"
	EnvLogFormat        = "FIXTUREHOST_LOG_FORMAT"
)

// Log formats accepted by LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ProjectConfig holds project-level settings for the CLI. Non-empty values
// override the fixture document; command-line flags override both.
type ProjectConfig struct {
	CaseSensitive    *bool  `yaml:"caseSensitive,omitempty"`
	CurrentDirectory string `yaml:"currentDirectory,omitempty"`
	ExecutingFile    string `yaml:"executingFile,omitempty"`
	Fixture          string `yaml:"fixture,omitempty"`
	LogFormat        string `yaml:"logFormat,omitempty"`
}

const ConfigFileName = fixturehost.ConfigFileName

// Load reads fixturehost.yaml from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", fixturehost.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// Resolve loads sourcePath/.env into the process environment (existing
// variables win), reads fixturehost.yaml if present, and applies the
// FIXTUREHOST_* overrides. A missing config file yields an empty config.
func Resolve(sourcePath string) (*ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(sourcePath, ".env"))

	cfg, err := Load(sourcePath)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", ConfigFileName, err)
		}
		cfg = &ProjectConfig{}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Fixture != "" && !filepath.IsAbs(cfg.Fixture) {
		cfg.Fixture = filepath.Join(sourcePath, cfg.Fixture)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *ProjectConfig) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvCaseSensitive); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", fixturehost.ErrInvalidConfig, EnvCaseSensitive, v)
		}
		c.CaseSensitive = &b
	}
	if v := getenv(EnvCurrentDirectory); v != "" {
		c.CurrentDirectory = v
	}
	if v := getenv(EnvFixture); v != "" {
		c.Fixture = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks enumerated fields and that a configured current directory
// is absolute.
func (c *ProjectConfig) Validate() error {
	if c.CurrentDirectory != "" && !pathutil.IsRooted(c.CurrentDirectory) {
		return fmt.Errorf("%w: currentDirectory %q must be absolute", fixturehost.ErrInvalidConfig, c.CurrentDirectory)
	}

	switch c.LogFormat {
	case "", LogFormatText, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: logFormat %q (want %q or %q)", fixturehost.ErrInvalidConfig, c.LogFormat, LogFormatText, LogFormatJSON)
	}
}
