package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/modelbase"
	ConfigFileName    = "modelbase.yml"
)

// ValidLogLevels is the list of accepted log levels
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all modelbase tooling settings
type Config struct {
	// DatabaseURL is the PostgreSQL connection string
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// LogLevel controls tooling and SQL logging verbosity
	LogLevel string `yaml:"log_level" json:"log_level"`

	// FixtureSeed makes fixture generation deterministic when non-zero
	FixtureSeed uint64 `yaml:"fixture_seed" json:"fixture_seed"`

	// FixtureCount is the default number of fixtures to generate
	FixtureCount int `yaml:"fixture_count" json:"fixture_count"`

	// MigrationsDir is the path to SQL migration files
	MigrationsDir string `yaml:"migrations_dir" json:"migrations_dir"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		DatabaseURL:   "",
		LogLevel:      "info",
		FixtureSeed:   0,
		FixtureCount:  10,
		MigrationsDir: "db/migrations",
		sources:       make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	cfg := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		cfg.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("MODELBASE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(cfg.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", cfg.configFilePath, err)
		}
		cfg.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	cfg.applyEnvConfig()

	if !validLogLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log_level %q, expected one of %s",
			cfg.LogLevel, strings.Join(ValidLogLevels, ", "))
	}

	return cfg, nil
}

func attributeNames() []string {
	return []string{
		"database_url", "log_level", "fixture_seed", "fixture_count",
		"migrations_dir",
	}
}

func validLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if l == level {
			return true
		}
	}
	return false
}

func (c *Config) applyFileConfig(file *Config) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
	if file.FixtureSeed != 0 {
		c.FixtureSeed = file.FixtureSeed
		c.sources["fixture_seed"] = "file"
	}
	if file.FixtureCount != 0 {
		c.FixtureCount = file.FixtureCount
		c.sources["fixture_count"] = "file"
	}
	if file.MigrationsDir != "" {
		c.MigrationsDir = file.MigrationsDir
		c.sources["migrations_dir"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("MODELBASE_DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	} else if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("MODELBASE_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("MODELBASE_FIXTURE_SEED"); val != "" {
		if i, err := strconv.ParseUint(val, 10, 64); err == nil {
			c.FixtureSeed = i
			c.sources["fixture_seed"] = "environment"
		}
	}
	if val := os.Getenv("MODELBASE_FIXTURE_COUNT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.FixtureCount = i
			c.sources["fixture_count"] = "environment"
		}
	}
	if val := os.Getenv("MODELBASE_MIGRATIONS_DIR"); val != "" {
		c.MigrationsDir = val
		c.sources["migrations_dir"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Attributes returns all configuration attributes with their values
// and sources. The database URL is reported masked; it routinely
// carries credentials.
func (c *Config) Attributes() []Attribute {
	maskedURL := ""
	if c.DatabaseURL != "" {
		maskedURL = "**********"
	}
	return []Attribute{
		{Name: "database_url", Value: maskedURL, Source: c.Source("database_url")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "fixture_seed", Value: strconv.FormatUint(c.FixtureSeed, 10), Source: c.Source("fixture_seed")},
		{Name: "fixture_count", Value: strconv.Itoa(c.FixtureCount), Source: c.Source("fixture_count")},
		{Name: "migrations_dir", Value: c.MigrationsDir, Source: c.Source("migrations_dir")},
	}
}

// FormatText renders the attributes as an aligned text table
func (c *Config) FormatText() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-16s %-24s %s\n", "NAME", "VALUE", "SOURCE"))
	for _, attr := range c.Attributes() {
		b.WriteString(fmt.Sprintf("%-16s %-24s %s\n", attr.Name, attr.Value, attr.Source))
	}
	return b.String()
}

// FormatJSON renders the attributes as JSON
func (c *Config) FormatJSON() (string, error) {
	out, err := json.MarshalIndent(c.Attributes(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
