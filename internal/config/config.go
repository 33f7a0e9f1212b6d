package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the report generator
type Config struct {
	Service     ServiceConfig
	Database    DatabaseConfig
	Report      ReportConfig
	Application ApplicationConfig
}

// ServiceConfig holds tracker service connection configuration
type ServiceConfig struct {
	URL      string        `yaml:"url" env:"TR_SERVER_URL"`
	Username string        `yaml:"username" env:"TR_USERNAME"`
	Password string        `yaml:"password" env:"TR_PASSWORD"`
	Timeout  time.Duration `yaml:"timeout" env:"TR_SERVER_TIMEOUT"`
}

// DatabaseConfig holds local task store configuration
type DatabaseConfig struct {
	Path         string        `yaml:"path" env:"TR_DB_PATH"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"TR_DB_QUERY_TIMEOUT"`
}

// ReportConfig holds report shape configuration
type ReportConfig struct {
	NumDays    int `yaml:"num_days" env:"TR_REPORT_NUM_DAYS"`
	PlainWidth int `yaml:"plain_width" env:"TR_REPORT_PLAIN_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TR_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TR_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			Timeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			QueryTimeout: 10 * time.Second,
		},
		Report: ReportConfig{
			NumDays:    7,
			PlainWidth: 80,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// DefaultConfigPath returns the default location of the YAML config file
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".timereport.yaml")
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Service configuration
	if url := os.Getenv("TR_SERVER_URL"); url != "" {
		c.Service.URL = url
	}
	if username := os.Getenv("TR_USERNAME"); username != "" {
		c.Service.Username = username
	}
	if password := os.Getenv("TR_PASSWORD"); password != "" {
		c.Service.Password = password
	}
	if timeout := os.Getenv("TR_SERVER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Service.Timeout = d
		}
	}

	// Database configuration
	if path := os.Getenv("TR_DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if timeout := os.Getenv("TR_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}

	// Report configuration
	if numDays := os.Getenv("TR_REPORT_NUM_DAYS"); numDays != "" {
		if n, err := strconv.Atoi(numDays); err == nil {
			c.Report.NumDays = n
		}
	}
	if width := os.Getenv("TR_REPORT_PLAIN_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Report.PlainWidth = w
		}
	}

	// Application configuration
	if timeout := os.Getenv("TR_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TR_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Service.Timeout <= 0 {
		return &ConfigError{Field: "service.timeout", Message: "service timeout must be positive"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Report.NumDays < 1 {
		return &ConfigError{Field: "report.num_days", Message: "report must span at least one day"}
	}
	if c.Report.PlainWidth < 20 {
		return &ConfigError{Field: "report.plain_width", Message: "plain width must be at least 20"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
