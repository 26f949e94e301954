package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task board client
type Config struct {
	API         APIConfig
	Storage     StorageConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// APIConfig holds remote API configuration. BaseURL is the single
// externally supplied endpoint every request is resolved against.
type APIConfig struct {
	BaseURL        string        `env:"TB_API_BASE_URL"`
	RequestTimeout time.Duration `env:"TB_API_TIMEOUT"`
}

// StorageConfig holds local state storage configuration
type StorageConfig struct {
	Dir            string `env:"TB_STATE_DIR"`
	Filename       string `env:"TB_STATE_FILENAME"`
	DirPermissions uint32 `env:"TB_STATE_DIR_PERMISSIONS"`
}

// DisplayConfig holds board rendering configuration
type DisplayConfig struct {
	DateFormat  string `env:"TB_DISPLAY_DATE_FORMAT"`
	ColumnWidth int    `env:"TB_DISPLAY_COLUMN_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TB_APP_TIMEOUT"`
	Verbose bool          `env:"TB_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStateDir := filepath.Join(homeDir, ".taskboard")

	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:3000",
			RequestTimeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Dir:            defaultStateDir,
			Filename:       "taskboard.db",
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat:  "2006-01-02",
			ColumnWidth: 28,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStoragePath returns the full path to the local state database file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// EnsureStorageDir creates the state directory if it does not exist
func (c *Config) EnsureStorageDir() error {
	return os.MkdirAll(c.Storage.Dir, os.FileMode(c.Storage.DirPermissions))
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// API configuration
	if baseURL := os.Getenv("TB_API_BASE_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}
	if timeout := os.Getenv("TB_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.API.RequestTimeout = d
		}
	}

	// Storage configuration
	if dir := os.Getenv("TB_STATE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TB_STATE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("TB_STATE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if format := os.Getenv("TB_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if width := os.Getenv("TB_DISPLAY_COLUMN_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.ColumnWidth = w
		}
	}

	// Application configuration
	if timeout := os.Getenv("TB_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TB_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate API configuration
	if c.API.BaseURL == "" {
		return &ConfigError{Field: "api.base_url", Message: "base URL cannot be empty (set TB_API_BASE_URL)"}
	}
	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "api.base_url", Message: "base URL must be an absolute http(s) URL"}
	}
	if c.API.RequestTimeout <= 0 {
		return &ConfigError{Field: "api.request_timeout", Message: "request timeout must be positive"}
	}

	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "state directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "state filename cannot be empty"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.ColumnWidth < 16 {
		return &ConfigError{Field: "display.column_width", Message: "column width must be at least 16"}
	}

	// Validate application configuration
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
