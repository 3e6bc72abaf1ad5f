// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LOCSTAT"

// LogFormat selects the log output format.
type LogFormat string

// Supported log formats.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Report formats accepted by FORMAT.
var reportFormats = []string{"text", "table", "json"}

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Format is the default report format (text, table or json).
	// Env: LOCSTAT_FORMAT (default: text)
	Format string `envconfig:"FORMAT" default:"text"`

	// Parallel is the number of sources classified concurrently.
	// Env: LOCSTAT_PARALLEL (default: 1)
	Parallel int `envconfig:"PARALLEL" default:"1"`

	// CacheSize is the number of stats entries kept in memory, keyed by content hash.
	// Env: LOCSTAT_CACHE_SIZE (default: 256)
	CacheSize int `envconfig:"CACHE_SIZE" default:"256"`

	// ReportsDir is where saved reports are written.
	// Env: LOCSTAT_REPORTS_DIR (default: .locstat-reports)
	ReportsDir string `envconfig:"REPORTS_DIR" default:".locstat-reports"`

	// LogLevel is the log verbosity level.
	// Env: LOCSTAT_LOG_LEVEL (default: WARN)
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOCSTAT_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// AppConfig is the validated, immutable configuration.
type AppConfig struct {
	format     string
	parallel   int
	cacheSize  int
	reportsDir string
	logLevel   string
	logFormat  LogFormat
}

// LoadFromEnv reads EnvConfig from the process environment.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}

	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// LoadConfig loads an optional .env file, then the environment, and validates the result.
func LoadConfig(envPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}

	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return envCfg.ToAppConfig()
}

// ToAppConfig validates the environment values and normalizes them.
func (e EnvConfig) ToAppConfig() (AppConfig, error) {
	format := strings.ToLower(strings.TrimSpace(e.Format))
	if err := ValidateFormat(format); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if e.Parallel < 1 {
		return AppConfig{}, fmt.Errorf("invalid configuration: parallel must be at least 1, got %d", e.Parallel)
	}

	if e.CacheSize < 1 {
		return AppConfig{}, fmt.Errorf("invalid configuration: cache size must be at least 1, got %d", e.CacheSize)
	}

	logFormat := LogFormat(strings.ToLower(e.LogFormat))
	if logFormat != LogFormatJSON {
		logFormat = LogFormatPretty
	}

	return AppConfig{
		format:     format,
		parallel:   e.Parallel,
		cacheSize:  e.CacheSize,
		reportsDir: e.ReportsDir,
		logLevel:   e.LogLevel,
		logFormat:  logFormat,
	}, nil
}

// ValidateFormat reports whether format is a known report format.
func ValidateFormat(format string) error {
	for _, f := range reportFormats {
		if f == format {
			return nil
		}
	}

	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(reportFormats, ", "))
}

// NewAppConfig returns the configuration used when nothing is set.
func NewAppConfig() AppConfig {
	return AppConfig{
		format:     "text",
		parallel:   1,
		cacheSize:  256,
		reportsDir: ".locstat-reports",
		logLevel:   "WARN",
		logFormat:  LogFormatPretty,
	}
}

// Format returns the default report format.
func (c AppConfig) Format() string { return c.format }

// Parallel returns the worker count.
func (c AppConfig) Parallel() int { return c.parallel }

// CacheSize returns the stats cache capacity.
func (c AppConfig) CacheSize() int { return c.cacheSize }

// ReportsDir returns the directory for saved reports.
func (c AppConfig) ReportsDir() string { return c.reportsDir }

// LogLevel returns the log level name.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }
