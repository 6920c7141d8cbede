package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	View      ViewConfig
	CORS      CORSConfig
	Metrics   MetricsConfig
	Sentry    SentryConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Params    ParamsConfig
	Values    Values

	// properties is a flattened, read-only copy of every loaded key
	properties map[string]string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File enables rotated file output instead of stdout
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// ViewConfig holds server-side view rendering configuration
type ViewConfig struct {
	Minify bool `mapstructure:"minify"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// SentryConfig holds Sentry configuration
type SentryConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	DSN              string  `mapstructure:"dsn"`
	Environment      string  `mapstructure:"environment"`
	Release          string  `mapstructure:"release"`
	Debug            bool    `mapstructure:"debug"`
	SampleRate       float64 `mapstructure:"sample_rate"`
	TracesSampleRate float64 `mapstructure:"traces_sample_rate"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ParamsConfig tunes request parameter extraction
type ParamsConfig struct {
	// StrictRequest makes the raw parameter map route answer 400 instead of
	// surfacing a conversion failure as an unhandled error.
	StrictRequest bool `mapstructure:"strict_request"`
}

// Values holds the sample values read from the config.* keys.
type Values struct {
	Code     int
	Username string
	Message  string
	// ListOfValues is the raw comma separated value
	ListOfValues string
	ValuesMap    map[string]any
}

// List splits ListOfValues on commas.
func (v Values) List() []string {
	if strings.TrimSpace(v.ListOfValues) == "" {
		return []string{}
	}
	parts := strings.Split(v.ListOfValues, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Upper returns ListOfValues upper-cased.
func (v Values) Upper() string {
	return strings.ToUpper(v.ListOfValues)
}

// Product returns the product entry of ValuesMap.
func (v Values) Product() string {
	if v.ValuesMap == nil {
		return ""
	}
	return cast.ToString(v.ValuesMap["product"])
}

// Property looks up a loaded key by its dotted name, ignoring case.
func (c *Config) Property(key string) (string, bool) {
	if c.properties == nil {
		return "", false
	}
	val, ok := c.properties[strings.ToLower(key)]
	return val, ok
}

// PropertyInt looks up a loaded key and converts it to an int.
func (c *Config) PropertyInt(key string) (int, error) {
	val, ok := c.Property(key)
	if !ok {
		return 0, fmt.Errorf("property %q not set", key)
	}
	n, err := cast.ToIntE(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("property %q: %w", key, err)
	}
	return n, nil
}

// IsDevelopment returns true if running in development mode
func (c Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c Config) IsProduction() bool {
	return c.Server.Env == "production"
}
