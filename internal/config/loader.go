package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from a properties file and environment variables.
// When path is empty the file values.properties is searched for in the usual
// locations and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := newViper()

	setDefaults(v)

	// Read from environment variables, config.code -> CONFIG_CODE
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("properties")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("values")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/springweb")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	// Server
	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.Env = v.GetString("server.env")

	// Logging
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Log.File = v.GetString("log.file")
	cfg.Log.MaxSizeMB = v.GetInt("log.max_size_mb")
	cfg.Log.MaxBackups = v.GetInt("log.max_backups")

	// Views
	cfg.View.Minify = v.GetBool("view.minify")

	// CORS
	cfg.CORS.AllowOrigins = splitList(v.GetString("cors.allow_origins"))

	// Metrics
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Path = v.GetString("metrics.path")

	// Sentry
	cfg.Sentry.Enabled = v.GetBool("sentry.enabled")
	cfg.Sentry.DSN = v.GetString("sentry.dsn")
	cfg.Sentry.Environment = v.GetString("sentry.environment")
	cfg.Sentry.Release = v.GetString("sentry.release")
	cfg.Sentry.Debug = v.GetBool("sentry.debug")
	cfg.Sentry.SampleRate = v.GetFloat64("sentry.sample_rate")
	cfg.Sentry.TracesSampleRate = v.GetFloat64("sentry.traces_sample_rate")

	// Rate limiting
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = v.GetInt("rate_limit.requests_per_minute")

	// Redis
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Parameter extraction
	cfg.Params.StrictRequest = v.GetBool("params.strict_request")

	// Sample values
	code, err := castInt(v, "config.code")
	if err != nil {
		return nil, err
	}
	cfg.Values.Code = code
	cfg.Values.Username = v.GetString("config.username")
	cfg.Values.Message = v.GetString("config.message")
	cfg.Values.ListOfValues = v.GetString("config.listOfValues")

	valuesMap, err := ParseMapLiteral(v.GetString("config.valuesMap"))
	if err != nil {
		return nil, fmt.Errorf("config.valuesMap: %w", err)
	}
	cfg.Values.ValuesMap = valuesMap

	cfg.properties = make(map[string]string)
	for _, key := range v.AllKeys() {
		cfg.properties[key] = v.GetString(key)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.env", "development")

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)

	// View defaults
	v.SetDefault("view.minify", true)

	// CORS defaults
	v.SetDefault("cors.allow_origins", "*")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Sentry defaults
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("sentry.traces_sample_rate", 0.1)

	// Rate limiting defaults
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_minute", 100)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("params.strict_request", false)

	// Sample values
	v.SetDefault("config.code", 12345)
	v.SetDefault("config.username", "Jose")
	v.SetDefault("config.message", "Hola que tal")
	v.SetDefault("config.listOfValues", "hola,que,tal")
	v.SetDefault("config.valuesMap", "{product:'Computadora', description:'Alienware', price:1000}")
}

func castInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0, nil
	}
	n, err := parseInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if cfg.Sentry.Enabled && cfg.Sentry.DSN == "" && cfg.IsProduction() {
		return fmt.Errorf("sentry.dsn is required when sentry is enabled in production")
	}
	return nil
}
