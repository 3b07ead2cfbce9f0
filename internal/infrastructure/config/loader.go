package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. DASH_SERVER_PORT
const EnvPrefix = "DASH"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration for the environment selected by DASH_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()
	return LoadConfigFrom(getEnvironment(), ConfigPaths)
}

// LoadConfigFrom loads <env>.yaml from the first matching path, then applies env overrides
func LoadConfigFrom(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.publicURL", "http://localhost:8080")

	v.SetDefault("api.baseURL", "http://localhost:4000/api")
	v.SetDefault("api.timeout", 5000) // milliseconds
	v.SetDefault("api.userAgent", "invest-dashboard")
	v.SetDefault("api.maxIdleConns", 32)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.cookieName", "dash_session")
	v.SetDefault("session.cookieSecure", false)
	v.SetDefault("session.idleTimeout", 7*24*60) // minutes
	v.SetDefault("session.cleanupSchedule", "@every 10m")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 20)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "dash:session:")
	v.SetDefault("redis.dialTimeout", 5) // seconds

	v.SetDefault("cache.maxSessions", 10000)
	v.SetDefault("cache.defaultStaleTime", 15) // seconds

	v.SetDefault("limits.minWithdrawal", "10")
	v.SetDefault("limits.minTransfer", "10")
	v.SetDefault("limits.withdrawalFeePercent", "0")
	v.SetDefault("limits.network", "BEP-20")
	v.SetDefault("limits.roiPayoutCycle", "monthly")
	v.SetDefault("limits.pageSize", 10)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 10)
	v.SetDefault("rateLimit.burst", 5)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment from DASH_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// envOverrides maps flat environment names onto config keys whose names
// AutomaticEnv cannot derive (camelCase keys)
var envOverrides = map[string]string{
	"API_BASE_URL":        "api.baseURL",
	"SESSION_SECRET":      "session.secret",
	"SESSION_STORE":       "session.store",
	"SESSION_COOKIE_NAME": "session.cookieName",
	"DB_HOST":             "database.host",
	"DB_PORT":             "database.port",
	"DB_USERNAME":         "database.username",
	"DB_PASSWORD":         "database.password",
	"DB_NAME":             "database.database",
	"DB_SSL_MODE":         "database.sslMode",
	"REDIS_ADDR":          "redis.addr",
	"REDIS_PASSWORD":      "redis.password",
	"SERVER_HOST":         "server.host",
	"SERVER_PORT":         "server.port",
	"SERVER_PUBLIC_URL":   "server.publicURL",
	"LOGGER_LEVEL":        "logger.level",
	"LIMITS_NETWORK":      "limits.network",
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		if value := os.Getenv(EnvPrefix + "_" + name); value != "" {
			v.Set(key, value)
		}
	}
}

// scale converts a bare number decoded as nanoseconds into unit.
// Values written with a suffix ("90s") of at least one unit are kept as they are.
func scale(d time.Duration, unit time.Duration) time.Duration {
	if d > 0 && d < unit {
		return d * unit
	}
	return d
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = scale(config.Server.ReadTimeout, time.Second)
	config.Server.WriteTimeout = scale(config.Server.WriteTimeout, time.Second)
	config.Server.IdleTimeout = scale(config.Server.IdleTimeout, time.Second)
	config.Server.ReadHeaderTimeout = scale(config.Server.ReadHeaderTimeout, time.Second)
	config.Server.ShutdownTimeout = scale(config.Server.ShutdownTimeout, time.Second)

	config.API.Timeout = scale(config.API.Timeout, time.Millisecond)

	config.Session.IdleTimeout = scale(config.Session.IdleTimeout, time.Minute)

	config.Database.ConnMaxLifetime = scale(config.Database.ConnMaxLifetime, time.Minute)
	config.Database.ConnMaxIdleTime = scale(config.Database.ConnMaxIdleTime, time.Minute)
	config.Database.QueryTimeout = scale(config.Database.QueryTimeout, time.Second)
	config.Database.RetryDelay = scale(config.Database.RetryDelay, time.Second)

	config.Redis.DialTimeout = scale(config.Redis.DialTimeout, time.Second)

	config.Cache.DefaultStaleTime = scale(config.Cache.DefaultStaleTime, time.Second)
}
