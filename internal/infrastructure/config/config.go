package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	API         APIConfig       `mapstructure:"api"`
	Session     SessionConfig   `mapstructure:"session"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Limits      LimitsConfig    `mapstructure:"limits"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
}

// IsProduction reports whether the production environment is selected
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	TrustedProxies    []string      `mapstructure:"trustedProxies"`
	// PublicURL is the externally visible base, used for referral links
	PublicURL string `mapstructure:"publicURL"`
}

// APIConfig points at the platform REST API
type APIConfig struct {
	BaseURL      string        `mapstructure:"baseURL"`
	Timeout      time.Duration `mapstructure:"timeout"` // milliseconds
	UserAgent    string        `mapstructure:"userAgent"`
	MaxIdleConns int           `mapstructure:"maxIdleConns"`
}

// SessionConfig controls browser sessions
type SessionConfig struct {
	// Store is one of memory, postgres, redis
	Store           string        `mapstructure:"store"`
	Secret          string        `mapstructure:"secret"`
	CookieName      string        `mapstructure:"cookieName"`
	CookieSecure    bool          `mapstructure:"cookieSecure"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout"` // minutes
	CleanupSchedule string        `mapstructure:"cleanupSchedule"`
}

// DatabaseConfig contains database connection settings for the postgres session store
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// RedisConfig contains settings for the redis session store
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	KeyPrefix   string        `mapstructure:"keyPrefix"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
}

// CacheConfig sizes the per-session query cache
type CacheConfig struct {
	MaxSessions      int           `mapstructure:"maxSessions"`
	DefaultStaleTime time.Duration `mapstructure:"defaultStaleTime"` // seconds
}

// LimitsConfig holds client-side form limits. The /setting payload may override them.
type LimitsConfig struct {
	MinWithdrawal        string `mapstructure:"minWithdrawal"`
	MinTransfer          string `mapstructure:"minTransfer"`
	WithdrawalFeePercent string `mapstructure:"withdrawalFeePercent"`
	Network              string `mapstructure:"network"`
	ROIPayoutCycle       string `mapstructure:"roiPayoutCycle"`
	PageSize             int    `mapstructure:"pageSize"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// RateLimitConfig throttles login and signup submissions per client IP
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requestsPerMinute"`
	Burst             int  `mapstructure:"burst"`
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
