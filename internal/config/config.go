package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	RunMigrations  bool   `toml:"run_migrations"`
	MigrationsPath string `toml:"migrations_path"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limiting, per client IP
	RateLimitAllowed                    int      `toml:"rate_limit_allowed"`
	RateLimitWindow                     Duration `toml:"rate_limit_window"`
	LoginRateLimitAllowedPerMin         int      `toml:"login_rate_limit_allowed_per_min"`
	AuthenticatedRateLimitAllowedPerMin int      `toml:"authenticated_rate_limit_allowed_per_min"`

	// auth
	SessionTTL     Duration `toml:"session_ttl"`
	AllowedOrigins []string `toml:"allowed_origins"`

	// domain
	ProfileCacheSizeMB int    `toml:"profile_cache_size_mb"`
	CalorieStrategy    string `toml:"calorie_strategy"`
}

// Duration lets the TOML file hold values like "168h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.RateLimitAllowed <= 0 {
		c.RateLimitAllowed = 100
	}
	if c.RateLimitWindow.Duration <= 0 {
		c.RateLimitWindow.Duration = 15 * time.Minute
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 5
	}
	if c.AuthenticatedRateLimitAllowedPerMin <= 0 {
		c.AuthenticatedRateLimitAllowedPerMin = 60
	}
	if c.SessionTTL.Duration <= 0 {
		c.SessionTTL.Duration = 7 * 24 * time.Hour
	}
	if c.ProfileCacheSizeMB <= 0 {
		c.ProfileCacheSizeMB = 10
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "./migrations"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}
