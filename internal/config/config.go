package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Whop      WhopConfig      `mapstructure:"whop"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Session   SessionConfig   `mapstructure:"session"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Runtime flags, set from the command line rather than the config file.
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// WhopConfig covers the OAuth/payment provider that owns authentication.
type WhopConfig struct {
	APIBase      string `mapstructure:"api_base"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	PlanID       string `mapstructure:"plan_id"`
	// AppURL is the public frontend origin; OAuth redirects land there.
	AppURL string `mapstructure:"app_url"`
	// MembershipCacheTTL bounds how stale a cached membership check may be.
	MembershipCacheTTL time.Duration `mapstructure:"membership_cache_minutes"`
}

// AnalysisConfig points at the external AI analysis service.
type AnalysisConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout_seconds"`
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	MaxAge     time.Duration `mapstructure:"max_age_hours"`
	Secure     bool          `mapstructure:"secure"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("FIRE_PLANNER")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Whop OAuth
	viper.BindEnv("whop.api_base", "WHOP_API_BASE")
	viper.BindEnv("whop.client_id", "WHOP_CLIENT_ID")
	viper.BindEnv("whop.client_secret", "WHOP_CLIENT_SECRET")
	viper.BindEnv("whop.plan_id", "WHOP_PLAN_ID")
	viper.BindEnv("whop.app_url", "APP_URL")

	// Analysis service
	viper.BindEnv("analysis.base_url", "ANALYSIS_BASE_URL")
	viper.BindEnv("analysis.api_key", "ANALYSIS_API_KEY")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("whop.api_base", "https://api.whop.com")
	viper.SetDefault("whop.membership_cache_minutes", 10)
	viper.SetDefault("analysis.timeout_seconds", 120)
	viper.SetDefault("session.cookie_name", "fire_planner_session")
	viper.SetDefault("session.max_age_hours", 168)
	viper.SetDefault("rate_limit.max_requests", 600)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Session.MaxAge = cfg.Session.MaxAge * time.Hour
	cfg.Analysis.Timeout = cfg.Analysis.Timeout * time.Second
	cfg.Whop.MembershipCacheTTL = cfg.Whop.MembershipCacheTTL * time.Minute

	if cfg.Server.Mode == "release" {
		if cfg.Whop.ClientSecret == "" {
			return nil, fmt.Errorf("whop client secret must be set in release mode")
		}
		if cfg.Analysis.APIKey == "" {
			return nil, fmt.Errorf("analysis api key must be set in release mode")
		}
	}

	return &cfg, nil
}
