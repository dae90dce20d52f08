package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
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

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// zero keeps the pool default
	PostgresMaxConns int32 `toml:"postgres_max_conns"`
	// PostgresURL, when set, overrides host, port and db name
	PostgresURL string `toml:"-"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// auth
	RequireAdminAuth     bool `toml:"require_admin_auth"`
	TokenValidityMinutes int  `toml:"token_validity_minutes"`
	AuthRateLimitPerMin  int  `toml:"auth_rate_limit_per_min"`

	// mail
	SMTPHost                 string `toml:"smtp_host"`
	SMTPPort                 int    `toml:"smtp_port"`
	MailFrom                 string `toml:"mail_from"`
	MailDelayMillis          int    `toml:"mail_delay_millis"`
	SubscribeRateLimitPerMin int    `toml:"subscribe_rate_limit_per_min"`

	// media
	MediaRootPath   string `toml:"media_root_path"`
	MediaBaseURL    string `toml:"media_base_url"`
	MaxUploadSizeMB int    `toml:"max_upload_size_mb"`

	// blog
	LatestBlogsCacheTTLSeconds int `toml:"latest_blogs_cache_ttl_seconds"`

	// cors
	AllowedOrigins []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML config for the given env, fills the defaults and applies
// environment overrides (an optional .env file is loaded first).
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Tracef("no .env file loaded: %s", err)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TokenValidityMinutes <= 0 {
		c.TokenValidityMinutes = 120
	}
	if c.AuthRateLimitPerMin <= 0 {
		c.AuthRateLimitPerMin = 15
	}
	if c.SubscribeRateLimitPerMin <= 0 {
		c.SubscribeRateLimitPerMin = 10
	}
	if c.SMTPHost == "" {
		c.SMTPHost = "smtp.gmail.com"
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
	if c.MailDelayMillis <= 0 {
		c.MailDelayMillis = 4000
	}
	if c.MediaRootPath == "" {
		c.MediaRootPath = "./uploads"
	}
	if c.MediaBaseURL == "" {
		c.MediaBaseURL = "/media"
	}
	if c.MaxUploadSizeMB <= 0 {
		c.MaxUploadSizeMB = 10
	}
	if c.LatestBlogsCacheTTLSeconds <= 0 {
		c.LatestBlogsCacheTTLSeconds = 300
	}
}

func (c *Config) applyEnvOverrides() error {
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid PORT env var [%s]: %w", portStr, err)
		}
		c.Port = port
	}
	if dbURL := os.Getenv("ABCDE_DB_URL"); dbURL != "" {
		c.PostgresURL = dbURL
	}
	return nil
}

func (c *Config) TokenValidity() time.Duration {
	return time.Duration(c.TokenValidityMinutes) * time.Minute
}

func (c *Config) MailDelay() time.Duration {
	return time.Duration(c.MailDelayMillis) * time.Millisecond
}

func (c *Config) MaxUploadSize() int64 {
	return int64(c.MaxUploadSizeMB) << 20
}

func (c *Config) LatestBlogsCacheTTL() time.Duration {
	return time.Duration(c.LatestBlogsCacheTTLSeconds) * time.Second
}
