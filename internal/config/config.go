package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds everything the gateway needs at startup
type Config struct {
	ServerAddr string
	LogLevel   string

	Upstream UpstreamConfig
	Session  SessionConfig
	Redis    RedisConfig

	CountdownTick  time.Duration
	UploadMaxBytes int64
	Previews       PreviewConfig
}

// PreviewConfig bounds the images staged in memory before a listing is submitted
type PreviewConfig struct {
	MaxPerSession int
	TTL           time.Duration
}

// UpstreamConfig points at the marketplace REST API
type UpstreamConfig struct {
	BaseURL      string
	AssetBaseURL string
	Timeout      time.Duration
}

// SessionConfig selects the session store and cookie settings
type SessionConfig struct {
	Store         string
	CookieName    string
	TTL           time.Duration
	Secure        bool
	SweepInterval time.Duration
}

// RedisConfig is used when Session.Store is "redis"
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

const envPrefix = "CARMARKET"

// Load reads .env files, flags and CARMARKET_* environment variables, in that order of precedence
// (flags set explicitly win over env, env wins over .env files, which win over defaults).
func Load(args []string) (Config, error) {
	// .env.local overrides .env; godotenv never overwrites variables already present.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	fs := pflag.NewFlagSet("carmarket-bff", pflag.ContinueOnError)

	// server
	fs.String("server-addr", ":8080", "address the gateway listens on")
	fs.String("log-level", "info", "logrus level")

	// upstream
	fs.String("api-base-url", "http://localhost:5000", "marketplace REST API base URL")
	fs.String("asset-base-url", "http://localhost:5000", "base URL for profile and product images")
	fs.Duration("api-timeout", 10*time.Second, "per-request timeout towards the API")

	// session
	fs.String("session-store", "memory", "memory or redis")
	fs.String("session-cookie", "carmarket_session", "session cookie name")
	fs.Duration("session-ttl", 24*time.Hour, "session lifetime")
	fs.Bool("session-secure-cookie", false, "mark the session cookie Secure")
	fs.Duration("session-sweep-interval", time.Minute, "how often expired sessions are torn down")

	// redis
	fs.String("redis-addr", "localhost:6379", "")
	fs.String("redis-password", "", "")
	fs.Int("redis-db", 0, "")
	fs.String("redis-key-prefix", "carmarket:session:", "")

	// widgets
	fs.Duration("countdown-tick", time.Second, "auction countdown refresh interval")
	fs.Int64("upload-max-bytes", 5<<20, "largest accepted image upload")
	fs.Int("preview-max-per-session", 10, "staged image previews kept per session")
	fs.Duration("preview-ttl", time.Hour, "lifetime of an uncommitted image preview")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Config{
		ServerAddr: v.GetString("server-addr"),
		LogLevel:   v.GetString("log-level"),
		Upstream: UpstreamConfig{
			BaseURL:      strings.TrimRight(v.GetString("api-base-url"), "/"),
			AssetBaseURL: strings.TrimRight(v.GetString("asset-base-url"), "/"),
			Timeout:      v.GetDuration("api-timeout"),
		},
		Session: SessionConfig{
			Store:         v.GetString("session-store"),
			CookieName:    v.GetString("session-cookie"),
			TTL:           v.GetDuration("session-ttl"),
			Secure:        v.GetBool("session-secure-cookie"),
			SweepInterval: v.GetDuration("session-sweep-interval"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("redis-addr"),
			Password:  v.GetString("redis-password"),
			DB:        v.GetInt("redis-db"),
			KeyPrefix: v.GetString("redis-key-prefix"),
		},
		CountdownTick:  v.GetDuration("countdown-tick"),
		UploadMaxBytes: v.GetInt64("upload-max-bytes"),
		Previews: PreviewConfig{
			MaxPerSession: v.GetInt("preview-max-per-session"),
			TTL:           v.GetDuration("preview-ttl"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail later at runtime
func (c Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("config: server-addr is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("config: api-base-url is required")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("config: api-timeout must be positive")
	}
	switch c.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: unknown session-store %q", c.Session.Store)
	}
	if c.CountdownTick <= 0 {
		return fmt.Errorf("config: countdown-tick must be positive")
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("config: upload-max-bytes must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("config: session-sweep-interval must be positive")
	}
	if c.Previews.MaxPerSession <= 0 || c.Previews.TTL <= 0 {
		return fmt.Errorf("config: preview limits must be positive")
	}
	return nil
}
