package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"go-vacancy-backend/pkg/database"
)

// DefaultMaxCVBytes is the upload cap for résumé files (5 MiB).
const DefaultMaxCVBytes = 5 * 1024 * 1024

type Config struct {
	Port     string `env:"PORT" envDefault:"3000"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBUrl    string `env:"DATABASE_URL" envDefault:"database.db"`

	// Uploads
	UploadDir  string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxCVBytes int64  `env:"MAX_CV_BYTES" envDefault:"5242880"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	// IPs or CIDRs whose X-Forwarded-For is believed. Empty trusts none and
	// the client IP is the TCP peer.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Redis (optional, rate limiting only)
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Rate Limiting Configuration
	RateLimitWindowSeconds   int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	RateLimitLoginThreshold  int `env:"RATE_LIMIT_LOGIN_THRESHOLD" envDefault:"10"`
	RateLimitUploadThreshold int `env:"RATE_LIMIT_UPLOAD_THRESHOLD" envDefault:"20"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Dialect is derived from DBDriver.
	Dialect database.Dialect `env:"-"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	dialect, err := database.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, err
	}
	cfg.Dialect = dialect

	for i, p := range cfg.TrustedProxies {
		p = strings.TrimSpace(p)
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: invalid address %q", p)
			}
		}
		cfg.TrustedProxies[i] = p
	}

	if cfg.MaxCVBytes <= 0 {
		cfg.MaxCVBytes = DefaultMaxCVBytes
	}
	cfg.UploadDir = strings.TrimRight(cfg.UploadDir, "/")
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	return cfg, nil
}

// Debug reports whether the server runs outside gin's release mode.
func (c *Config) Debug() bool {
	return c.GinMode != "release"
}

// RateLimitWindow is the fixed window shared by all limiters.
func (c *Config) RateLimitWindow() time.Duration {
	if c.RateLimitWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}
