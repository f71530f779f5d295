package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds the settings of the HTTP API.
type ServerConfig struct {
	Addr      string
	RedisAddr string
	LogLevel  string
	CacheTTL  time.Duration
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is believed.
	// Empty means the peer address is always the client.
	TrustedProxies []string
}

// LoadServerConfig reads MORTGAGE_* variables, optionally seeded from env files.
// Missing env files are ignored; variables already set in the process win.
func LoadServerConfig(envFiles ...string) (ServerConfig, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return ServerConfig{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := ServerConfig{
		Addr:      getEnv("MORTGAGE_ADDR", ":8080"),
		RedisAddr: os.Getenv("MORTGAGE_REDIS_ADDR"),
		LogLevel:  getEnv("MORTGAGE_LOG_LEVEL", "info"),
		CacheTTL:  time.Hour,

		TrustedProxies: splitList(os.Getenv("MORTGAGE_TRUSTED_PROXIES")),
	}
	if v := os.Getenv("MORTGAGE_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("invalid MORTGAGE_CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = ttl
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
