package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier is the limit applied to one endpoint prefix and method.
type Tier struct {
	Path   string        // exact path, or prefix when ending with "/"
	Method string        // HTTP method
	Limit  int           // requests per window; 0 means unlimited
	Window time.Duration // refill window
	Burst  int           // burst capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Tiers           []Tier
}

// LoadConfig loads rate limiting configuration from environment
// variables, with endpoint tiers matching the API surface.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Tiers:           defaultTiers(),
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Tiers:           defaultTiers(),
	}
}

// defaultTiers ranks endpoints by cost: dataset replacement is the
// most expensive, agent queries moderate, reads cheap, health free.
func defaultTiers() []Tier {
	return []Tier{
		{Path: "/api/health", Method: "GET", Limit: 0},
		{Path: "/api/upload", Method: "POST", Limit: 12, Window: time.Hour, Burst: 3},
		{Path: "/api/agent/query", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/agent/runs", Method: "GET", Limit: 300, Window: time.Minute},
		{Path: "/api/dataset/", Method: "GET", Limit: 300, Window: time.Minute},
	}
}

// matchTier resolves the tier for a path and method: exact path match
// first, then prefix tiers (paths ending with "/").
func matchTier(path, method string, tiers []Tier) *Tier {
	for i := range tiers {
		t := &tiers[i]
		if t.Method == method && t.Path == path {
			return t
		}
	}
	for i := range tiers {
		t := &tiers[i]
		if t.Method == method && strings.HasSuffix(t.Path, "/") && strings.HasPrefix(path, t.Path) {
			return t
		}
	}
	return nil
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
