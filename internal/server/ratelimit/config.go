package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits one route. Path is matched segment by segment; a segment
// written as {name} matches any single segment.
type Rule struct {
	Method string
	Path   string
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration // refill period for Limit tokens
	Burst  int           // bucket size; Limit when 0
}

func (r Rule) key() string {
	return r.Method + " " + r.Path
}

func (r Rule) capacity() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // buckets unused this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Rules           []Rule
}

// Environment variables read by LoadConfig.
const (
	EnvEnabled         = "RATE_LIMIT_ENABLED"
	EnvDefaultLimit    = "RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow   = "RATE_LIMIT_DEFAULT_WINDOW"
	EnvStrictLimit     = "RATE_LIMIT_STRICT_LIMIT"
	EnvStrictWindow    = "RATE_LIMIT_STRICT_WINDOW"
	EnvWriteLimit      = "RATE_LIMIT_WRITE_LIMIT"
	EnvCleanupInterval = "RATE_LIMIT_CLEANUP_INTERVAL"
	EnvWhitelist       = "RATE_LIMIT_WHITELIST"
	EnvBlacklist       = "RATE_LIMIT_BLACKLIST"
)

// DefaultConfig is used when NewLimiter receives nil.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		Rules:           DefaultRules(10, time.Hour, 100),
	}
}

// LoadConfig builds a Config from RATE_LIMIT_* environment variables on
// top of DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool(EnvEnabled, cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.DefaultLimit = envInt(EnvDefaultLimit, cfg.DefaultLimit)
	cfg.DefaultWindow = envDuration(EnvDefaultWindow, cfg.DefaultWindow)
	cfg.CleanupInterval = envDuration(EnvCleanupInterval, cfg.CleanupInterval)
	cfg.Whitelist = parseIPList(os.Getenv(EnvWhitelist))
	cfg.Blacklist = parseIPList(os.Getenv(EnvBlacklist))
	cfg.Rules = DefaultRules(
		envInt(EnvStrictLimit, 10),
		envDuration(EnvStrictWindow, time.Hour),
		envInt(EnvWriteLimit, 100),
	)
	return cfg
}

// DefaultRules returns the per-route limits. Report generation and extract
// processing start backend analysis jobs and get the strict tier; other
// writes get the write tier. Reads fall through to the default limit.
func DefaultRules(strictLimit int, strictWindow time.Duration, writeLimit int) []Rule {
	strict := func(method, path string) Rule {
		return Rule{Method: method, Path: path, Limit: strictLimit, Window: strictWindow, Burst: 2}
	}
	write := func(method, path string) Rule {
		return Rule{Method: method, Path: path, Limit: writeLimit, Window: time.Minute, Burst: 10}
	}

	return []Rule{
		strict(http.MethodPost, "/reports"),
		strict(http.MethodPost, "/extracts/process"),

		write(http.MethodPost, "/applications"),
		write(http.MethodPut, "/applications/{id}"),
		write(http.MethodDelete, "/applications/{id}"),
		write(http.MethodDelete, "/resumes/{id}"),

		{Method: http.MethodGet, Path: "/applications/export.xlsx", Limit: 30, Window: time.Minute, Burst: 5},
	}
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
