package ratelimit

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	cfg.Enabled = true
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.Now
	t.Cleanup(l.Stop)
	return l, clock
}

func TestBucket_TakeAndRefill(t *testing.T) {
	start := time.Unix(0, 0)
	b := newBucket(3, 1, start)

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := b.take(start)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, remaining, full := b.take(start)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, start.Add(3*time.Second), full)
	assert.Equal(t, time.Second, b.nextToken())

	allowed, _, _ = b.take(start.Add(1100 * time.Millisecond))
	assert.True(t, allowed, "one token refills after a second")

	// Refill never exceeds capacity.
	_, remaining, full = b.take(start.Add(time.Hour))
	assert.Equal(t, 2, remaining)
	assert.Equal(t, start.Add(time.Hour+time.Second), full)
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{DefaultLimit: 5, DefaultWindow: time.Minute})

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("10.0.0.1", http.MethodGet, "/applications")
		require.True(t, allowed)
		assert.Equal(t, 5, info.Limit)
		assert.Equal(t, 4-i, info.Remaining)
	}

	allowed, info := l.Allow("10.0.0.1", http.MethodGet, "/applications")
	assert.False(t, allowed)
	assert.InDelta(t, float64(12*time.Second), float64(info.RetryAfter), float64(time.Millisecond))

	// Other clients have their own buckets.
	allowed, _ = l.Allow("10.0.0.2", http.MethodGet, "/applications")
	assert.True(t, allowed)

	clock.Advance(13 * time.Second)
	allowed, _ = l.Allow("10.0.0.1", http.MethodGet, "/applications")
	assert.True(t, allowed)
}

func TestLimiter_StrictTier(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(10, time.Hour, 100),
	})

	for i := 0; i < 2; i++ {
		allowed, info := l.Allow("c", http.MethodPost, "/reports")
		require.True(t, allowed)
		assert.Equal(t, 10, info.Limit)
	}
	allowed, info := l.Allow("c", http.MethodPost, "/reports")
	assert.False(t, allowed)
	assert.InDelta(t, float64(6*time.Minute), float64(info.RetryAfter), float64(time.Millisecond))

	// Processing extracts has a separate strict bucket.
	allowed, _ = l.Allow("c", http.MethodPost, "/extracts/process")
	assert.True(t, allowed)

	// Reads are unaffected.
	allowed, info = l.Allow("c", http.MethodGet, "/reports")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_SharedBucketPerRule(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Rules:         []Rule{{Method: http.MethodDelete, Path: "/applications/{id}", Limit: 2, Window: time.Minute}},
	})

	allowed, _ := l.Allow("c", http.MethodDelete, "/applications/1")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", http.MethodDelete, "/applications/2")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", http.MethodDelete, "/applications/3")
	assert.False(t, allowed, "ids share the route bucket")
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{DefaultLimit: 1, DefaultWindow: time.Hour})
	for i := 0; i < 20; i++ {
		allowed, info := l.Allow("c", http.MethodGet, "/health")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_WhitelistBlacklistDisabled(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"trusted": true},
		Blacklist:     map[string]bool{"banned": true},
	})

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("trusted", http.MethodGet, "/applications")
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow("banned", http.MethodGet, "/health")
	assert.False(t, allowed)

	disabled := NewLimiter(&Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Hour})
	defer disabled.Stop()
	for i := 0; i < 3; i++ {
		allowed, info := disabled.Allow("c", http.MethodPost, "/reports")
		assert.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{DefaultLimit: 100, DefaultWindow: time.Hour})

	var allowedCount atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if ok, _ := l.Allow("c", http.MethodGet, "/applications"); ok {
					allowedCount.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowedCount.Load())
}

func TestLimiter_Sweep(t *testing.T) {
	cfg := &Config{DefaultLimit: 10, DefaultWindow: time.Minute, IdleTTL: time.Hour}
	l, clock := newTestLimiter(t, cfg)

	l.Allow("old", http.MethodGet, "/applications")
	clock.Advance(50 * time.Minute)
	l.Allow("new", http.MethodGet, "/applications")
	assert.Equal(t, 2, l.sweep())

	clock.Advance(20 * time.Minute)
	assert.Equal(t, 1, l.sweep())
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestMatch(t *testing.T) {
	rules := DefaultRules(10, time.Hour, 100)

	tests := []struct {
		method, path string
		wantOK       bool
		wantLimit    int
	}{
		{http.MethodGet, "/health", true, 0},
		{http.MethodPost, "/reports", true, 10},
		{http.MethodPost, "/reports/", true, 10},
		{http.MethodPost, "/extracts/process", true, 10},
		{http.MethodPut, "/applications/42", true, 100},
		{http.MethodDelete, "/resumes/3", true, 100},
		{http.MethodGet, "/applications/export.xlsx", true, 30},
		{http.MethodGet, "/applications/42", false, 0},
		{http.MethodPut, "/applications", false, 0},
		{http.MethodPut, "/applications/42/extra", false, 0},
		{http.MethodPost, "/health", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rule, ok := Match(tt.method, tt.path, rules)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLimit, rule.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvDefaultLimit, "50")
	t.Setenv(EnvStrictLimit, "3")
	t.Setenv(EnvStrictWindow, "10m")
	t.Setenv(EnvWhitelist, " 127.0.0.1 , ::1,")
	t.Setenv(EnvCleanupInterval, "not-a-duration")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
	assert.Equal(t, map[string]bool{"127.0.0.1": true, "::1": true}, cfg.Whitelist)
	assert.Empty(t, cfg.Blacklist)

	rule, ok := Match(http.MethodPost, "/reports", cfg.Rules)
	require.True(t, ok)
	assert.Equal(t, 3, rule.Limit)
	assert.Equal(t, 10*time.Minute, rule.Window)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv(EnvEnabled, "false")
	assert.Equal(t, &Config{Enabled: false}, LoadConfig())
}
