package ratelimit

import (
	"fmt"
	"testing"
	"time"
)

func burstOnlyConfig(path, method string, burst int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Tiers: []Tier{
			// Tiny refill rate so tests only see the burst capacity.
			{Path: path, Method: method, Limit: 1, Window: time.Hour, Burst: burst},
		},
	}
}

func TestAllowWithinBurst(t *testing.T) {
	l := NewLimiter(burstOnlyConfig("/api/upload", "POST", 3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/upload", "POST")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, info := l.Allow("1.2.3.4", "/api/upload", "POST")
	if allowed {
		t.Fatal("request over burst should be denied")
	}
	if info.RetryAfter <= 0 {
		t.Errorf("RetryAfter = %v, want positive", info.RetryAfter)
	}
	if info.Limit != 1 {
		t.Errorf("Limit = %d, want 1", info.Limit)
	}
}

func TestClientsAreIndependent(t *testing.T) {
	l := NewLimiter(burstOnlyConfig("/api/upload", "POST", 1))
	defer l.Stop()

	if allowed, _ := l.Allow("1.1.1.1", "/api/upload", "POST"); !allowed {
		t.Fatal("first client should be allowed")
	}
	if allowed, _ := l.Allow("1.1.1.1", "/api/upload", "POST"); allowed {
		t.Fatal("first client should be exhausted")
	}
	if allowed, _ := l.Allow("2.2.2.2", "/api/upload", "POST"); !allowed {
		t.Fatal("second client has its own bucket")
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/api/upload", "POST"); !allowed {
			t.Fatal("disabled limiter must allow all requests")
		}
	}
}

func TestHealthIsUnlimited(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/api/health", "GET"); !allowed {
			t.Fatal("health endpoint must be unlimited")
		}
	}
}

func TestMatchTier(t *testing.T) {
	tiers := defaultTiers()

	tests := []struct {
		path, method string
		wantPath     string
		wantNil      bool
	}{
		{"/api/upload", "POST", "/api/upload", false},
		{"/api/dataset/summary", "GET", "/api/dataset/", false},
		{"/api/agent/query", "POST", "/api/agent/query", false},
		{"/api/upload", "GET", "", true},
		{"/api/unknown", "GET", "", true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			tier := matchTier(tt.path, tt.method, tiers)
			if tt.wantNil {
				if tier != nil {
					t.Fatalf("matchTier = %+v, want nil", tier)
				}
				return
			}
			if tier == nil || tier.Path != tt.wantPath {
				t.Fatalf("matchTier = %+v, want path %q", tier, tt.wantPath)
			}
		})
	}
}

func TestTokenBucketRefill(t *testing.T) {
	tb := newTokenBucket(1, 100) // 100 tokens/second

	if !tb.allow() {
		t.Fatal("fresh bucket should have a token")
	}
	if tb.allow() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(20 * time.Millisecond)
	if !tb.allow() {
		t.Fatal("bucket should have refilled")
	}
}
