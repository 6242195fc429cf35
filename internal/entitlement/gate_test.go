package entitlement

import (
	"callguard/internal/failopen"
	"callguard/internal/providers"
	"callguard/internal/structures"
	"callguard/internal/testutil"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func newTestGate(t *testing.T, handler http.HandlerFunc) (*Gate, *testutil.MockReporter) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &structures.Config{
		Entitlement: structures.EntitlementConfig{
			BaseURL: srv.URL,
			APIKey:  "anon-key",
			Table:   "shops",
			Timeout: time.Second,
		},
	}
	reporter := &testutil.MockReporter{}
	g := NewGate(conf, providers.NewHTTPClientProvider(), &testutil.MockLogger{}, &testutil.MockMetrics{}, reporter).(*Gate)
	g.now = func() time.Time { return fixedNow }
	return g, reporter
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestIsEntitled_NoAccountSkipsRemote(t *testing.T) {
	var hits atomic.Int32
	g, _ := newTestGate(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	assert.True(t, g.IsEntitled(context.Background(), ""))
	assert.Equal(t, int32(0), hits.Load())
}

func TestIsEntitled_RequestShape(t *testing.T) {
	var gotPath, gotID, gotSelect, gotKey string
	g, _ := newTestGate(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotID = r.URL.Query().Get("id")
		gotSelect = r.URL.Query().Get("select")
		gotKey = r.Header.Get("apikey")
		_, _ = w.Write([]byte(`[]`))
	})

	g.IsEntitled(context.Background(), "shop-7")

	assert.Equal(t, "/rest/v1/shops", gotPath)
	assert.Equal(t, "eq.shop-7", gotID)
	assert.Equal(t, "subscription_until,is_active", gotSelect)
	assert.Equal(t, "anon-key", gotKey)
}

func TestIsEntitled_Decisions(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{"active and future expiry", `[{"subscription_until":"2026-11-01T00:00:00+00:00","is_active":true}]`, true},
		{"active but expired", `[{"subscription_until":"2026-10-01T00:00:00+00:00","is_active":true}]`, false},
		{"expiry equal to now", `[{"subscription_until":"2026-10-14T09:00:00Z","is_active":true}]`, false},
		{"inactive with future expiry", `[{"subscription_until":"2026-11-01T00:00:00Z","is_active":false}]`, false},
		{"active without expiry", `[{"subscription_until":null,"is_active":true}]`, false},
		{"is_active missing", `[{"subscription_until":"2026-11-01T00:00:00Z"}]`, false},
		{"date-only column", `[{"subscription_until":"2026-12-31","is_active":true}]`, true},
		{"no matching account", `[]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, reporter := newTestGate(t, respond(tt.body))
			assert.Equal(t, tt.expected, g.IsEntitled(context.Background(), "shop-1"))
			assert.Empty(t, reporter.Failures)
		})
	}
}

func TestIsEntitled_FailOpen(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		category failopen.Category
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}, failopen.TransportFailure},
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no", http.StatusUnauthorized)
		}, failopen.TransportFailure},
		{"not json", respond(`<html>`), failopen.MalformedResponse},
		{"object instead of rows", respond(`{"is_active":false}`), failopen.MalformedResponse},
		{"bad timestamp", respond(`[{"subscription_until":"next tuesday","is_active":false}]`), failopen.MalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, reporter := newTestGate(t, tt.handler)

			assert.True(t, g.IsEntitled(context.Background(), "shop-1"))
			require.Len(t, reporter.Failures, 1)
			assert.Equal(t, failopen.ComponentEntitlement, reporter.Failures[0].Component)
			assert.Equal(t, tt.category, reporter.Failures[0].Category)
		})
	}
}

func TestIsEntitled_TimeoutFailsOpen(t *testing.T) {
	release := make(chan struct{})
	g, reporter := newTestGate(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	g.timeout = 50 * time.Millisecond

	assert.True(t, g.IsEntitled(context.Background(), "shop-1"))
	require.Len(t, reporter.Failures, 1)
	assert.Equal(t, failopen.TransportFailure, reporter.Failures[0].Category)
}

func TestParseTimestamp(t *testing.T) {
	for _, v := range []string{
		"2026-11-01T00:00:00+00:00",
		"2026-11-01T00:00:00.123456+09:00",
		"2026-11-01T00:00:00",
		"2026-11-01 00:00:00+00",
		"2026-11-01",
	} {
		_, err := parseTimestamp(v)
		assert.NoError(t, err, v)
	}
	_, err := parseTimestamp("soon")
	assert.Error(t, err)
}
