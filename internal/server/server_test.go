package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/jonathan/csm-portfolio/internal/seo"
	"github.com/jonathan/csm-portfolio/internal/server/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSite = seo.Site{Name: "Jordan Lee", Role: "Customer Success Manager", BaseURL: "https://example.com"}

// newTestServer creates a server over the authored metrics with rate limiting disabled
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWith(t, &ratelimit.Config{Enabled: false}, nil)
}

func newTestServerWith(t *testing.T, rl *ratelimit.Config, logger logrus.FieldLogger) *Server {
	t.Helper()
	store, err := metrics.LoadFile("../../data/metrics.json")
	require.NoError(t, err)

	s, err := New(Config{Port: 0, Store: store, Site: testSite, Logger: logger, RateLimit: rl})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

// do sends a request through the full middleware chain
func do(t *testing.T, s *Server, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics store")
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, s, http.MethodOptions, "/api/contact/validate", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRequestID_Generated(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", "")

	id := w.Header().Get(requestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_PropagatesValidCallerID(t *testing.T) {
	s := newTestServer(t)
	callerID := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, callerID)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, callerID, w.Header().Get(requestIDHeader))
}

func TestRequestID_ReplacesGarbage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "not a uuid")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.NotEqual(t, "not a uuid", w.Header().Get(requestIDHeader))
}

func TestLoggingMiddleware_RecordsRequest(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := newTestServerWith(t, &ratelimit.Config{Enabled: false}, logger)

	w := do(t, s, http.MethodGet, "/api/metrics/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var entry *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "request completed" {
			entry = e
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.Equal(t, "/api/metrics/does-not-exist", entry.Data["path"])
	assert.Equal(t, w.Header().Get(requestIDHeader), entry.Data["request_id"])
}

func TestRateLimit_ContactValidation(t *testing.T) {
	rl := ratelimit.DefaultConfig()
	rl.CleanupInterval = 0
	s := newTestServerWith(t, rl, nil)

	body := `{"name":"Ada Lovelace","email":"ada@example.com","message":"Hello there, let's talk."}`
	for i := 0; i < 3; i++ {
		w := do(t, s, http.MethodPost, "/api/contact/validate", body)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	}

	w := do(t, s, http.MethodPost, "/api/contact/validate", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])

	// Health probes are never limited
	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", "").Code)
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `portfolio_metric_value{category="satisfaction",id="nps-score",unit="NPS"} 84`)
	assert.Contains(t, body, "portfolio_metrics_trending_up 7")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(string(b), "ok")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStart_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	s := newTestServer(t)
	s.httpServer.Addr = ln.Addr().String()

	err = s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
