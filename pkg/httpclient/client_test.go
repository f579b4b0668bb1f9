package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.Timeout = 5 * time.Second
	return cfg
}

func newRequest(t *testing.T, method, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	return req
}

func TestClient_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "medi-client", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(fastConfig())
	resp, err := client.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(fastConfig())
	resp, err := client.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ReturnsLastResponseWhenRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(fastConfig())
	resp, err := client.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err, "an exhausted 5xx is a response, not an error")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
}

func TestClient_DoesNotRetryNotImplemented(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotImplemented)
	}))
	defer server.Close()

	client := New(fastConfig())
	resp, err := client.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(fastConfig())
	resp, err := client.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_PreservesExistingUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(fastConfig())
	req := newRequest(t, http.MethodGet, server.URL)
	req.Header.Set("User-Agent", "custom-agent")
	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	resp.Body.Close()
}

func testBreaker(next Doer, cfg BreakerConfig) *Breaker {
	return NewBreaker(next, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBreaker_PassesResponsesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"no such job"}}`))
	}))
	defer server.Close()

	b := testBreaker(New(fastConfig()), DefaultBreakerConfig("test-4xx"))
	resp, err := b.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "NOT_FOUND", "the error envelope survives the breaker")
}

func TestBreaker_ServerErrorBodyStillReadable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"DB_DOWN","message":"storage unavailable"}}`))
	}))
	defer server.Close()

	cfg := DefaultBreakerConfig("test-5xx-body")
	cfg.MinRequests = 100 // keep the breaker closed for this test
	b := testBreaker(New(fastConfig()), cfg)

	resp, err := b.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "DB_DOWN")
}

func TestBreaker_OpensAfterRepeatedServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := DefaultBreakerConfig("test-open")
	cfg.MinRequests = 3
	cfg.FailureRatio = 0.5

	transport := fastConfig()
	transport.MaxRetries = 0
	b := testBreaker(New(transport), cfg)

	for i := 0; i < 3; i++ {
		resp, err := b.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
		require.NoError(t, err)
		resp.Body.Close()
	}

	before := calls.Load()
	_, err := b.Do(context.Background(), newRequest(t, http.MethodGet, server.URL))
	require.ErrorIs(t, err, ErrBreakerOpen)
	assert.Equal(t, before, calls.Load(), "an open breaker short-circuits before the network")
}
