// Package api implements the single choke point for all backend calls:
// bearer injection, the one-shot refresh-and-retry protocol on 401, and
// translation of error envelopes into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/coosanta-bit/medi/internal/token"
	"github.com/coosanta-bit/medi/pkg/apierror"
	"github.com/coosanta-bit/medi/pkg/httpclient"
)

const refreshPath = "/auth/refresh"

// Client issues JSON requests against the backend. All verbs share one
// algorithm: attach a bearer token when one is stored, send, and on a 401
// that had a bearer attached run exactly one refresh followed by exactly one
// resend. The retry bound is enforced by an explicit attempt state, not
// recursion.
type Client struct {
	baseURL string
	doer    httpclient.Doer
	store   *token.Store
	logger  *slog.Logger
}

// New creates an API client rooted at baseURL.
func New(baseURL string, doer httpclient.Doer, store *token.Store, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		store:   store,
		logger:  logger,
	}
}

// Get issues a GET request and decodes the 2xx body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// attempt tracks where a call is in the refresh protocol. A call is either on
// its first send or on its single post-refresh resend; there is no third state.
type attempt int

const (
	attemptInitial attempt = iota
	attemptRetry
)

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	pair, err := c.store.Read()
	if err != nil {
		// An unreadable store degrades to an anonymous request.
		c.logger.DebugContext(ctx, "token store read failed", slog.String("error", err.Error()))
	}
	bearer := pair.AccessToken

	requestID := uuid.NewString()
	log := c.logger.With(
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	state := attemptInitial
	for {
		resp, err := c.send(ctx, method, path, payload, bearer, requestID)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}

		if resp.StatusCode == http.StatusUnauthorized && bearer != "" && state == attemptInitial {
			newAccess, refreshed := c.refresh(ctx, log)
			if refreshed {
				_ = resp.Body.Close()
				bearer = newAccess
				state = attemptRetry
				log.DebugContext(ctx, "access token refreshed, retrying request")
				continue
			}
			// Refresh failed: fall through with the original 401 response.
			// Stored tokens stay untouched; session validity is the session
			// controller's call, not ours.
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := apierror.FromResponse(resp)
			log.DebugContext(ctx, "request failed",
				slog.Int("status", apiErr.Status),
				slog.String("code", apiErr.Code),
			)
			return apiErr
		}

		return decodeBody(resp, out)
	}
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, bearer, requestID string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.doer.Do(ctx, req)
}

// refresh runs the refresh sub-protocol: at most one unauthenticated call to
// the refresh endpoint. On success the new pair is persisted and the new
// access token returned. On any failure the stored tokens are left untouched.
func (c *Client) refresh(ctx context.Context, log *slog.Logger) (string, bool) {
	pair, err := c.store.Read()
	if err != nil || pair.RefreshToken == "" {
		return "", false
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": pair.RefreshToken})
	if err != nil {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(ctx, req)
	if err != nil {
		log.DebugContext(ctx, "token refresh failed", slog.String("error", err.Error()))
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.DebugContext(ctx, "token refresh rejected", slog.Int("status", resp.StatusCode))
		return "", false
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return "", false
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return "", false
	}

	if err := c.store.Save(tokens.AccessToken, tokens.RefreshToken); err != nil {
		log.DebugContext(ctx, "persisting refreshed tokens failed", slog.String("error", err.Error()))
		return "", false
	}
	return tokens.AccessToken, true
}

func decodeBody(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
