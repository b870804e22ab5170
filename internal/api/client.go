package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client wraps all outbound requests to the evaluation backend.
//
// Every failure — connection error, unreadable body, non-JSON body — is
// collapsed to a nil result after logging; no error ever crosses this
// boundary. Status codes are deliberately not inspected: a body that
// parses as JSON is the only success signal, matching the backend's
// contract of returning a JSON document for every handled request.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	token string
}

// NewClient creates a Client for the given base URL. A zero timeout
// disables the client-side deadline.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "api_client").Logger(),
	}
}

// SetToken installs the bearer token attached to subsequent requests.
// Only the session manager calls this.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ClearToken removes the held bearer token.
func (c *Client) ClearToken() {
	c.token = ""
}

// HasToken reports whether a bearer token is currently held.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Call issues one request against the backend and returns the parsed JSON
// body, or nil if anything went wrong. body is serialized as JSON when
// non-nil.
func (c *Client) Call(ctx context.Context, method, endpoint string, body interface{}) json.RawMessage {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.log.Error().Err(err).Str("endpoint", endpoint).Msg("marshal request body")
			return nil
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("build request")
		return nil
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("request failed")
		return nil
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("read response body")
		return nil
	}

	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("endpoint", endpoint).
			Msg("response is not valid JSON")
		return nil
	}
	if bytes.Equal(raw, []byte("null")) {
		// A literal null body carries no more signal than a failure.
		return nil
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("request completed")

	return json.RawMessage(raw)
}
