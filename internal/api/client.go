package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client issues requests against the remote backend. It is a thin
// proxy: payloads pass through unchanged and no response is cached.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

// NewClient builds a client for the given base URL. The URL is
// normalized to end with a slash because endpoint paths are
// concatenated onto it. A nil httpClient falls back to
// http.DefaultClient, so the transport's own defaults apply; the client
// configures no timeout of its own.
func NewClient(baseURL string, httpClient *http.Client, logger *logrus.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}
}

// StatusError reports a non-2xx response from the backend. Callers
// translate it into a fixed user-facing message; the body is kept for
// logs only and is never shown to the user.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}

// do issues one request and decodes the JSON response into out when out
// is non-nil. Every request carries a generated X-Request-ID so client
// and backend logs can be correlated.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	log.Debug("calling backend")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("backend request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.WithField("status", resp.StatusCode).Warn("backend returned error status")
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
