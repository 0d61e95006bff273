// Package upstream is the portal's client for the backend REST API. The
// backend owns all persistence and business rules, the portal only fetches
// rows and forwards user intents.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ocn-community/volunteer-portal/internal/apperr"
	"github.com/ocn-community/volunteer-portal/internal/logger"
)

// Client calls the backend API
type Client struct {
	baseURL string
	http    *http.Client
	log     *log.Logger
}

// New creates a client for the backend at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger.Upstream(),
	}
}

// get performs an authenticated GET, decoding the JSON body into out.
// An empty token sends an unauthenticated request.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

// do performs a request, encoding body as JSON when non-nil and decoding the
// response into out when non-nil. Non-2xx statuses become classified errors.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Request failed", "method", method, "path", path, "error", err)
		return apperr.Wrap(apperr.FetchFailed, apperr.FetchFailed.DefaultMessage(), err)
	}
	defer resp.Body.Close()

	c.log.Debug("Request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if err := classifyStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.FetchFailed, "Unexpected response from the server.", err)
	}
	return nil
}

// classifyStatus maps the backend's status-code semantics onto the error
// taxonomy: 401 means the token went stale, 403 means the role is not
// allowed, any other non-2xx is a generic retryable failure carrying the
// body's message when one is present.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperr.New(apperr.TokenExpired)
	case http.StatusForbidden:
		return apperr.New(apperr.NotAuthorized)
	}

	message := apperr.FetchFailed.DefaultMessage()
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			message = payload.Message
		} else if payload.Error != "" {
			message = payload.Error
		}
	}

	return apperr.WithMessage(apperr.FetchFailed, message)
}
