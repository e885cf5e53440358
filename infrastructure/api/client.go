// Package api implements the HTTP client for the Chainfly tender API. One
// Client wraps every endpoint group; request and response logging is
// centralized here, as are timeouts and the extraction of user-facing
// error detail from failed responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	pkgerrors "chainfly-client/pkg/errors"
)

// DefaultTimeout bounds every request. The API itself offers no
// cancellation, so the transport-level timeout is the only thing keeping a
// hung retrieval from stalling forever.
const DefaultTimeout = 10 * time.Second

// Client talks to the Chainfly tender API
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates an API client for the given base URL. A zero timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Ping reports whether the server answers on its root endpoint
func (c *Client) Ping(ctx context.Context) bool {
	err := c.getJSON(ctx, "/", nil, nil)
	return err == nil
}

// getJSON issues a GET and decodes the JSON response into out (out may be
// nil to discard the body)
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// postJSON issues a POST with a JSON body and decodes the response into out
func (c *Client) postJSON(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.NewInternalError("failed to encode request body").WithCause(err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, query, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// deleteJSON issues a DELETE and discards the response body
func (c *Client) deleteJSON(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// getBytes issues a GET and returns the raw response body
func (c *Client) getBytes(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	c.logRequest(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(req, err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	c.logResponse(req, resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, pkgerrors.NewExternalError(extractDetail(body, resp.Status), resp.StatusCode)
	}
	if readErr != nil {
		return nil, pkgerrors.NewNetworkError("failed to read response body", readErr)
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to build request").WithCause(err)
	}
	return req, nil
}

// do executes the request, logs it, and decodes a JSON response into out
func (c *Client) do(req *http.Request, out interface{}) error {
	c.logRequest(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(req, err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	c.logResponse(req, resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return pkgerrors.NewExternalError(extractDetail(body, resp.Status), resp.StatusCode)
	}
	if readErr != nil {
		return pkgerrors.NewNetworkError("failed to read response body", readErr)
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return pkgerrors.NewInternalError("failed to decode response").WithCause(err)
		}
	}
	return nil
}

func (c *Client) logRequest(req *http.Request) {
	c.logger.Info("API request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)
}

func (c *Client) logResponse(req *http.Request, status int) {
	if status >= http.StatusBadRequest {
		c.logger.Error("API response error",
			zap.Int("status", status),
			zap.String("url", req.URL.String()),
		)
		return
	}
	c.logger.Info("API response",
		zap.Int("status", status),
		zap.String("url", req.URL.String()),
	)
}

func (c *Client) transportError(req *http.Request, err error) error {
	c.logger.Error("API request failed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.NewTimeoutError(req.Method + " " + req.URL.Path)
	}
	return pkgerrors.NewNetworkError(fmt.Sprintf("request to %s failed", req.URL.Path), err)
}

// extractDetail pulls the most useful message out of an error response
// body: the server's "detail" field, then "message", then the HTTP status
// text
func extractDetail(body []byte, fallback string) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}
