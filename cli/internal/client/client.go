// ABOUTME: HTTP client for the Drone Design Calculator API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// Client is the API client for the Drone Design Calculator backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the backend URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var health models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Defaults calls GET /api/v1/design/defaults
func (c *Client) Defaults(ctx context.Context) (*models.DefaultsResponse, error) {
	var defaults models.DefaultsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/design/defaults", nil, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

// Calculate calls POST /api/v1/design/calculate. A non-empty display style
// ("precise" or "whole") asks the backend for formatted rows as well.
func (c *Client) Calculate(ctx context.Context, inputs models.DesignInputs, display string) (*models.CalculateResponse, error) {
	path := "/api/v1/design/calculate"
	if display != "" {
		path += "?display=" + url.QueryEscape(display)
	}

	var result models.CalculateResponse
	if err := c.do(ctx, http.MethodPost, path, inputs, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Compare calls POST /api/v1/design/compare
func (c *Client) Compare(ctx context.Context, current, proposed models.DesignInputs) (*models.DesignComparison, error) {
	req := models.CompareRequest{Current: current, Proposed: proposed}

	var comparison models.DesignComparison
	if err := c.do(ctx, http.MethodPost, "/api/v1/design/compare", req, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

// do sends one request and decodes a 200 response into out
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	if errResp.Details != "" {
		return fmt.Errorf("backend error: %s: %s", errResp.Error, errResp.Details)
	}
	return fmt.Errorf("backend error: %s", errResp.Error)
}
