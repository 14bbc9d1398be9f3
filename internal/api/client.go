// Package api provides typed access to the Hangar platform API. Every call
// returns either a decoded domain value or an *Error carrying the structured
// error code emitted by the backend.
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

	"github.com/s41205/hangarctl/internal/model"
)

const defaultTimeout = 15 * time.Second

// Error is a structured error response from the API. Code comes from a
// closed-ish enumerated set; Details optionally carries free text such as a
// security-scan report.
type Error struct {
	Code    string `json:"error_code"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %s: %s", e.Code, e.Details)
	}
	return "api error " + e.Code
}

// AsError unwraps err into an *Error, synthesizing a CLIENT_ERROR when the
// failure happened before a structured response could be decoded.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Code: "CLIENT_ERROR", Details: err.Error()}
}

// Client talks to the platform API on behalf of a single caller.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New constructs a Client pointing at the provided API base URL.
func New(base, token string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url required")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		token:      strings.TrimSpace(token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, v any) error {
	if ctx == nil {
		ctx = context.Background()
	}
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
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if v == nil {
		return nil
	}
	if raw, ok := v.(*string); ok {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		*raw = string(data)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *Error. Responses without a
// structured body map onto well-known codes by HTTP status.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var apiErr Error
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Code != "" {
		return &apiErr
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Code: "UNAUTHORIZED"}
	case http.StatusNotFound:
		return &Error{Code: "NOT_FOUND"}
	case http.StatusInternalServerError:
		return &Error{Code: "HTTP_ERROR_500"}
	default:
		return &Error{Code: "DEFAULT", Details: strings.TrimSpace(string(data))}
	}
}

// WorkloadDetails fetches the aggregate record for a workload: the core
// record, its participants and any linked database.
func (c *Client) WorkloadDetails(ctx context.Context, id int) (*model.WorkloadDetails, error) {
	var details model.WorkloadDetails
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// WorkloadStatus fetches the current raw run-state. The backend may report
// an empty status for a workload that has never started.
func (c *Client) WorkloadStatus(ctx context.Context, id int) (string, error) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/status", id), nil, &payload); err != nil {
		return "", err
	}
	return payload.Status, nil
}

// Metrics fetches an instantaneous CPU/RAM sample.
func (c *Client) Metrics(ctx context.Context, id int) (*model.Metrics, error) {
	var m model.Metrics
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/metrics", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Logs fetches raw log text for a workload.
func (c *Client) Logs(ctx context.Context, id int) (string, error) {
	var raw string
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/logs", id), nil, &raw); err != nil {
		return "", err
	}
	return raw, nil
}

// Start requests the workload be started.
func (c *Client) Start(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/start", id), nil, nil)
}

// Stop requests the workload be stopped.
func (c *Client) Stop(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/stop", id), nil, nil)
}

// Restart requests the workload be restarted.
func (c *Client) Restart(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/restart", id), nil, nil)
}

// AddParticipant grants a user participant access to the workload.
func (c *Client) AddParticipant(ctx context.Context, id int, login string) error {
	body := map[string]string{"login": login}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/participants", id), body, nil)
}

// RemoveParticipant revokes a user's participant access.
func (c *Client) RemoveParticipant(ctx context.Context, id int, login string) error {
	path := fmt.Sprintf("/projects/%d/participants/%s", id, url.PathEscape(login))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Rebuild triggers a rebuild from the workload's existing repository
// reference. Only valid for repository-sourced workloads.
func (c *Client) Rebuild(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/rebuild", id), nil, nil)
}

// UpdateImage deploys a new direct image for the workload.
func (c *Client) UpdateImage(ctx context.Context, id int, imageURL string) error {
	body := map[string]string{"image_url": imageURL}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/image", id), body, nil)
}

// UpdateEnv replaces the workload's environment-variable map.
func (c *Client) UpdateEnv(ctx context.Context, id int, vars map[string]string) error {
	body := map[string]map[string]string{"env_vars": vars}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d/env", id), body, nil)
}

// Purge irreversibly deletes the workload and everything attached to it.
func (c *Client) Purge(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}

// CreateDatabase provisions a new personal database for the caller.
func (c *Client) CreateDatabase(ctx context.Context) (*model.Database, error) {
	var db model.Database
	if err := c.do(ctx, http.MethodPost, "/databases", nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// MyDatabase fetches the caller's personal database, if any.
func (c *Client) MyDatabase(ctx context.Context) (*model.Database, error) {
	var db model.Database
	if err := c.do(ctx, http.MethodGet, "/databases/me", nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// LinkDatabase associates a personal database with a workload.
func (c *Client) LinkDatabase(ctx context.Context, workloadID, databaseID int) error {
	body := map[string]int{"database_id": databaseID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/database/link", workloadID), body, nil)
}

// UnlinkDatabase clears a workload's database link, keeping the database.
func (c *Client) UnlinkDatabase(ctx context.Context, workloadID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/database/unlink", workloadID), nil, nil)
}

// DeleteLinkedDatabase destroys the database linked to a workload, which
// implicitly removes the link.
func (c *Client) DeleteLinkedDatabase(ctx context.Context, workloadID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d/database", workloadID), nil, nil)
}

// DeleteDatabase destroys a personal database by its own identifier.
func (c *Client) DeleteDatabase(ctx context.Context, databaseID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/databases/%d", databaseID), nil, nil)
}
