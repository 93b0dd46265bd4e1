// Package apiclient talks to the project-planning service over HTTP/JSON.
//
// Every method maps transport failures to errors.NetworkError and non-2xx
// responses to errors.HTTPStatusError so callers can classify failures
// without inspecting net/http details.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/planner/internal/errors"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/project"
)

// RequestIDHeader carries a per-request id so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response body is kept for logs.
const maxErrorBody = 2048

// HTTPClient abstracts HTTP calls for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// API is the set of service calls the controller and catalog depend on.
type API interface {
	GeneratePlan(ctx context.Context, in project.Input) (project.Result, error)
	ListProjects(ctx context.Context) ([]project.Summary, error)
	GetProject(ctx context.Context, id string) (project.Result, error)
	DeleteProject(ctx context.Context, id string) error
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	logger     *logging.Logger
	newID      func() string
}

// NewClient creates a client for the service rooted at baseURL. A zero
// timeout means requests are bounded only by their context.
func NewClient(baseURL string, timeout time.Duration, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.WithComponent("apiclient"),
		newID:      uuid.NewString,
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(hc HTTPClient) {
	c.httpClient = hc
}

// BaseURL returns the service root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GeneratePlan submits a project and returns the generated plan documents.
func (c *Client) GeneratePlan(ctx context.Context, in project.Input) (project.Result, error) {
	var result project.Result
	err := c.doJSON(ctx, http.MethodPost, "/generate-project-plan", in, &result)
	return result, err
}

// ListProjects returns every stored project summary in service order.
func (c *Client) ListProjects(ctx context.Context) ([]project.Summary, error) {
	var summaries []project.Summary
	if err := c.doJSON(ctx, http.MethodGet, "/projects", nil, &summaries); err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []project.Summary{}
	}
	return summaries, nil
}

// GetProject fetches one full result. A 404 matches errors.ErrNotFound.
func (c *Client) GetProject(ctx context.Context, id string) (project.Result, error) {
	var result project.Result
	err := c.doJSON(ctx, http.MethodGet, projectPath(id), nil, &result)
	return result, err
}

// DeleteProject removes a project. The response body is ignored.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, projectPath(id), nil, nil)
}

// Ping checks that the service answers at all. Any HTTP response counts as
// reachable; only transport failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func projectPath(id string) string {
	return "/projects/" + url.PathEscape(id)
}

// doJSON encodes body (if any), sends the request, checks the status and
// decodes the response into out (if non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	resp, err := c.send(ctx, method, path, reader)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.NewHTTPStatusError(method, path, resp.StatusCode).WithBody(string(respBody))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// send builds and executes a request. Only transport failures are errors here.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err.Error(),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.NewNetworkError(method, path, errors.Join(ctxErr, err))
		}
		return nil, errors.NewNetworkError(method, path, err)
	}

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
