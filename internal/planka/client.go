package planka

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hauxir/planka-cli/internal/telemetry/logger"
)

const defaultTimeout = 30 * time.Second

// Fields is a partial payload for create and update operations. Only the
// keys actually present are sent, so the server never sees zero-valued
// placeholders for fields the caller did not touch.
type Fields map[string]any

// Client talks to one Planka server. The token is attached as a bearer
// header on every request when non-empty; Login is the only operation
// issued without it.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     logger.Logger
}

// New creates a client for the given server. The token may be empty for
// a client that will only call Login.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     logger.Default(),
	}
}

// BaseURL returns the server URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login exchanges credentials for an access token. The returned token is
// also retained on the client so follow-up calls are authenticated.
func (c *Client) Login(ctx context.Context, emailOrUsername, password string) (string, error) {
	var out itemEnvelope[string]
	err := c.do(ctx, http.MethodPost, "/api/access-tokens", Fields{
		"emailOrUsername": emailOrUsername,
		"password":        password,
	}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return "", fmt.Errorf("%w: %s", ErrAuthenticationFailed, apiErr.Message)
		}
		return "", err
	}
	c.token = out.Item
	return out.Item, nil
}

// Logout revokes the client's access token on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.delete(ctx, "/api/access-tokens/me")
}

// itemEnvelope is the {"item": ...} wrapper around single entities. Some
// endpoints sideload related entities under "included".
type itemEnvelope[T any] struct {
	Item     T               `json:"item"`
	Included json.RawMessage `json:"included"`
}

// itemsEnvelope is the {"items": [...]} wrapper around collections.
type itemsEnvelope[T any] struct {
	Items []T `json:"items"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body Fields, out any) error {
	if body == nil {
		body = Fields{}
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body Fields, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request and decodes the response into out (when non-nil).
// Connectivity failures become *TransportError, non-2xx responses become
// *APIError carrying the server message.
func (c *Client) do(ctx context.Context, method, path string, body Fields, out any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", "planka-cli")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

// decodeAPIError turns a non-2xx response into an *APIError. Planka
// error bodies look like {"code": "E_...", "message": "..."}; anything
// unparseable falls back to the bare status.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Code     string   `json:"code"`
		Message  string   `json:"message"`
		Problems []string `json:"problems"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if apiErr.Message == "" && len(body.Problems) > 0 {
			apiErr.Message = strings.Join(body.Problems, "; ")
		}
	}
	return apiErr
}
