package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/farmatech/farmatech-client/internal/session"
)

// Client talks to the FarmaTech backend. All authenticated requests carry
// the session's bearer token; a 401/403 triggers exactly one refresh-and-
// retry cycle, coordinated through a singleflight group so that parallel
// requests hitting an expired token share one refresh call.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   session.Store
	refresh singleflight.Group
}

func New(baseURL string, store session.Store) *Client {
	return NewWithHTTPClient(baseURL, store, &http.Client{Timeout: 30 * time.Second})
}

func NewWithHTTPClient(baseURL string, store session.Store, httpc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		store:   store,
	}
}

// do performs a JSON request against the backend. When authed is set, the
// access token is attached and the refresh-retry policy applies. A non-nil
// out receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload, authed)
	if err != nil {
		return err
	}

	if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		drain(resp)
		if err := c.refreshAccess(ctx); err != nil {
			c.store.Clear()
			return ErrUnauthorized
		}
		resp, err = c.send(ctx, method, path, payload, authed)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			drain(resp)
			c.store.Clear()
			return ErrUnauthorized
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, authed bool) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		if t, err := c.store.Tokens(); err == nil && t.Access != "" {
			req.Header.Set("Authorization", "Bearer "+t.Access)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return resp, nil
}

// refreshAccess exchanges the refresh token for a new access token. Shared
// across concurrent callers: only one refresh request is in flight at a time.
func (c *Client) refreshAccess(ctx context.Context) error {
	_, err, _ := c.refresh.Do("refresh", func() (any, error) {
		t, err := c.store.Tokens()
		if err != nil {
			return nil, err
		}
		if t.Refresh == "" {
			return nil, session.ErrNoSession
		}

		payload, err := json.Marshal(map[string]string{"refresh": t.Refresh})
		if err != nil {
			return nil, err
		}
		resp, err := c.send(ctx, http.MethodPost, "/token/refresh/", payload, false)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return nil, decodeError(resp)
		}

		var body struct {
			Access string `json:"access"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode refresh response: %w", err)
		}
		if body.Access == "" {
			return nil, fmt.Errorf("refresh response missing access token")
		}
		return nil, c.store.SetAccess(body.Access)
	})
	return err
}

func decodeError(resp *http.Response) error {
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil {
		json.Unmarshal(data, &body)
	}

	msg := body.Message
	if msg == "" {
		msg = body.Detail
	}
	if msg == "" {
		msg = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
