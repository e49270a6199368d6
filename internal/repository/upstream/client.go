// Package upstream implements the client for the remote platform REST API.
// The console is a thin front for this API: it logs in against it and proxies
// reference-data CRUD to it with the session token attached.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	cache "github.com/robfig/go-cache"

	"github.com/estatekit/console/config"
	"github.com/estatekit/console/internal/usecase/session"
	"github.com/estatekit/console/pkg/logger"
)

// TokenHeader is the custom header carrying the session token on every
// authenticated platform call.
const TokenHeader = "secret_key"

const cacheCleanupInterval = 30 * time.Second

// TokenSource supplies the current session token. An empty token means
// unauthenticated; the request is still issued and the platform rejects it.
type TokenSource interface {
	Token() string
}

// Client -.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	store   *cache.Cache
	ttl     time.Duration
	log     logger.Interface
}

// New creates the platform API client. List responses are cached for ttl;
// a ttl of 0 disables caching.
func New(cfg *config.Upstream, tokens TokenSource, ttl time.Duration, log logger.Interface) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		store:   cache.New(0, cacheCleanupInterval),
		ttl:     ttl,
		log:     log,
	}
}

// loginRequest is the platform login contract.
type loginRequest struct {
	Usercode string `json:"usercode"`
	Password string `json:"password"`
}

type loginResponse struct {
	SecretKey    string          `json:"secretKey"`
	Message      string          `json:"message"`
	User         json.RawMessage `json:"user"`
	Organization json.RawMessage `json:"organization"`
	Branch       json.RawMessage `json:"branch"`
	CurrentDay   string          `json:"currentDay"`
	Privileges   json.RawMessage `json:"privileges"`
}

// Login authenticates against the platform. A non-2xx status or transport
// error is a credential failure; a 2xx response without a secretKey is the
// distinct missing-key failure.
func (c *Client) Login(ctx context.Context, usercode, password string) (session.LoginResult, error) {
	body, err := json.Marshal(loginRequest{Usercode: usercode, Password: password})
	if err != nil {
		return session.LoginResult{}, fmt.Errorf("upstream - Login - marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return session.LoginResult{}, fmt.Errorf("upstream - Login - request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return session.LoginResult{}, AuthError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return session.LoginResult{}, AuthError{Message: readErrorMessage(resp.Body)}
	}

	var res loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return session.LoginResult{}, AuthError{Message: "unexpected login response: " + err.Error()}
	}

	if res.SecretKey == "" {
		return session.LoginResult{}, ErrMissingAuthKey
	}

	return session.LoginResult{
		Token:        res.SecretKey,
		User:         res.User,
		Organization: res.Organization,
		Branch:       res.Branch,
		CurrentDay:   res.CurrentDay,
		Privileges:   res.Privileges,
	}, nil
}

// List fetches a resource collection, serving a cached copy when fresh.
func (c *Client) List(ctx context.Context, path string) (json.RawMessage, error) {
	if c.ttl > 0 {
		if cached, found := c.store.Get(path); found {
			if raw, ok := cached.(json.RawMessage); ok {
				return raw, nil
			}
		}
	}

	raw, err := c.do(ctx, http.MethodGet, "/"+path, nil)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		c.store.Set(path, raw, c.ttl)
	}

	return raw, nil
}

// Create adds a record and drops the cached collection, mirroring the
// mutate-then-refetch flow of the back-office screens.
func (c *Client) Create(ctx context.Context, path string, body json.RawMessage) (json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodPost, "/"+path, body)
	if err != nil {
		return nil, err
	}

	c.store.Delete(path)

	return raw, nil
}

// Update modifies a record and drops the cached collection.
func (c *Client) Update(ctx context.Context, path, id string, body json.RawMessage) (json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodPut, "/"+path+"/"+id, body)
	if err != nil {
		return nil, err
	}

	c.store.Delete(path)

	return raw, nil
}

// Delete removes a record and drops the cached collection.
func (c *Client) Delete(ctx context.Context, path, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/"+path+"/"+id, nil); err != nil {
		return err
	}

	c.store.Delete(path)

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body json.RawMessage) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("upstream - do - request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.tokens.Token(); token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, RequestError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	return raw, nil
}

func readErrorMessage(body io.Reader) string {
	var res struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(body).Decode(&res); err == nil && res.Message != "" {
		return res.Message
	}

	return "login failed"
}
