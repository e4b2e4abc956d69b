// Package client is the Go counterpart of the dashboard data hooks: typed
// calls built from the contract registry, with a read cache that mutations
// invalidate.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/GTDGit/seller_hub/internal/contract"
)

// APIError is a failed API call. Message is the server's message when the
// response carried one.
type APIError struct {
	Status  int
	Code    string
	Message string
	Field   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client calls the seller hub API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	cache   *Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its cookie jar is kept
// when set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc.Jar == nil {
			hc.Jar = c.http.Jar
		}
		c.http = hc
	}
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithSessionToken sends token as the session cookie on every request.
func WithSessionToken(token string) Option {
	return func(c *Client) {
		c.http.Jar.SetCookies(c.baseURL, []*http.Cookie{{Name: contract.SessionCookie, Value: token, Path: "/"}})
	}
}

// WithCache shares a cache between clients.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// New creates a Client for the API served at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
		cache:   NewCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Cache returns the client's read cache.
func (c *Client) Cache() *Cache {
	return c.cache
}

// call performs one request against the named route and returns the
// envelope data of a declared success response.
func (c *Client) call(ctx context.Context, name string, params map[string]string, query url.Values, body interface{}) (json.RawMessage, error) {
	route, ok := contract.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown route %q", name)
	}
	path, err := route.URL(params)
	if err != nil {
		return nil, err
	}
	if reflect.TypeOf(body) != reflect.TypeOf(route.Input) {
		return nil, fmt.Errorf("%s takes %T, got %T", name, route.Input, body)
	}

	target := c.baseURL.String() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", name, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", name, err)
	}

	var env contract.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil {
			if env.Message != "" {
				apiErr.Message = env.Message
			}
			if env.Error != nil {
				apiErr.Code = env.Error.Code
				apiErr.Field = env.Error.Field
			}
		}
		return nil, apiErr
	}
	if !route.Declares(resp.StatusCode) {
		return nil, &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("undeclared status for %s", name)}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%s: decode response: %w", name, decodeErr)
	}
	return env.Data, nil
}

func cacheKey(name string, params map[string]string, query url.Values) string {
	key := name
	if id, ok := params["id"]; ok {
		key += "/" + id
	}
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	return key
}

// read serves a fresh cached payload or fetches and caches it.
func read[T any](ctx context.Context, c *Client, name string, params map[string]string, query url.Values) (T, error) {
	var out T
	key := cacheKey(name, params, query)

	data, ok := c.cache.Get(key)
	if !ok {
		fetched, err := c.call(ctx, name, params, query, nil)
		if err != nil {
			return out, err
		}
		c.cache.Put(name, key, fetched)
		data = fetched
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%s: decode data: %w", name, err)
	}
	return out, nil
}

// readOne is read for single-entity routes: a 404 yields nil without error.
func readOne[T any](ctx context.Context, c *Client, name string, params map[string]string) (*T, error) {
	v, err := read[T](ctx, c, name, params, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// mutate performs a write and marks dependent reads stale on success.
func mutate[T any](ctx context.Context, c *Client, name string, params map[string]string, body interface{}) (T, error) {
	var out T
	data, err := c.call(ctx, name, params, nil, body)
	if err != nil {
		return out, err
	}
	c.cache.MarkStale(Invalidates[name]...)

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%s: decode data: %w", name, err)
	}
	return out, nil
}
