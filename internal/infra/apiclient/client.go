package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"market-admin/internal/domain/session"
	"market-admin/internal/pkg/clock"
	"market-admin/internal/pkg/requestid"
)

const DefaultTTL = time.Hour

// Options configures a Client. Zero values fall back to sensible defaults.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Cache      Cache
	Clock      clock.Clock
	DefaultTTL time.Duration
	Logger     *slog.Logger
}

// RequestOptions are per-call settings.
//
// TTL overrides the default cache lifetime for a GET; a negative TTL skips the cache.
// Invalidate lists extra resource roots a successful mutation makes stale, on top of
// the root of the mutated path itself.
type RequestOptions struct {
	Params     url.Values
	Body       any
	Headers    http.Header
	TTL        time.Duration
	Invalidate []string
}

// RawBody is sent as-is instead of being JSON encoded.
type RawBody struct {
	ContentType string
	Data        []byte
}

// Client is the single path for calls to the admin API. It injects the session's
// bearer token, caches reads and drops stale reads after writes. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      Cache
	clock      clock.Clock
	defaultTTL time.Duration
	logger     *slog.Logger
}

func New(opts Options) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		cache:      opts.Cache,
		clock:      opts.Clock,
		defaultTTL: opts.DefaultTTL,
		logger:     opts.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.clock == nil {
		c.clock = clock.NewRealClock()
	}
	if c.defaultTTL == 0 {
		c.defaultTTL = DefaultTTL
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodGet, path, opts, out)
}

func (c *Client) Post(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodPost, path, opts, out)
}

func (c *Client) Put(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodPut, path, opts, out)
}

func (c *Client) Delete(ctx context.Context, path string, opts RequestOptions, out any) error {
	return c.Do(ctx, http.MethodDelete, path, opts, out)
}

// Do performs one call and decodes a 2xx JSON body into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	token := session.Token(ctx)
	key := CacheKey{
		Scope:  scopeFor(token),
		Method: method,
		Path:   path,
		Query:  opts.Params.Encode(),
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	cacheable := method == http.MethodGet && c.cache != nil && ttl > 0

	var epoch uint64
	if cacheable {
		entry, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("Cache read failed", "error", err.Error(), "path", path)
		} else if ok {
			c.logger.Debug("Admin API cache hit", "method", method, "path", path)
			return c.decode(method, path, http.StatusOK, entry.Value, out)
		}
		// taken before dispatch so a write finishing while this read is in flight wins
		if epoch, err = c.cache.Epoch(ctx); err != nil {
			c.logger.Warn("Cache epoch read failed", "error", err.Error(), "path", path)
			cacheable = false
		}
	}

	started := c.clock.Now()
	payload, status, err := c.send(ctx, method, path, opts, token)
	if err != nil {
		return err
	}
	c.logger.Debug("Admin API call",
		"method", method,
		"path", path,
		"status", status,
		"duration", c.clock.Now().Sub(started),
	)

	if isMutation(method) {
		c.invalidate(ctx, path, opts.Invalidate)
	}

	if err := c.decode(method, path, status, payload, out); err != nil {
		return err
	}

	if cacheable {
		entry := CacheEntry{Key: key, Value: payload, StoredAt: c.clock.Now(), TTL: ttl}
		stored, err := c.cache.SetIfCurrent(ctx, entry, epoch)
		if err != nil {
			c.logger.Warn("Cache write failed", "error", err.Error(), "path", path)
		} else if !stored {
			c.logger.Debug("Admin API read invalidated in flight, not cached", "method", method, "path", path)
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, opts RequestOptions, token string) ([]byte, int, error) {
	target, err := c.resolve(path)
	if err != nil {
		return nil, 0, wrapErr(c.logger, KindTransport, method, path, 0, "invalid request url", "", err)
	}
	if len(opts.Params) > 0 {
		target.RawQuery = opts.Params.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch b := opts.Body.(type) {
	case nil:
	case RawBody:
		body = bytes.NewReader(b.Data)
		contentType = b.ContentType
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, 0, wrapErr(c.logger, KindTransport, method, path, 0, "failed to encode request body", "", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, 0, wrapErr(c.logger, KindTransport, method, path, 0, "failed to build request", "", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for name, values := range opts.Headers {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set(requestid.Header, requestid.Ensure(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, wrapErr(c.logger, KindTransport, method, path, 0, "request failed", "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, wrapErr(c.logger, KindTransport, method, path, resp.StatusCode, "failed to read response", "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message, detail := parseErrorBody(payload)
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, resp.StatusCode, wrapErr(c.logger, KindStatus, method, path, resp.StatusCode, message, detail, nil)
	}
	return payload, resp.StatusCode, nil
}

func (c *Client) decode(method, path string, status int, payload []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return wrapErr(c.logger, KindDecode, method, path, status, "malformed response body", "", err)
	}
	if v, ok := out.(Validator); ok {
		if err := v.Validate(); err != nil {
			return wrapErr(c.logger, KindDecode, method, path, status, "response failed validation", err.Error(), err)
		}
	}
	return nil
}

func (c *Client) invalidate(ctx context.Context, path string, extra []string) {
	if c.cache == nil {
		return
	}
	roots := append([]string{ResourceRoot(path)}, extra...)
	for _, root := range roots {
		if root == "" {
			continue
		}
		if err := c.cache.InvalidateResource(ctx, root); err != nil {
			c.logger.Warn("Cache invalidation failed", "error", err.Error(), "root", root)
		}
	}
}

func (c *Client) resolve(path string) (*url.URL, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return url.Parse(path)
	}
	return url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
}

// ResourceRoot returns "/" plus the first segment of path ("/booking/7/status" -> "/booking").
func ResourceRoot(path string) string {
	if strings.Contains(path, "://") {
		return ""
	}
	trimmed := strings.TrimLeft(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func parseErrorBody(payload []byte) (message, detail string) {
	var body struct {
		Message     string          `json:"message"`
		ErrorDetail json.RawMessage `json:"error_detail"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", strings.TrimSpace(string(payload))
	}
	if len(body.ErrorDetail) > 0 {
		var s string
		if err := json.Unmarshal(body.ErrorDetail, &s); err == nil {
			detail = s
		} else if string(body.ErrorDetail) != "null" {
			detail = string(body.ErrorDetail)
		}
	}
	return body.Message, detail
}
