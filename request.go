package swell

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/swellstores/swell-sdk/casing"
)

// RequestOptions carries per-call overrides for a single API request.
type RequestOptions struct {
	// Query is serialized in insertion order after the path.
	Query Query
	// Headers are extra request headers. The fixed Content-Type, Accept,
	// and Authorization headers always win over entries here.
	Headers map[string]string
	// Body is JSON-serialized when non-nil.
	Body any

	// SessionToken, Locale, and Currency override the client-level values
	// for this call only.
	SessionToken string
	Locale       string
	Currency     string
}

// SessionOptions is the subset of per-call overrides exposed by resource
// accessors.
type SessionOptions struct {
	SessionToken string
	Locale       string
	Currency     string
}

// Request performs an API call and returns the decoded response value.
// When the client was configured with UseCamelCase, the decoded value is
// passed through casing.ToCamel before being returned; otherwise keys stay
// as they arrived on the wire.
//
// Typed accessors (GetProduct and friends) bypass this and decode into
// concrete structs; use Request for endpoints the SDK has no types for.
func (c *Client) Request(ctx context.Context, method, path string, opts *RequestOptions) (any, error) {
	raw, err := c.do(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if c.useCamelCase {
		v = casing.ToCamel(v)
	}
	return v, nil
}

// doRequest performs an API call and decodes the response into T.
func doRequest[T any](ctx context.Context, c *Client, method, path string, opts *RequestOptions) (*T, error) {
	raw, err := c.do(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// do builds and performs one request. Transport errors propagate unchanged;
// non-2xx statuses become an *APIError carrying the raw body.
func (c *Client) do(ctx context.Context, method, path string, opts *RequestOptions) ([]byte, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	path = strings.TrimPrefix(path, "/")
	requestURL := c.url + "/api/" + path
	if qs := opts.Query.Encode(); qs != "" {
		requestURL += "?" + qs
	}

	var bodyReader io.Reader = http.NoBody
	if opts.Body != nil {
		buf, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.key)))

	if session := c.headerValue(opts.SessionToken, c.sessionToken, SessionCookie); session != "" {
		req.Header.Set("X-Session", session)
	}
	if locale := c.headerValue(opts.Locale, c.locale, LocaleCookie); locale != "" {
		req.Header.Set("X-Locale", locale)
	}
	if currency := c.headerValue(opts.Currency, c.currency, CurrencyCookie); currency != "" {
		req.Header.Set("X-Currency", currency)
	}

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		// Transport failures surface to the caller unchanged.
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(method, path, resp.StatusCode, raw)
	}
	return raw, nil
}

// headerValue resolves a session header with first-non-empty-wins
// precedence: per-call override, client default, then cookie.
func (c *Client) headerValue(override, clientValue, cookieName string) string {
	if override != "" {
		return override
	}
	if clientValue != "" {
		return clientValue
	}
	if c.cookies != nil {
		return c.cookies.Cookie(cookieName)
	}
	return ""
}
