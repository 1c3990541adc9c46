package swell_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swell "github.com/swellstores/swell-sdk"
)

// newTestClient starts a test server running handler and returns a client
// pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*swell.Options)) *swell.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts := swell.Options{
		Store: "test-store",
		Key:   "test-key",
		URL:   srv.URL,
	}
	if mutate != nil {
		mutate(&opts)
	}

	client, err := swell.New(opts)
	require.NoError(t, err)
	return client
}

func okJSON(t *testing.T, capture *http.Request) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*capture = *r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}
}

func TestRequestBuildsURLAndHeaders(t *testing.T) {
	var got http.Request
	client := newTestClient(t, okJSON(t, &got), nil)

	_, err := client.Request(context.Background(), http.MethodGet, "/products/product-id", &swell.RequestOptions{
		Query: swell.Query{}.Add("page", 1).Add("limit", 10).
			Add("$filters", map[string]any{"category": []string{"test"}}),
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/products/product-id", got.URL.Path)
	assert.Equal(t, "page=1&limit=10&$filters[category][0]=test", got.URL.RawQuery)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	// base64("test-key")
	assert.Equal(t, "Basic dGVzdC1rZXk=", got.Header.Get("Authorization"))
}

func TestRequestFixedHeadersWin(t *testing.T) {
	var got http.Request
	client := newTestClient(t, okJSON(t, &got), nil)

	_, err := client.Request(context.Background(), http.MethodGet, "products", &swell.RequestOptions{
		Headers: map[string]string{
			"Authorization":   "Bearer stolen",
			"Content-Type":    "text/plain",
			"X-Custom-Header": "custom",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Basic dGVzdC1rZXk=", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "custom", got.Header.Get("X-Custom-Header"))
}

func TestRequestSessionHeaderPrecedence(t *testing.T) {
	cookies := swell.CookieMap{
		swell.SessionCookie:  "cookie-session",
		swell.LocaleCookie:   "cookie-locale",
		swell.CurrencyCookie: "cookie-currency",
	}

	tests := []struct {
		name         string
		mutate       func(*swell.Options)
		opts         *swell.RequestOptions
		wantSession  string
		wantLocale   string
		wantCurrency string
	}{
		{
			name: "no values anywhere leaves the headers unset",
		},
		{
			name: "cookies are the last fallback",
			mutate: func(o *swell.Options) {
				o.Cookies = cookies
			},
			wantSession:  "cookie-session",
			wantLocale:   "cookie-locale",
			wantCurrency: "cookie-currency",
		},
		{
			name: "client values win over cookies",
			mutate: func(o *swell.Options) {
				o.Cookies = cookies
				o.SessionToken = "client-session"
				o.Locale = "client-locale"
				o.Currency = "client-currency"
			},
			wantSession:  "client-session",
			wantLocale:   "client-locale",
			wantCurrency: "client-currency",
		},
		{
			name: "per-call overrides win over everything",
			mutate: func(o *swell.Options) {
				o.Cookies = cookies
				o.SessionToken = "client-session"
				o.Locale = "client-locale"
				o.Currency = "client-currency"
			},
			opts: &swell.RequestOptions{
				SessionToken: "call-session",
				Locale:       "call-locale",
				Currency:     "call-currency",
			},
			wantSession:  "call-session",
			wantLocale:   "call-locale",
			wantCurrency: "call-currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got http.Request
			client := newTestClient(t, okJSON(t, &got), tt.mutate)

			_, err := client.Request(context.Background(), http.MethodGet, "products", tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSession, got.Header.Get("X-Session"))
			assert.Equal(t, tt.wantLocale, got.Header.Get("X-Locale"))
			assert.Equal(t, tt.wantCurrency, got.Header.Get("X-Currency"))
		})
	}
}

func TestRequestEncodesBody(t *testing.T) {
	var body []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{}`))
	}, nil)

	_, err := client.Request(context.Background(), http.MethodPost, "cart/items", &swell.RequestOptions{
		Body: map[string]any{"product_id": "123", "quantity": 2},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, map[string]any{"product_id": "123", "quantity": 2.0}, decoded)
}

func TestRequestCamelCaseResponse(t *testing.T) {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"stock_level": 5, "purchase_options": {"sale_price": 8}}`))
	}

	t.Run("disabled keeps wire keys", func(t *testing.T) {
		client := newTestClient(t, handler, nil)

		v, err := client.Request(context.Background(), http.MethodGet, "products/1", nil)
		require.NoError(t, err)

		m, ok := v.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, m, "stock_level")
	})

	t.Run("enabled rewrites keys recursively", func(t *testing.T) {
		client := newTestClient(t, handler, func(o *swell.Options) {
			o.UseCamelCase = true
		})

		v, err := client.Request(context.Background(), http.MethodGet, "products/1", nil)
		require.NoError(t, err)

		m, ok := v.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 5.0, m["stockLevel"])
		nested, ok := m["purchaseOptions"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 8.0, nested["salePrice"])
	})
}

func TestRequestAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "structured error envelope",
			status:      http.StatusNotFound,
			body:        `{"error": {"code": "NOT_FOUND", "message": "product not found"}}`,
			wantCode:    "NOT_FOUND",
			wantMessage: "product not found",
		},
		{
			name:        "bare message envelope",
			status:      http.StatusBadRequest,
			body:        `{"message": "invalid request"}`,
			wantMessage: "invalid request",
		},
		{
			name:   "non-JSON body",
			status: http.StatusBadGateway,
			body:   "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, nil)

			_, err := client.Request(context.Background(), http.MethodGet, "products/nope", nil)

			var apiErr *swell.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, http.MethodGet, apiErr.Method)
			assert.Equal(t, "products/nope", apiErr.Path)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.body, string(apiErr.Body))
		})
	}
}

func TestRequestErrorPredicates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"code": "UNAUTHORIZED", "message": "bad key"}}`))
	}, nil)

	_, err := client.Request(context.Background(), http.MethodGet, "products", nil)
	assert.True(t, swell.IsUnauthorized(err))
	assert.False(t, swell.IsNotFound(err))
}

func TestRequestTransportErrorPassesThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Request(ctx, http.MethodGet, "products", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRequestCookiesFromInboundRequest(t *testing.T) {
	var got http.Request
	client := newTestClient(t, okJSON(t, &got), func(o *swell.Options) {
		inbound := httptest.NewRequest(http.MethodGet, "/storefront", nil)
		inbound.AddCookie(&http.Cookie{Name: swell.SessionCookie, Value: "visitor-session"})
		o.Cookies = swell.RequestCookies(inbound)
	})

	_, err := client.Request(context.Background(), http.MethodGet, "products", nil)
	require.NoError(t, err)

	assert.Equal(t, "visitor-session", got.Header.Get("X-Session"))
}
