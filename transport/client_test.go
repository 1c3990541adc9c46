package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	client := New(DefaultConfig())

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/products", nil)
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestClientDoServerErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "boom"}`))
	}))
	t.Cleanup(srv.Close)

	client := New(DefaultConfig())

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/products", nil)
	require.NoError(t, err)

	// One attempt, no retry: a 5xx is a response, not an error.
	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestClientDoNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := New(DefaultConfig())

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/products", nil)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req)
	require.Error(t, err)
}

func TestClientDoRecordsMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := New(DefaultConfig())

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/products", nil)
	require.NoError(t, err)

	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, req.URL.Host, "200"))

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	resp.Body.Close()

	after := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, req.URL.Host, "200"))
	assert.Equal(t, before+1, after)
}

func TestClientDoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	client := New(Config{Timeout: 50 * time.Millisecond, MaxConnsPerHost: 10})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/products", nil)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req)
	require.Error(t, err)
}
