// Package transport provides the HTTP layer behind the SDK client: a pooled,
// instrumented http.Client wrapper performing exactly one attempt per call,
// and an opt-in circuit breaker for hosts that want to shed load when the
// backend degrades. Failures are surfaced unchanged; callers own retry
// policy.
package transport

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "swell-sdk/transport"

// Config holds transport configuration.
type Config struct {
	Timeout         time.Duration
	MaxConnsPerHost int

	// Logger receives per-request warnings. Defaults to a discard logger.
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		MaxConnsPerHost: 100,
	}
}

// Client wraps http.Client with connection pooling, tracing, and request
// metrics. It performs a single attempt per call: network failures and
// non-2xx statuses pass through to the caller untouched.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

// New creates a transport client with pooled connections.
func New(cfg Config) *Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: &http.Client{
			Transport: t,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Do executes one HTTP request, recording a span and request metrics.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "swell.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(req.Method),
			semconv.ServerAddress(req.URL.Host),
			attribute.String("url.path", req.URL.Path),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.httpClient.Do(req.WithContext(ctx))
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observeRequest(req, "error", elapsed)
		c.logger.WarnContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("host", req.URL.Host),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	observeRequest(req, strconv.Itoa(resp.StatusCode), elapsed)

	return resp, nil
}
