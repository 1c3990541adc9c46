package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// CircuitBreakerConfig holds configuration for the circuit breaker.
type CircuitBreakerConfig struct {
	// Name identifies this breaker in logs.
	Name string

	// MaxRequests is the maximum number of requests allowed in the
	// half-open state. 0 means 1 request is allowed.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state for clearing
	// internal counts. 0 means counts are never cleared while closed.
	Interval time.Duration

	// Timeout is how long the breaker stays open before moving to half-open.
	Timeout time.Duration

	// FailureRatio is the ratio of failures to total requests that trips
	// the breaker.
	FailureRatio float64

	// MinRequests is the minimum number of requests needed before the
	// failure ratio is evaluated.
	MinRequests uint32
}

// DefaultCircuitBreakerConfig returns sensible defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// ErrCircuitOpen is returned when the breaker is open and rejects a request.
var ErrCircuitOpen = gobreaker.ErrOpenState

// Doer is the request-execution contract shared with the SDK client.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// serverStatusError marks a 5xx response as a breaker failure without
// consuming it; the response still reaches the caller intact.
type serverStatusError struct {
	status int
}

func (e *serverStatusError) Error() string {
	return fmt.Sprintf("server error %d", e.status)
}

// CircuitBreaker wraps a Doer with circuit breaker protection. It is opt-in:
// the SDK's default request path performs exactly one attempt and surfaces
// failures unchanged, so hosts that want load shedding wire this explicitly
// as the client transport.
//
// 5xx responses count as breaker failures but are still returned to the
// caller with the body untouched.
type CircuitBreaker struct {
	next    Doer
	breaker *gobreaker.CircuitBreaker[*http.Response]
	logger  *slog.Logger
}

// NewCircuitBreaker wraps next with a circuit breaker.
func NewCircuitBreaker(next Doer, cfg CircuitBreakerConfig, logger *slog.Logger) *CircuitBreaker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &CircuitBreaker{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
		logger:  logger,
	}
}

// Do executes a request through the circuit breaker.
func (c *CircuitBreaker) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := c.next.Do(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, &serverStatusError{status: resp.StatusCode}
		}
		return resp, nil
	})

	var statusErr *serverStatusError
	if errors.As(err, &statusErr) {
		// Counted as a failure; the response itself passes through.
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// State returns the current state of the circuit breaker.
func (c *CircuitBreaker) State() gobreaker.State {
	return c.breaker.State()
}
