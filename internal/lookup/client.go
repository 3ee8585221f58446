// Package lookup holds the HTTP clients for the public lookup APIs used by the
// quiz. Every request runs through a circuit breaker so a dead endpoint fails
// fast; callers decide what to substitute on error.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second

	// breaker opens after this many failures in a row
	breakerFailureThreshold = 3
	breakerOpenTimeout      = 60 * time.Second
)

// ErrMalformedResponse is returned when a 2xx response has an unexpected shape
var ErrMalformedResponse = errors.New("malformed response")

// StatusError is returned for non-2xx responses
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.URL, e.StatusCode)
}

// jsonClient performs breaker-guarded GET requests that decode JSON bodies
type jsonClient struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func newJSONClient(name string, httpClient *http.Client, logger *zap.Logger) *jsonClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	settings := gobreaker.Settings{
		Name:    name,
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Lookup circuit breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		// A caller giving up is not the endpoint's fault
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &jsonClient{
		httpClient: httpClient,
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

// getJSON fetches rawURL and decodes the body into v
func (c *jsonClient) getJSON(ctx context.Context, rawURL string, v any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.fetch(ctx, rawURL, v)
	})
	return err
}

func (c *jsonClient) fetch(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
