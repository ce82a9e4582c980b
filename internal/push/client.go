// Package push sends JSON payloads to hosted telemetry endpoints.
package push

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const maxErrorBody = 512

var ErrNoEndpoint = errors.New("push endpoint not configured")

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("push rejected with status %d: %s", e.Code, e.Body)
}

func (e *StatusError) retryable() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests
}

type Client struct {
	url        string
	apiKey     string
	http       *http.Client
	maxRetries uint
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMaxRetries enables up to n additional attempts after a retryable failure.
func WithMaxRetries(n uint) Option {
	return func(c *Client) { c.maxRetries = n }
}

func NewClient(url, apiKey string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push posts body once, plus bounded retries when configured. The caller's
// context bounds the total time spent.
func (c *Client) Push(ctx context.Context, body []byte) error {
	if c.url == "" {
		return ErrNoEndpoint
	}

	if c.maxRetries == 0 {
		return c.post(ctx, body)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := c.post(ctx, body)
		var se *StatusError
		if errors.As(err, &se) && !se.retryable() {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(c.maxRetries+1))
	return err
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
