// Package transport provides the HTTP transport collaborator consumed by
// the REST client. Connection pooling, TLS, and socket-level retries live
// here; HTTP-level error classification does not.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"normex/pkg/core"
)

// Client wraps a resty HTTP client with logging and retry configuration.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
}

// Response is one finished HTTP exchange. Network-level failures are
// returned as errors from Do and never reach this type.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Status is the full status line text.
	Status string

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers.
	Headers http.Header
}

// Config holds transport construction parameters.
type Config struct {
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// NewClient creates a transport with the given timeouts and socket-level
// retry policy.
func NewClient(config Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(config.MaxRetries)
	client.SetRetryWaitTime(config.RetryWaitMin)
	client.SetRetryMaxWaitTime(config.RetryWaitMax)

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}
}

// Do executes one HTTP exchange. The request URL is absolute; query
// parameters and headers come from the request object. A returned error is
// a network-level failure (DNS, timeout, connection reset), distinguishable
// from any HTTP error status, which is reported through the Response.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	r := c.client.R().SetContext(ctx)

	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}
	for k, v := range req.Query {
		r.SetQueryParam(k, v)
	}

	var resp *resty.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		resp, err = r.Get(req.URL)
	case http.MethodPost:
		resp, err = r.Post(req.URL)
	case http.MethodDelete:
		resp, err = r.Delete(req.URL)
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Bytes(),
		Headers:    resp.Header(),
	}, nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.client.Close()
}

// IsSuccess returns true if the status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}

// Header returns the first value of the named response header.
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}
