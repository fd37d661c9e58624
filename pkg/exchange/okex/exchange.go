package okex

import (
	"fmt"

	"github.com/rs/zerolog"

	"normex/internal/circuitbreaker"
	"normex/internal/ratelimit"
	"normex/internal/transport"
	"normex/pkg/client"
	"normex/pkg/core"
	"normex/pkg/exchange"
)

// Option is a functional option for configuring the OKEX client.
type Option func(*Options)

// Options holds construction options for the OKEX client.
type Options struct {
	Logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates an OKEX client: the generic REST client bound to the v1
// converter, with transport, local rate limiter, and circuit breaker wired
// from the config. OKEX treats an absent symbol as "all symbols", so
// callers may omit it.
func New(config *core.Config, opts ...Option) (*client.Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	tr := transport.NewClient(transport.Config{
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RetryWaitMin: config.RetryWaitMin,
		RetryWaitMax: config.RetryWaitMax,
	}, options.Logger)

	clientOpts := []client.Option{
		client.WithLogger(options.Logger),
		client.WithAllSymbols(),
	}

	if config.RateLimitRequests > 0 {
		clientOpts = append(clientOpts,
			client.WithLimiter(ratelimit.New(config.RateLimitRequests, config.RateLimitPeriod)))
	}

	if config.CircuitBreakerEnabled {
		clientOpts = append(clientOpts,
			client.WithBreaker(circuitbreaker.New(circuitbreaker.Config{
				FailThreshold:    config.CircuitBreakerFailThreshold,
				SuccessThreshold: config.CircuitBreakerSuccessThreshold,
				Timeout:          config.CircuitBreakerTimeout,
			})))
	}

	if config.Version != "" {
		clientOpts = append(clientOpts, client.WithVersion(config.Version))
	}

	return client.New(NewConverter(), tr, clientOpts...), nil
}

// Register adds the OKEX v1 factory to the registry. This is a convenience
// function for dependency injection setup.
func Register(registry *exchange.Registry, opts ...Option) {
	registry.Register(VenueName, DefaultVersion, func(config *core.Config) (exchange.Exchange, error) {
		return New(config, opts...)
	})
}
