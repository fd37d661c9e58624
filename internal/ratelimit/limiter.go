// Package ratelimit provides the client-side request budget. This is the
// preemptive local limiter; delays dictated by venue response headers are
// handled by the REST client on top of it.
package ratelimit

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles outgoing requests to a fixed budget per period.
type Limiter struct {
	limiter  *rate.Limiter
	requests int
	period   time.Duration
	metrics  *metrics
}

type metrics struct {
	total   atomic.Int64
	allowed atomic.Int64
	denied  atomic.Int64
}

// New creates a Limiter allowing the given number of requests per period,
// with a burst equal to the full budget.
func New(requests int, period time.Duration) *Limiter {
	rps := float64(requests) / period.Seconds()
	return &Limiter{
		limiter:  rate.NewLimiter(rate.Limit(rps), requests),
		requests: requests,
		period:   period,
		metrics:  &metrics{},
	}
}

// Wait blocks until the limiter allows a request or the context is
// cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	l.metrics.total.Add(1)
	if err := l.limiter.Wait(ctx); err != nil {
		l.metrics.denied.Add(1)
		return err
	}
	l.metrics.allowed.Add(1)
	return nil
}

// Allow returns true if a request is permitted immediately.
func (l *Limiter) Allow() bool {
	l.metrics.total.Add(1)
	allowed := l.limiter.Allow()
	if allowed {
		l.metrics.allowed.Add(1)
	} else {
		l.metrics.denied.Add(1)
	}
	return allowed
}

// SetLimit updates the budget to the specified requests per period.
func (l *Limiter) SetLimit(requests int, period time.Duration) {
	l.requests = requests
	l.period = period
	rps := float64(requests) / period.Seconds()
	l.limiter.SetLimit(rate.Limit(rps))
}

// Snapshot is a point-in-time capture of limiter statistics.
type Snapshot struct {
	// Total is the number of rate limit checks performed.
	Total int64
	// Allowed is the number of requests that were allowed.
	Allowed int64
	// Denied is the number of requests that were denied.
	Denied int64
}

// Metrics returns a snapshot of the current limiter statistics.
func (l *Limiter) Metrics() Snapshot {
	return Snapshot{
		Total:   l.metrics.total.Load(),
		Allowed: l.metrics.allowed.Load(),
		Denied:  l.metrics.denied.Load(),
	}
}
