// Package circuitbreaker guards the venue against request storms after
// repeated failures.
package circuitbreaker

import (
	"sync"
	"time"
)

// State is the breaker's current mode.
type State int

// Breaker states.
const (
	// StateClosed lets requests through.
	StateClosed State = iota
	// StateOpen rejects requests until the timeout elapses.
	StateOpen
	// StateHalfOpen probes the venue with live requests.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds breaker thresholds.
type Config struct {
	// FailThreshold is the consecutive failure count that opens the breaker.
	FailThreshold int `json:"fail_threshold"`
	// SuccessThreshold is the consecutive success count that closes a
	// half-open breaker.
	SuccessThreshold int `json:"success_threshold"`
	// Timeout is how long an open breaker waits before probing.
	Timeout time.Duration `json:"timeout"`
}

// Breaker is a three-state circuit breaker. Closed passes requests and
// counts failures; open rejects until the timeout elapses; half-open lets
// probes through and closes after enough successes.
type Breaker struct {
	mu           sync.Mutex
	state        State
	failures     int
	successes    int
	lastFailTime time.Time
	config       Config
}

// New creates a Breaker in the closed state.
func New(config Config) *Breaker {
	return &Breaker{
		state:  StateClosed,
		config: config,
	}
}

// Allow reports whether a request may proceed, transitioning an expired
// open breaker to half-open.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed, StateHalfOpen:
		return true
	case StateOpen:
		if time.Since(b.lastFailTime) >= b.config.Timeout {
			b.state = StateHalfOpen
			b.successes = 0
			return true
		}
		return false
	}
	return false
}

// Record feeds the outcome of one request into the breaker.
func (b *Breaker) Record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if success {
		switch b.state {
		case StateClosed:
			b.failures = 0
		case StateHalfOpen:
			b.successes++
			if b.successes >= b.config.SuccessThreshold {
				b.state = StateClosed
				b.failures = 0
			}
		}
		return
	}

	b.lastFailTime = time.Now()
	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.config.FailThreshold {
			b.state = StateOpen
		}
	case StateHalfOpen:
		b.state = StateOpen
	}
}

// State returns the breaker's current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
