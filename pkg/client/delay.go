package client

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"normex/internal/transport"
)

// Response headers carrying retry and rate-limit telemetry.
const (
	headerRetryAfter         = "Retry-After"
	headerRateLimitLimit     = "X-Ratelimit-Limit"
	headerRateLimitRemaining = "X-Ratelimit-Remaining"
	headerRateLimitReset     = "X-Ratelimit-Reset"
)

// remainingCapacityFraction is the remaining-quota share below which the
// client backs off until the reported reset.
const remainingCapacityFraction = 0.1

// resetSafetyMargin absorbs clock skew between this machine and the venue
// when waiting out a rate-limit window.
const resetSafetyMargin = time.Second

// DelayFromHeaders derives the wait to honor before the next request from
// one response's headers. Precedence:
//
//  1. a non-success response carrying an explicit Retry-After is used
//     verbatim;
//  2. else, if the rate-limit telemetry triple is present: remaining
//     capacity under 10% of the limit waits until the reported reset plus a
//     one second margin, otherwise no wait;
//  3. neither signal present leaves the current delay unchanged.
//
// Telemetry is best-effort: header absence and value-conversion failures
// are logged at debug level and swallowed, never aborting the fetch. The
// result is returned rather than stored so the ordering dependency between
// response handling and the next request stays visible to the caller.
func DelayFromHeaders(resp *transport.Response, current time.Duration, now time.Time, logger zerolog.Logger) time.Duration {
	if !resp.IsSuccess() {
		if raw := resp.Header(headerRetryAfter); raw != "" {
			secs, err := strconv.Atoi(raw)
			if err == nil {
				return time.Duration(secs) * time.Second
			}
			logger.Debug().Str("retry_after", raw).Err(err).Msg("unreadable retry directive header")
		}
	}

	rawLimit := resp.Header(headerRateLimitLimit)
	rawRemaining := resp.Header(headerRateLimitRemaining)
	rawReset := resp.Header(headerRateLimitReset)
	if rawLimit == "" || rawRemaining == "" || rawReset == "" {
		return current
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		logger.Debug().Str("limit", rawLimit).Err(err).Msg("unreadable rate-limit header")
		return current
	}
	remaining, err := strconv.ParseFloat(rawRemaining, 64)
	if err != nil {
		logger.Debug().Str("remaining", rawRemaining).Err(err).Msg("unreadable rate-limit header")
		return current
	}
	reset, err := strconv.ParseInt(rawReset, 10, 64)
	if err != nil {
		logger.Debug().Str("reset", rawReset).Err(err).Msg("unreadable rate-limit header")
		return current
	}

	var delay time.Duration
	if remaining < float64(limit)*remainingCapacityFraction {
		delay = time.Unix(reset, 0).Sub(now) + resetSafetyMargin
		if delay < 0 {
			delay = 0
		}
	}

	logger.Debug().
		Float64("remaining", remaining).
		Int("limit", limit).
		Dur("delay", delay).
		Msg("rate-limit telemetry")

	return delay
}
