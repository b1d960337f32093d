package rate

import (
	"net/http"
	"time"
)

// Limiter paces outbound requests to the Steam Community Market.
//
// Steam throttles aggressively and bans sessions that hammer it, so every
// request issued by this client is bracketed by a Limiter: Before runs
// immediately before the request is sent and may block to enforce spacing
// or quota ceilings; After runs once the outcome of the request is known
// and lets adaptive implementations react to it.
//
// Implementations shipped with this package:
//   - AdaptiveLimiter: feedback loop over observed response times plus
//     error-driven exponential backoff.
//   - QuotaLimiter: fixed per-endpoint query budgets.
//   - Multi: composes several limiters into one.
//   - NoopLimiter: no pacing at all.
//
// A Limiter never fails: Before may only block, After may only record.
// Both hooks must be safe for concurrent use; callers sharing one Limiter
// across goroutines serialize through whatever spacing it enforces.
type Limiter interface {
	// Before applies pacing ahead of the given request. It blocks the
	// calling goroutine for as long as needed to honor the current
	// spacing; it never blocks unrelated goroutines.
	Before(req *http.Request)

	// After reports the outcome of the request started after the matching
	// Before call. latency is the observed round trip time. A non-nil err
	// marks a transport-level failure with no usable latency; responses
	// with an HTTP error status still carry a latency and are reported
	// with err == nil.
	After(req *http.Request, latency time.Duration, err error)
}
