package rate

import (
	"net/http"
	"strings"
	"time"

	xrate "golang.org/x/time/rate"
)

// Endpoint classes with distinct quota budgets. Steam enforces separate
// ceilings for order histograms, search pages and listing pages; the
// price overview endpoint shares the order budget.
const (
	EndpointOrder   = "market_order"
	EndpointSearch  = "market_search"
	EndpointListing = "market_listing"
)

// quotaCushion pads every quota window so the client stays clearly under
// the ceiling even when Steam measures the window slightly differently.
const quotaCushion = 10 * time.Second

// Quota is a fixed query budget for one endpoint class: at most Queries
// requests per Window. Unlike the adaptive delay, quotas are static and
// never react to observed behavior.
type Quota struct {
	Queries int
	Window  time.Duration
}

// SecuredQuotas returns the per-endpoint budgets for sessions carrying a
// steamLoginSecure cookie. Logged-in sessions get noticeably more room.
func SecuredQuotas() map[string]Quota {
	return map[string]Quota{
		EndpointOrder:   {Queries: 50, Window: cushionedWindow(1)},
		EndpointSearch:  {Queries: 50, Window: cushionedWindow(1)},
		EndpointListing: {Queries: 25, Window: cushionedWindow(3)},
	}
}

// AnonymousQuotas returns the per-endpoint budgets for anonymous sessions.
func AnonymousQuotas() map[string]Quota {
	return map[string]Quota{
		EndpointOrder:   {Queries: 25, Window: cushionedWindow(5)},
		EndpointSearch:  {Queries: 25, Window: cushionedWindow(5)},
		EndpointListing: {Queries: 25, Window: cushionedWindow(5)},
	}
}

func cushionedWindow(minutes int) time.Duration {
	return time.Duration(minutes)*time.Minute + quotaCushion
}

// QuotaLimiter enforces static per-endpoint query budgets on top of
// whatever adaptive pacing is in place. Each endpoint class gets its own
// token bucket sized to its budget, so a burst may spend the whole budget
// at once and then waits out the window.
type QuotaLimiter struct {
	limiters map[string]*xrate.Limiter
}

var _ Limiter = &QuotaLimiter{}

func NewQuotaLimiter(quotas map[string]Quota) *QuotaLimiter {
	limiters := make(map[string]*xrate.Limiter, len(quotas))
	for class, q := range quotas {
		limiters[class] = xrate.NewLimiter(
			xrate.Limit(float64(q.Queries)/q.Window.Seconds()),
			q.Queries,
		)
	}
	return &QuotaLimiter{limiters: limiters}
}

func (l *QuotaLimiter) Before(req *http.Request) {
	lim, ok := l.limiters[EndpointClass(req)]
	if !ok {
		return
	}
	// Wait only fails when the request context is cancelled; the request
	// itself will fail right after for the same reason, so the error is
	// dropped here.
	_ = lim.Wait(req.Context())
}

func (l *QuotaLimiter) After(_ *http.Request, _ time.Duration, _ error) {
}

// EndpointClass maps a request to its quota endpoint class by URL path.
func EndpointClass(req *http.Request) string {
	path := req.URL.Path
	switch {
	case strings.HasPrefix(path, "/market/search"):
		return EndpointSearch
	case strings.HasPrefix(path, "/market/listings"):
		return EndpointListing
	default:
		return EndpointOrder
	}
}
