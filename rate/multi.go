package rate

import (
	"net/http"
	"time"
)

// Multi composes several limiters into one. Before runs them in order, so
// coarse ceilings (quotas) should come before fine-grained spacing; After
// runs in reverse.
type Multi []Limiter

var _ Limiter = Multi{}

func (m Multi) Before(req *http.Request) {
	for _, l := range m {
		l.Before(req)
	}
}

func (m Multi) After(req *http.Request, latency time.Duration, err error) {
	for i := len(m) - 1; i >= 0; i-- {
		m[i].After(req, latency, err)
	}
}
