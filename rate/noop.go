package rate

import (
	"net/http"
	"time"
)

type NoopLimiter struct {
}

var _ Limiter = &NoopLimiter{}

func (n NoopLimiter) Before(_ *http.Request) {
}

func (n NoopLimiter) After(_ *http.Request, _ time.Duration, _ error) {
}
