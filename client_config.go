package steam_market

import (
	"net/http"
	"time"

	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/rate"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if callers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// steam-market client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter paces all requests issued through the client.
	// default: nil, which resolves to quota ceilings for the session
	// tier stacked under an adaptive delay limiter
	limiter rate.Limiter

	// securedCookie is the value of the steamLoginSecure cookie.
	// When set, requests run as a logged-in session and get the wider
	// quota budgets.
	// default: "" (anonymous)
	securedCookie string

	// country, language and currency are the locale parameters Steam
	// expects on market endpoints.
	// defaults: "US", "english", 1 (USD)
	country  string
	language string
	currency int
}

func defaultConfig() *config {
	return &config{
		transport: http.DefaultTransport,
		timeout:   10 * time.Second,
		logger:    logger.Noop{},
		country:   "US",
		language:  "english",
		currency:  1,
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithSecuredCookie(cookie string) ConfigOption {
	return func(c *config) {
		c.securedCookie = cookie
	}
}

func WithCountry(country string) ConfigOption {
	return func(c *config) {
		c.country = country
	}
}

func WithLanguage(language string) ConfigOption {
	return func(c *config) {
		c.language = language
	}
}

func WithCurrency(currency int) ConfigOption {
	return func(c *config) {
		c.currency = currency
	}
}
