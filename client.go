package steam_market

import (
	"net/http"

	"github.com/daemond-dev/steam-market/api"
	"github.com/daemond-dev/steam-market/rate"
)

// Client is the entry point to the Steam Community Market endpoints.
// All requests issued through one Client flow through one shared rate
// limiter: a static per-endpoint quota ceiling plus an adaptive delay
// that reacts to observed response times and failures.
type Client struct {
	httpClient *http.Client
	limiter    rate.Limiter

	prices   *api.Prices
	orders   *api.Orders
	search   *api.Search
	listings *api.Listings
}

func NewClient(opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	limiter := cfg.limiter
	if limiter == nil {
		limiter = defaultLimiter(cfg.securedCookie != "")
	}

	session := api.Session{
		SecuredCookie: cfg.securedCookie,
		Country:       cfg.country,
		Language:      cfg.language,
		Currency:      cfg.currency,
	}

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		prices:     api.NewPricesApi(httpClient, limiter, session, cfg.logger),
		orders:     api.NewOrdersApi(httpClient, limiter, session, cfg.logger),
		search:     api.NewSearchApi(httpClient, limiter, session, cfg.logger),
		listings:   api.NewListingsApi(httpClient, limiter, session, cfg.logger),
	}
}

func (c *Client) Prices() *api.Prices {
	return c.prices
}

func (c *Client) Orders() *api.Orders {
	return c.orders
}

func (c *Client) Search() *api.Search {
	return c.search
}

func (c *Client) Listings() *api.Listings {
	return c.listings
}

// Limiter exposes the client's rate limiter, e.g. for wiring up the
// metrics collector when the default adaptive limiter is in use.
func (c *Client) Limiter() rate.Limiter {
	return c.limiter
}

// defaultLimiter stacks the static quota ceiling for the session tier
// under the adaptive spacing loop.
func defaultLimiter(secured bool) rate.Limiter {
	quotas := rate.AnonymousQuotas()
	if secured {
		quotas = rate.SecuredQuotas()
	}

	// Defaults are always valid, so the error is impossible here.
	adaptive, _ := rate.NewAdaptiveLimiter()

	return rate.Multi{
		rate.NewQuotaLimiter(quotas),
		adaptive,
	}
}
