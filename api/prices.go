package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/rate"
	"github.com/daemond-dev/steam-market/types"
)

var (
	pathPriceOverview = "market/priceoverview/?{query}"
)

// Prices implements the /market/priceoverview/ endpoint: the cheapest
// listing, the 24h median and the trade volume for one item.
type Prices struct {
	api *apiClient
}

func NewPricesApi(
	httpClient *http.Client,
	limiter rate.Limiter,
	session Session,
	logger logger.Logger,
) *Prices {
	return &Prices{
		api: newApiClient(httpClient, limiter, session, logger),
	}
}

func (p *Prices) Overview(appId int, marketHashName string) (*types.PriceOverviewResponse, error) {
	query := url.Values{}
	query.Add("appid", strconv.Itoa(appId))
	query.Add("market_hash_name", marketHashName)
	query.Add("currency", strconv.Itoa(p.api.session.Currency))
	query.Add("country", p.api.session.Country)

	var res types.PriceOverviewResponse
	err := p.api.getJson(
		strings.Replace(pathPriceOverview, "{query}", query.Encode(), 1),
		&res,
	)
	if err == nil && !bool(res.Success) {
		err = steamFailed("priceoverview reported success=false for " + marketHashName)
	}
	return toNilErr(&res, err)
}
