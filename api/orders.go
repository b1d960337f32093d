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
	pathItemOrdersHistogram = "market/itemordershistogram?{query}"
)

// Orders implements the /market/itemordershistogram endpoint: the current
// buy and sell order books for one item. The item is addressed by its
// item_nameid, an internal id scraped from the listing page.
type Orders struct {
	api *apiClient
}

func NewOrdersApi(
	httpClient *http.Client,
	limiter rate.Limiter,
	session Session,
	logger logger.Logger,
) *Orders {
	return &Orders{
		api: newApiClient(httpClient, limiter, session, logger),
	}
}

func (o *Orders) Histogram(itemNameId int64) (*types.OrderHistogramResponse, error) {
	query := url.Values{}
	query.Add("item_nameid", strconv.FormatInt(itemNameId, 10))
	query.Add("currency", strconv.Itoa(o.api.session.Currency))
	query.Add("country", o.api.session.Country)
	query.Add("language", o.api.session.Language)
	query.Add("two_factor", "0")

	var res types.OrderHistogramResponse
	err := o.api.getJson(
		strings.Replace(pathItemOrdersHistogram, "{query}", query.Encode(), 1),
		&res,
	)
	if err == nil && !bool(res.Success) {
		err = steamFailed(
			"itemordershistogram reported success=false for item_nameid " +
				strconv.FormatInt(itemNameId, 10),
		)
	}
	return toNilErr(&res, err)
}
