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
	pathListingsRender = "market/listings/{appid}/{name}/render/?{query}"
)

// Listings implements the /market/listings/.../render/ endpoint: the
// individual sell listings for one item, paged.
type Listings struct {
	api *apiClient
}

func NewListingsApi(
	httpClient *http.Client,
	limiter rate.Limiter,
	session Session,
	logger logger.Logger,
) *Listings {
	return &Listings{
		api: newApiClient(httpClient, limiter, session, logger),
	}
}

func (l *Listings) Render(appId int, marketHashName string, start, count int) (*types.ListingsResponse, error) {
	query := url.Values{}
	query.Add("start", strconv.Itoa(start))
	query.Add("count", strconv.Itoa(count))
	query.Add("currency", strconv.Itoa(l.api.session.Currency))
	query.Add("country", l.api.session.Country)
	query.Add("language", l.api.session.Language)

	path := pathListingsRender
	path = strings.Replace(path, "{appid}", strconv.Itoa(appId), 1)
	path = strings.Replace(path, "{name}", url.PathEscape(marketHashName), 1)
	path = strings.Replace(path, "{query}", query.Encode(), 1)

	var res types.ListingsResponse
	err := l.api.getJson(path, &res)
	if err == nil && !bool(res.Success) {
		err = steamFailed("listings/render reported success=false for " + marketHashName)
	}
	return toNilErr(&res, err)
}
