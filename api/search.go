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
	pathSearchRender = "market/search/render/?{query}"
)

// Search implements the /market/search/render/ endpoint with norender=1,
// which returns structured results instead of pre-rendered HTML.
type Search struct {
	api *apiClient
}

func NewSearchApi(
	httpClient *http.Client,
	limiter rate.Limiter,
	session Session,
	logger logger.Logger,
) *Search {
	return &Search{
		api: newApiClient(httpClient, limiter, session, logger),
	}
}

// Render returns one page of search results. start is a zero-based offset;
// count is capped by Steam at 100 per page.
func (s *Search) Render(searchQuery string, appId int, start, count int) (*types.SearchResponse, error) {
	query := url.Values{}
	query.Add("query", searchQuery)
	query.Add("appid", strconv.Itoa(appId))
	query.Add("start", strconv.Itoa(start))
	query.Add("count", strconv.Itoa(count))
	query.Add("norender", "1")

	var res types.SearchResponse
	err := s.api.getJson(
		strings.Replace(pathSearchRender, "{query}", query.Encode(), 1),
		&res,
	)
	if err == nil && !bool(res.Success) {
		err = steamFailed("search/render reported success=false for query " + searchQuery)
	}
	return toNilErr(&res, err)
}
