package queue

import (
	"github.com/daemond-dev/steam-market/api"
	"github.com/daemond-dev/steam-market/logger"
)

// Typed queries, one per endpoint family. A processor only accepts the
// query type its handler serves.

type PriceOverviewQuery struct {
	AppId          int
	MarketHashName string
}

type OrderHistogramQuery struct {
	ItemNameId int64
}

type SearchQuery struct {
	Query string
	AppId int
	Start int
	Count int
}

type ListingsQuery struct {
	AppId          int
	MarketHashName string
	Start          int
	Count          int
}

type priceOverviewHandler struct {
	client *api.Prices
	logger logger.Logger
}

var _ Handler = &priceOverviewHandler{}

func NewPriceOverviewHandler(client *api.Prices, logger logger.Logger) Handler {
	return &priceOverviewHandler{
		client: client,
		logger: logger,
	}
}

func (h *priceOverviewHandler) Fetch(message Message) Response {
	query, ok := message.Data.(PriceOverviewQuery)
	if !ok {
		return badMessage(message)
	}

	res, err := h.client.Overview(query.AppId, query.MarketHashName)
	h.logger.Debugf("queue: priceoverview %q -> err: %v", query.MarketHashName, err)
	return toResponse(message, res, err)
}

type orderHistogramHandler struct {
	client *api.Orders
	logger logger.Logger
}

var _ Handler = &orderHistogramHandler{}

func NewOrderHistogramHandler(client *api.Orders, logger logger.Logger) Handler {
	return &orderHistogramHandler{
		client: client,
		logger: logger,
	}
}

func (h *orderHistogramHandler) Fetch(message Message) Response {
	query, ok := message.Data.(OrderHistogramQuery)
	if !ok {
		return badMessage(message)
	}

	res, err := h.client.Histogram(query.ItemNameId)
	h.logger.Debugf("queue: itemordershistogram %d -> err: %v", query.ItemNameId, err)
	return toResponse(message, res, err)
}

type searchHandler struct {
	client *api.Search
	logger logger.Logger
}

var _ Handler = &searchHandler{}

func NewSearchHandler(client *api.Search, logger logger.Logger) Handler {
	return &searchHandler{
		client: client,
		logger: logger,
	}
}

func (h *searchHandler) Fetch(message Message) Response {
	query, ok := message.Data.(SearchQuery)
	if !ok {
		return badMessage(message)
	}

	res, err := h.client.Render(query.Query, query.AppId, query.Start, query.Count)
	h.logger.Debugf("queue: search/render %q -> err: %v", query.Query, err)
	return toResponse(message, res, err)
}

type listingsHandler struct {
	client *api.Listings
	logger logger.Logger
}

var _ Handler = &listingsHandler{}

func NewListingsHandler(client *api.Listings, logger logger.Logger) Handler {
	return &listingsHandler{
		client: client,
		logger: logger,
	}
}

func (h *listingsHandler) Fetch(message Message) Response {
	query, ok := message.Data.(ListingsQuery)
	if !ok {
		return badMessage(message)
	}

	res, err := h.client.Render(query.AppId, query.MarketHashName, query.Start, query.Count)
	h.logger.Debugf("queue: listings/render %q -> err: %v", query.MarketHashName, err)
	return toResponse(message, res, err)
}

func badMessage(message Message) Response {
	return Response{
		OriginalReq: message,
		Error:       ErrUnexpectedMessageData,
		Retry:       false,
	}
}

func toResponse(message Message, data any, err error) Response {
	if err != nil {
		return Response{
			OriginalReq: message,
			Error:       err,
			Retry:       shouldRetry(err),
		}
	}
	return Response{
		Data:        data,
		OriginalReq: message,
	}
}
