package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daemond-dev/steam-market/errors"
	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/rate"
)

func Test_Orders_Histogram(t *testing.T) {
	body := []byte(`{
		"success": 1,
		"highest_buy_order": "3",
		"lowest_sell_order": "4",
		"buy_order_graph": [[0.03, 15, "15 buy orders at $0.03 or higher"]],
		"sell_order_graph": [[0.04, 2, "2 sell orders at $0.04 or lower"]]
	}`)
	c := httpClient(body, 200, nil)
	orders := NewOrdersApi(c, &rate.NoopLimiter{}, testSession(), &logger.Noop{})

	res, err := orders.Histogram(176321160)
	require.NoError(t, err)

	assert.Equal(t, "3", res.HighestBuyOrder)
	assert.Equal(t, "4", res.LowestSellOrder)
	require.Len(t, res.BuyOrderGraph, 1)
	assert.Equal(t, 0.03, res.BuyOrderGraph[0].Price)

	tr, _ := c.Transport.(*testTransport)
	u, parseErr := url.Parse(tr.Url())
	require.NoError(t, parseErr)
	assert.Equal(t, "/market/itemordershistogram", u.Path)

	q := u.Query()
	assert.Equal(t, "176321160", q.Get("item_nameid"))
	assert.Equal(t, "english", q.Get("language"))
	assert.Equal(t, "0", q.Get("two_factor"))
}

func Test_Orders_Histogram_success_zero(t *testing.T) {
	c := httpClient([]byte(`{"success": 0}`), 200, nil)
	orders := NewOrdersApi(c, &rate.NoopLimiter{}, testSession(), &logger.Noop{})

	_, err := orders.Histogram(176321160)
	require.Error(t, err)

	apiErr, ok := err.(*errors.ApiError)
	require.True(t, ok)
	assert.Equal(t, errors.TYPE_STEAM_FAILED, apiErr.Type)
}
