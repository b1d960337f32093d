package api

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daemond-dev/steam-market/errors"
	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/rate"
	"github.com/daemond-dev/steam-market/types"
)

func Test_Prices_Overview(t *testing.T) {
	body := []byte(`{"success":true,"lowest_price":"$0.03","volume":"1,234","median_price":"$0.04"}`)
	c := httpClient(body, 200, nil)
	prices := NewPricesApi(c, &rate.NoopLimiter{}, testSession(), &logger.Noop{})

	res, err := prices.Overview(730, "AK-47 | Redline (Field-Tested)")
	require.NoError(t, err)

	assert.Equal(t, "$0.03", res.LowestPrice)
	assert.Equal(t, "$0.04", res.MedianPrice)
	assert.Equal(t, types.Volume(1234), res.Volume)

	tr, _ := c.Transport.(*testTransport)
	u, parseErr := url.Parse(tr.Url())
	require.NoError(t, parseErr)
	assert.Equal(t, "/market/priceoverview/", u.Path)

	q := u.Query()
	assert.Equal(t, "730", q.Get("appid"))
	assert.Equal(t, "AK-47 | Redline (Field-Tested)", q.Get("market_hash_name"))
	assert.Equal(t, "1", q.Get("currency"))
	assert.Equal(t, "US", q.Get("country"))
}

func Test_Prices_Overview_success_false(t *testing.T) {
	c := httpClient([]byte(`{"success":false}`), 200, nil)
	prices := NewPricesApi(c, &rate.NoopLimiter{}, testSession(), &logger.Noop{})

	_, err := prices.Overview(730, "No Such Item")
	require.Error(t, err)

	apiErr, ok := err.(*errors.ApiError)
	require.True(t, ok)
	assert.Equal(t, errors.TYPE_STEAM_FAILED, apiErr.Type)
}

func Test_Prices_Overview_transport_error(t *testing.T) {
	c := httpClient(nil, 0, fmt.Errorf("test error"))
	prices := NewPricesApi(c, &rate.NoopLimiter{}, testSession(), &logger.Noop{})

	_, err := prices.Overview(730, "AK-47 | Redline (Field-Tested)")
	assert.Error(t, err)
}

func testSession() Session {
	return Session{
		Country:  "US",
		Language: "english",
		Currency: 1,
	}
}
