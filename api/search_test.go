package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/rate"
)

func Test_Search_Render(t *testing.T) {
	body := []byte(`{
		"success": true,
		"start": 0,
		"pagesize": 10,
		"total_count": 421,
		"results": [
			{
				"name": "AK-47 | Redline (Field-Tested)",
				"hash_name": "AK-47 | Redline (Field-Tested)",
				"sell_listings": 1500,
				"sell_price": 1825,
				"sell_price_text": "$18.25",
				"app_name": "Counter-Strike 2",
				"asset_description": {
					"appid": 730,
					"market_hash_name": "AK-47 | Redline (Field-Tested)",
					"tradable": 1,
					"commodity": 0
				}
			}
		]
	}`)
	c := httpClient(body, 200, nil)
	search := NewSearchApi(c, &rate.NoopLimiter{}, testSession(), &logger.Noop{})

	res, err := search.Render("redline", 730, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, 421, res.TotalCount)
	require.Len(t, res.Results, 1)
	assert.Equal(t, int64(1825), res.Results[0].SellPrice)
	assert.True(t, bool(res.Results[0].AssetDescription.Tradable))

	tr, _ := c.Transport.(*testTransport)
	u, parseErr := url.Parse(tr.Url())
	require.NoError(t, parseErr)
	assert.Equal(t, "/market/search/render/", u.Path)

	q := u.Query()
	assert.Equal(t, "redline", q.Get("query"))
	assert.Equal(t, "730", q.Get("appid"))
	assert.Equal(t, "0", q.Get("start"))
	assert.Equal(t, "10", q.Get("count"))
	assert.Equal(t, "1", q.Get("norender"))
}

func Test_Search_Render_success_false(t *testing.T) {
	c := httpClient([]byte(`{"success":false}`), 200, nil)
	search := NewSearchApi(c, &rate.NoopLimiter{}, testSession(), &logger.Noop{})

	_, err := search.Render("redline", 730, 0, 10)
	assert.Error(t, err)
}
