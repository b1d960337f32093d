package types

// SearchResponse is the body of /market/search/render/ with norender=1.
type SearchResponse struct {
	Success    IntBool        `json:"success"`
	Start      FlexInt        `json:"start"`
	PageSize   FlexInt        `json:"pagesize"`
	TotalCount int            `json:"total_count"`
	Results    []SearchResult `json:"results"`
}

type SearchResult struct {
	Name             string           `json:"name"`
	HashName         string           `json:"hash_name"`
	SellListings     int              `json:"sell_listings"`
	SellPrice        int64            `json:"sell_price"`
	SellPriceText    string           `json:"sell_price_text"`
	SalePriceText    string           `json:"sale_price_text"`
	AppName          string           `json:"app_name"`
	AssetDescription AssetDescription `json:"asset_description"`
}

type AssetDescription struct {
	AppID          int     `json:"appid"`
	ClassID        string  `json:"classid"`
	InstanceID     string  `json:"instanceid"`
	Name           string  `json:"name"`
	MarketName     string  `json:"market_name"`
	MarketHashName string  `json:"market_hash_name"`
	Tradable       IntBool `json:"tradable"`
	Commodity      IntBool `json:"commodity"`
	IconURL        string  `json:"icon_url"`
	Type           string  `json:"type"`
}
