package types

// ListingsResponse is the body of /market/listings/{appid}/{name}/render/.
// ListingInfo is keyed by listing id; Assets by appid, then context id,
// then asset id.
type ListingsResponse struct {
	Success     IntBool                                 `json:"success"`
	Start       FlexInt                                 `json:"start"`
	PageSize    FlexInt                                 `json:"pagesize"`
	TotalCount  int                                     `json:"total_count"`
	ListingInfo map[string]Listing                      `json:"listinginfo"`
	Assets      map[string]map[string]map[string]Asset  `json:"assets"`
}

type Listing struct {
	ListingID      string       `json:"listingid"`
	Price          int64        `json:"price"`
	Fee            int64        `json:"fee"`
	CurrencyID     FlexInt      `json:"currencyid"`
	ConvertedPrice int64        `json:"converted_price"`
	ConvertedFee   int64        `json:"converted_fee"`
	Asset          ListingAsset `json:"asset"`
}

type ListingAsset struct {
	ID        string  `json:"id"`
	AppID     FlexInt `json:"appid"`
	ContextID string  `json:"contextid"`
	Amount    string  `json:"amount"`
}

type Asset struct {
	ID             string  `json:"id"`
	ClassID        string  `json:"classid"`
	InstanceID     string  `json:"instanceid"`
	Name           string  `json:"name"`
	MarketHashName string  `json:"market_hash_name"`
	Tradable       IntBool `json:"tradable"`
	IconURL        string  `json:"icon_url"`
}
