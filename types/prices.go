package types

// PriceOverviewResponse is the body of /market/priceoverview/.
// Prices are pre-formatted display strings in the requested currency
// ("$0.03"); Volume is the number of units traded in the last 24h.
type PriceOverviewResponse struct {
	Success     IntBool `json:"success"`
	LowestPrice string  `json:"lowest_price"`
	MedianPrice string  `json:"median_price"`
	Volume      Volume  `json:"volume"`
}
