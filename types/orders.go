package types

import (
	"encoding/json"
	"fmt"
)

// OrderHistogramResponse is the body of /market/itemordershistogram.
// Buy and sell graphs are cumulative: each point carries the price level,
// the total quantity at that level or better, and Steam's display label.
type OrderHistogramResponse struct {
	Success          IntBool           `json:"success"`
	HighestBuyOrder  string            `json:"highest_buy_order"`
	LowestSellOrder  string            `json:"lowest_sell_order"`
	BuyOrderGraph    []OrderGraphPoint `json:"buy_order_graph"`
	SellOrderGraph   []OrderGraphPoint `json:"sell_order_graph"`
	PricePrefix      string            `json:"price_prefix"`
	PriceSuffix      string            `json:"price_suffix"`
	BuyOrderSummary  string            `json:"buy_order_summary"`
	SellOrderSummary string            `json:"sell_order_summary"`
}

// OrderGraphPoint is one [price, quantity, label] tuple from an order
// graph.
type OrderGraphPoint struct {
	Price    float64
	Quantity int
	Label    string
}

func (p *OrderGraphPoint) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("types: order graph point is not an array: %w", err)
	}
	if len(tuple) != 3 {
		return fmt.Errorf("types: order graph point has %d elements, want 3", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Price); err != nil {
		return fmt.Errorf("types: order graph price: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &p.Quantity); err != nil {
		return fmt.Errorf("types: order graph quantity: %w", err)
	}
	if err := json.Unmarshal(tuple[2], &p.Label); err != nil {
		return fmt.Errorf("types: order graph label: %w", err)
	}
	return nil
}

func (p OrderGraphPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Price, p.Quantity, p.Label})
}
