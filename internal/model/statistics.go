package model

import (
	"github.com/shopspring/decimal"
)

// OrderStatisticsResponse aggregates settlement totals per currency over a
// date range. Amounts are decimals so per-currency sums do not accumulate
// float error.
type OrderStatisticsResponse struct {
	Currencies         []CurrencySummary `json:"currencies"`
	TotalOrders        int64             `json:"total_orders"`
	TimeRangeDateStart int64             `json:"time_range_date_start"`
	TimeRangeDateEnd   int64             `json:"time_range_date_end"`
}

// CurrencySummary is one currency bucket of the statistics response.
type CurrencySummary struct {
	Currency     OrderCurrency   `json:"currency"`
	OrderCount   int64           `json:"order_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalSettled decimal.Decimal `json:"total_settled"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}
