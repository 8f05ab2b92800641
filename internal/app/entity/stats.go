package entity

import "github.com/shopspring/decimal"

type StatusCount struct {
	Status OrderStatus
	Count  int
}

type DailySales struct {
	Date  string
	Sales decimal.Decimal
	Count int
}

// OrderStats is the admin dashboard aggregation: orders per status,
// total sales over paid orders and per-day sales for the report window.
type OrderStats struct {
	StatusCounts []StatusCount
	TotalSales   decimal.Decimal
	SalesByDate  []DailySales
}
