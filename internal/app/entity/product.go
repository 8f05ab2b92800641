package entity

import "github.com/shopspring/decimal"

type ProductID string

func (id ProductID) String() string {
	return string(id)
}

// Product is the slice of the catalog record the order lifecycle
// consumes. CountInStock is the shared mutable resource reserved on
// order placement and released on cancellation.
type Product struct {
	ID           ProductID
	Name         string
	Slug         string
	Image        string
	Price        decimal.Decimal
	CountInStock int
	Sold         int
}
