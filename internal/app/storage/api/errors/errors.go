package storage

import (
	"errors"
	"fmt"
)

var (
	ErrLoginExists   = errors.New("given login already exists in storage")
	ErrLoginNotFound = errors.New("given login doesn't exist in storage")

	ErrOrderNotFound   = errors.New("order with given id doesn't exist in storage")
	ErrProductNotFound = errors.New("product with given id doesn't exist in storage")

	// ErrOrderCancelled guards the exactly-once stock release: the
	// cancelling transaction found the order already cancelled.
	ErrOrderCancelled = errors.New("order has already been cancelled")
)

// InsufficientStockError names the product whose reserved quantity
// exceeds the available stock. Surfaced as 400.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough %s in stock. Available: %d", e.ProductName, e.Available)
}
