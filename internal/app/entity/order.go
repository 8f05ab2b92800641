package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = `pending`
	StatusProcessing OrderStatus = `processing`
	StatusShipped    OrderStatus = `shipped`
	StatusDelivered  OrderStatus = `delivered`
	StatusCancelled  OrderStatus = `cancelled`
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition is defined out of the status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Cancellable reports whether the order owner may still cancel.
// Shipped orders can only be cancelled through an admin status override.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

func (id OrderID) Valid() bool {
	return len(id) > 0
}

type ShippingAddress struct {
	FullName   string
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
}

type PaymentResult struct {
	ID           string
	Status       string
	UpdateTime   string
	EmailAddress string
}

type OrderItem struct {
	ProductID ProductID
	Name      string
	Image     string
	Quantity  int
	// Price is the unit price captured at order time, never re-read
	// from the catalog afterwards.
	Price decimal.Decimal
}

type Orders []Order

type Order struct {
	ID              OrderID
	UserID          UserID
	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
	PaymentResult   PaymentResult
	ItemsPrice      decimal.Decimal
	TaxPrice        decimal.Decimal
	ShippingPrice   decimal.Decimal
	TotalPrice      decimal.Decimal
	Status          OrderStatus
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	TrackingNumber  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CalculatePrices recomputes the monetary fields from the line items.
// ItemsPrice and TotalPrice are always derived, never assigned directly.
func (o *Order) CalculatePrices() {
	itemsPrice := decimal.Zero
	for _, item := range o.Items {
		itemsPrice = itemsPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	o.ItemsPrice = itemsPrice.Round(2)
	o.TotalPrice = o.ItemsPrice.Add(o.TaxPrice).Add(o.ShippingPrice).Round(2)
}

// AccessibleBy reports whether the caller may read or mutate the order.
// The owner id and the caller id are compared as the same canonical type.
func (o *Order) AccessibleBy(caller Caller) bool {
	return caller.IsAdmin || o.UserID == caller.UserID
}

type OrderFilter struct {
	Status OrderStatus
	UserID UserID
	Limit  int
	Page   int
}

type OrderPage struct {
	Orders Orders
	Page   int
	Pages  int
	Total  int
}
