package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus(t *testing.T) {
	tests := []struct {
		status      OrderStatus
		valid       bool
		terminal    bool
		cancellable bool
	}{
		{StatusPending, true, false, true},
		{StatusProcessing, true, false, true},
		{StatusShipped, true, false, false},
		{StatusDelivered, true, true, false},
		{StatusCancelled, true, true, false},
		{OrderStatus("misplaced"), false, false, false},
		{OrderStatus(""), false, false, false},
	}

	for _, test := range tests {
		t.Run(string(test.status), func(t *testing.T) {
			assert.Equal(t, test.valid, test.status.Valid())
			assert.Equal(t, test.terminal, test.status.Terminal())
			assert.Equal(t, test.cancellable, test.status.Cancellable())
		})
	}
}

func TestCalculatePrices(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 2, Price: decimal.NewFromFloat(10.00)},
			{Quantity: 1, Price: decimal.NewFromFloat(3.33)},
		},
		TaxPrice:      decimal.NewFromFloat(1.50),
		ShippingPrice: decimal.NewFromFloat(5.00),
	}

	order.CalculatePrices()

	assert.Equal(t, "23.33", order.ItemsPrice.StringFixed(2))
	assert.Equal(t, "29.83", order.TotalPrice.StringFixed(2))
}

func TestCalculatePricesEmptyOrder(t *testing.T) {
	order := Order{}
	order.CalculatePrices()

	assert.Equal(t, "0.00", order.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", order.TotalPrice.StringFixed(2))
}

func TestAccessibleBy(t *testing.T) {
	order := Order{UserID: "ac2a4811-4f10-487f-bde3-e39a14af7cd8"}

	tests := []struct {
		name   string
		caller Caller
		want   bool
	}{
		{
			name:   "owner",
			caller: Caller{UserID: "ac2a4811-4f10-487f-bde3-e39a14af7cd8"},
			want:   true,
		},
		{
			name:   "admin",
			caller: Caller{UserID: "6f28a678-7eba-4a4e-966c-7fedc6420df7", IsAdmin: true},
			want:   true,
		},
		{
			name:   "stranger",
			caller: Caller{UserID: "6f28a678-7eba-4a4e-966c-7fedc6420df7"},
			want:   false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, order.AccessibleBy(test.caller))
		})
	}
}
