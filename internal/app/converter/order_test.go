package converter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
)

func TestConvertOrderToResponse(t *testing.T) {
	paidAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	order := entity.Order{
		ID:     "7e3a0a44-8e8c-4e2f-a2d5-9c2f6f0a1b2c",
		UserID: "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
		Items: []entity.OrderItem{
			{
				ProductID: "0d5933b4-b93e-44fb-9dba-1ce81ac93571",
				Name:      "Hi-Fi Headphones",
				Quantity:  2,
				Price:     decimal.NewFromFloat(10),
			},
		},
		PaymentMethod: "PayPal",
		ItemsPrice:    decimal.NewFromFloat(20),
		TaxPrice:      decimal.NewFromFloat(1.5),
		ShippingPrice: decimal.NewFromFloat(5),
		TotalPrice:    decimal.NewFromFloat(26.5),
		Status:        entity.StatusProcessing,
		IsPaid:        true,
		PaidAt:        &paidAt,
	}

	response := ConvertOrderToResponse(order)

	assert.Equal(t, "7e3a0a44-8e8c-4e2f-a2d5-9c2f6f0a1b2c", response.ID)
	assert.Equal(t, "ac2a4811-4f10-487f-bde3-e39a14af7cd8", response.User)
	require.Len(t, response.OrderItems, 1)
	assert.Equal(t, "10.00", response.OrderItems[0].Price)
	assert.Equal(t, "20.00", response.ItemsPrice)
	assert.Equal(t, "26.50", response.TotalPrice)
	assert.Equal(t, "processing", response.Status)
	assert.Equal(t, "2024-03-01T10:00:00Z", response.PaidAt)
	assert.Empty(t, response.DeliveredAt)
	assert.Empty(t, response.CreatedAt)
	assert.Nil(t, response.PaymentResult)
}

func TestConvertOrderToResponsePaymentResult(t *testing.T) {
	order := entity.Order{
		ID: "7e3a0a44-8e8c-4e2f-a2d5-9c2f6f0a1b2c",
		PaymentResult: entity.PaymentResult{
			ID:           "PAYID-1",
			Status:       "COMPLETED",
			UpdateTime:   "2024-03-01T10:00:00Z",
			EmailAddress: "buyer@example.com",
		},
	}

	response := ConvertOrderToResponse(order)

	require.NotNil(t, response.PaymentResult)
	assert.Equal(t, "PAYID-1", response.PaymentResult.ID)
	assert.Equal(t, "buyer@example.com", response.PaymentResult.EmailAddress)
}

func TestConvertOrderPageToResponse(t *testing.T) {
	page := entity.OrderPage{
		Orders: entity.Orders{
			{ID: "7e3a0a44-8e8c-4e2f-a2d5-9c2f6f0a1b2c"},
		},
		Page:  2,
		Pages: 4,
		Total: 17,
	}

	response := ConvertOrderPageToResponse(page)

	require.Len(t, response.Orders, 1)
	assert.Equal(t, 2, response.Page)
	assert.Equal(t, 4, response.Pages)
	assert.Equal(t, 17, response.Total)
}
