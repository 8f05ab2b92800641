package model

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	ProductID string          `json:"product"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Quantity  int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

type ShippingAddressRequest struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	TaxPrice        decimal.Decimal        `json:"taxPrice"`
	ShippingPrice   decimal.Decimal        `json:"shippingPrice"`
}

type PayOrderRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

type DeliverOrderRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

type UpdateStatusRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
}

type OrderItemResponse struct {
	ProductID string `json:"product"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int    `json:"qty"`
	Price     string `json:"price"`
}

type ShippingAddressResponse struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type PaymentResultResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

type OrderResponse struct {
	ID              string                  `json:"id"`
	User            string                  `json:"user"`
	OrderItems      []OrderItemResponse     `json:"orderItems"`
	ShippingAddress ShippingAddressResponse `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
	PaymentResult   *PaymentResultResponse  `json:"paymentResult,omitempty"`
	ItemsPrice      string                  `json:"itemsPrice"`
	TaxPrice        string                  `json:"taxPrice"`
	ShippingPrice   string                  `json:"shippingPrice"`
	TotalPrice      string                  `json:"totalPrice"`
	Status          string                  `json:"status"`
	IsPaid          bool                    `json:"isPaid"`
	PaidAt          string                  `json:"paidAt,omitempty"`
	IsDelivered     bool                    `json:"isDelivered"`
	DeliveredAt     string                  `json:"deliveredAt,omitempty"`
	TrackingNumber  string                  `json:"trackingNumber,omitempty"`
	CreatedAt       string                  `json:"createdAt"`
}

type OrdersResponse []OrderResponse

type OrderPageResponse struct {
	Orders OrdersResponse `json:"orders"`
	Page   int            `json:"page"`
	Pages  int            `json:"pages"`
	Total  int            `json:"total"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DailySalesResponse struct {
	Date  string `json:"date"`
	Sales string `json:"sales"`
	Count int    `json:"count"`
}

type OrderStatsResponse struct {
	StatusCounts []StatusCountResponse `json:"statusCounts"`
	TotalSales   string                `json:"totalSales"`
	SalesByDate  []DailySalesResponse  `json:"salesByDate"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
