package converter

import (
	"time"

	"github.com/golang-module/carbon/v2"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"
)

func ConvertOrderToResponse(order entity.Order) model.OrderResponse {
	items := make([]model.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Image:     item.Image,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
		})
	}

	response := model.OrderResponse{
		ID:         order.ID.String(),
		User:       order.UserID.String(),
		OrderItems: items,
		ShippingAddress: model.ShippingAddressResponse{
			FullName:   order.ShippingAddress.FullName,
			Address:    order.ShippingAddress.Address,
			City:       order.ShippingAddress.City,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
			Phone:      order.ShippingAddress.Phone,
		},
		PaymentMethod:  order.PaymentMethod,
		ItemsPrice:     order.ItemsPrice.StringFixed(2),
		TaxPrice:       order.TaxPrice.StringFixed(2),
		ShippingPrice:  order.ShippingPrice.StringFixed(2),
		TotalPrice:     order.TotalPrice.StringFixed(2),
		Status:         string(order.Status),
		IsPaid:         order.IsPaid,
		PaidAt:         convertTime(order.PaidAt),
		IsDelivered:    order.IsDelivered,
		DeliveredAt:    convertTime(order.DeliveredAt),
		TrackingNumber: order.TrackingNumber,
		CreatedAt:      convertTime(&order.CreatedAt),
	}

	if len(order.PaymentResult.ID) > 0 {
		response.PaymentResult = &model.PaymentResultResponse{
			ID:           order.PaymentResult.ID,
			Status:       order.PaymentResult.Status,
			UpdateTime:   order.PaymentResult.UpdateTime,
			EmailAddress: order.PaymentResult.EmailAddress,
		}
	}

	return response
}

func ConvertOrdersToResponse(orders entity.Orders) model.OrdersResponse {
	responses := make(model.OrdersResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ConvertOrderToResponse(order))
	}

	return responses
}

func ConvertOrderPageToResponse(page entity.OrderPage) model.OrderPageResponse {
	return model.OrderPageResponse{
		Orders: ConvertOrdersToResponse(page.Orders),
		Page:   page.Page,
		Pages:  page.Pages,
		Total:  page.Total,
	}
}

func ConvertPayRequestToPaymentResult(request model.PayOrderRequest) entity.PaymentResult {
	return entity.PaymentResult{
		ID:           request.ID,
		Status:       request.Status,
		UpdateTime:   request.UpdateTime,
		EmailAddress: request.EmailAddress,
	}
}

func convertTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return carbon.CreateFromStdTime(*t).ToRfc3339String()
}
