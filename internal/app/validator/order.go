package validator

import (
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"
	usecase_errors "github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/errors"
)

// ValidateCreateOrderRequest checks the request before any stock is
// touched. Returns a ValidationError describing the first violation.
func ValidateCreateOrderRequest(request model.CreateOrderRequest) error {
	if len(request.OrderItems) == 0 {
		return usecase_errors.NewValidationError("no order items")
	}

	for _, item := range request.OrderItems {
		if len(item.ProductID) == 0 {
			return usecase_errors.NewValidationError("order item without product id")
		}
		if item.Quantity <= 0 {
			return usecase_errors.NewValidationError("invalid quantity for %s", item.Name)
		}
		if item.Price.IsNegative() {
			return usecase_errors.NewValidationError("invalid price for %s", item.Name)
		}
	}

	if len(request.PaymentMethod) == 0 {
		return usecase_errors.NewValidationError("payment method is required")
	}

	if err := validateShippingAddress(request.ShippingAddress); err != nil {
		return err
	}

	if request.TaxPrice.IsNegative() || request.ShippingPrice.IsNegative() {
		return usecase_errors.NewValidationError("tax and shipping prices must not be negative")
	}

	return nil
}

func validateShippingAddress(address model.ShippingAddressRequest) error {
	fields := map[string]string{
		"fullName":   address.FullName,
		"address":    address.Address,
		"city":       address.City,
		"postalCode": address.PostalCode,
		"country":    address.Country,
		"phone":      address.Phone,
	}

	for name, value := range fields {
		if len(value) == 0 {
			return usecase_errors.NewValidationError("shipping address field %s is required", name)
		}
	}

	return nil
}
