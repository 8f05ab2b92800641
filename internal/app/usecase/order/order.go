package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/model"
	err_storage "github.com/ryanhellerud1/go-shop-backend/internal/app/storage/api/errors"
	usecase_errors "github.com/ryanhellerud1/go-shop-backend/internal/app/usecase/errors"
	"github.com/ryanhellerud1/go-shop-backend/internal/app/validator"
)

const (
	defaultListLimit = 10
	statsWindow      = 7 * 24 * time.Hour
)

// Storage is the persistence port the lifecycle manager drives. All
// multi-entity mutations behind it are atomic.
type Storage interface {
	GetProduct(ctx context.Context, id entity.ProductID) (entity.Product, error)
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, int, error)
	SaveOrder(ctx context.Context, order entity.Order) error
	CancelOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	GetOrderStats(ctx context.Context, since time.Time) (entity.OrderStats, error)
}

// Manager owns the order lifecycle: creation with stock reservation,
// payment and delivery confirmation, status transitions and
// cancellation with stock release.
type Manager struct {
	storage Storage
}

func New(storage Storage) *Manager {
	return &Manager{
		storage: storage,
	}
}

// PlaceOrder reserves stock for every line item and persists the order
// atomically. Unit prices are snapshotted from the catalog at this
// moment; the submitted price must match the catalog price.
func (m *Manager) PlaceOrder(ctx context.Context, caller entity.Caller, request model.CreateOrderRequest) (entity.Order, error) {
	if err := validator.ValidateCreateOrderRequest(request); err != nil {
		return entity.Order{}, err
	}

	items := make([]entity.OrderItem, 0, len(request.OrderItems))
	for _, requested := range request.OrderItems {
		product, err := m.storage.GetProduct(ctx, entity.ProductID(requested.ProductID))
		if err != nil {
			if errors.Is(err, err_storage.ErrProductNotFound) {
				return entity.Order{}, fmt.Errorf("product not found: %s: %w", requested.Name, err)
			}

			return entity.Order{}, fmt.Errorf("error while reading product %s: %w", requested.ProductID, err)
		}

		if !product.Price.Equal(requested.Price) {
			return entity.Order{}, usecase_errors.NewValidationError(
				"price mismatch for %s. Expected: %s", product.Name, product.Price.StringFixed(2))
		}

		if product.CountInStock < requested.Quantity {
			return entity.Order{}, &err_storage.InsufficientStockError{
				ProductName: product.Name,
				Available:   product.CountInStock,
				Requested:   requested.Quantity,
			}
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Quantity:  requested.Quantity,
			Price:     product.Price,
		})
	}

	order := entity.Order{
		ID:     entity.OrderID(uuid.NewString()),
		UserID: caller.UserID,
		Items:  items,
		ShippingAddress: entity.ShippingAddress{
			FullName:   request.ShippingAddress.FullName,
			Address:    request.ShippingAddress.Address,
			City:       request.ShippingAddress.City,
			PostalCode: request.ShippingAddress.PostalCode,
			Country:    request.ShippingAddress.Country,
			Phone:      request.ShippingAddress.Phone,
		},
		PaymentMethod: request.PaymentMethod,
		TaxPrice:      request.TaxPrice.Round(2),
		ShippingPrice: request.ShippingPrice.Round(2),
		Status:        entity.StatusPending,
	}
	order.CalculatePrices()

	created, err := m.storage.CreateOrder(ctx, order)
	if err != nil {
		return entity.Order{}, err
	}

	zap.L().Info("order placed",
		zap.String("order_id", created.ID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.String("total_price", created.TotalPrice.StringFixed(2)),
	)

	return created, nil
}

func (m *Manager) GetOrder(ctx context.Context, caller entity.Caller, id entity.OrderID) (entity.Order, error) {
	order, err := m.storage.GetOrder(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}

	if !order.AccessibleBy(caller) {
		return entity.Order{}, usecase_errors.ErrNotAuthorized
	}

	return order, nil
}

func (m *Manager) GetUserOrders(ctx context.Context, caller entity.Caller) (entity.Orders, error) {
	return m.storage.GetUserOrders(ctx, caller.UserID)
}

func (m *Manager) ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.OrderPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	orders, total, err := m.storage.ListOrders(ctx, filter)
	if err != nil {
		return entity.OrderPage{}, err
	}

	pages := (total + filter.Limit - 1) / filter.Limit

	return entity.OrderPage{
		Orders: orders,
		Page:   filter.Page,
		Pages:  pages,
		Total:  total,
	}, nil
}

// MarkPaid confirms payment for the order. Re-paying an already paid
// order is rejected.
func (m *Manager) MarkPaid(ctx context.Context, caller entity.Caller, id entity.OrderID, payment entity.PaymentResult) (entity.Order, error) {
	order, err := m.storage.GetOrder(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}

	if !order.AccessibleBy(caller) {
		return entity.Order{}, usecase_errors.ErrNotAuthorized
	}

	if order.IsPaid {
		return entity.Order{}, usecase_errors.NewValidationError("order already paid")
	}

	now := time.Now().UTC()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = payment
	if order.Status == entity.StatusPending {
		order.Status = entity.StatusProcessing
	}

	if err := m.storage.SaveOrder(ctx, order); err != nil {
		return entity.Order{}, err
	}

	zap.L().Info("order paid", zap.String("order_id", order.ID.String()))

	return order, nil
}

// MarkDelivered confirms delivery. An unpaid or already delivered order
// is rejected.
func (m *Manager) MarkDelivered(ctx context.Context, id entity.OrderID, trackingNumber string) (entity.Order, error) {
	order, err := m.storage.GetOrder(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}

	if order.IsDelivered {
		return entity.Order{}, usecase_errors.NewValidationError("order already delivered")
	}

	if !order.IsPaid {
		return entity.Order{}, usecase_errors.NewValidationError("order not paid yet")
	}

	m.deliverOrder(&order, trackingNumber)

	if err := m.storage.SaveOrder(ctx, order); err != nil {
		return entity.Order{}, err
	}

	zap.L().Info("order delivered", zap.String("order_id", order.ID.String()))

	return order, nil
}

// SetStatus is the admin status override. Transitioning into cancelled
// releases the reserved stock, and only once: repeated cancellation is
// a no-op at the stock level.
func (m *Manager) SetStatus(ctx context.Context, id entity.OrderID, status entity.OrderStatus, trackingNumber string) (entity.Order, error) {
	if !status.Valid() {
		return entity.Order{}, usecase_errors.NewValidationError("unknown order status: %s", status)
	}

	if status == entity.StatusCancelled {
		return m.cancelWithTracking(ctx, id, trackingNumber)
	}

	order, err := m.storage.GetOrder(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}

	if status == entity.StatusDelivered {
		if !order.IsPaid {
			return entity.Order{}, usecase_errors.NewValidationError("order not paid yet")
		}
		m.deliverOrder(&order, trackingNumber)
	} else {
		order.Status = status
		if len(trackingNumber) > 0 {
			order.TrackingNumber = trackingNumber
		}
	}

	if err := m.storage.SaveOrder(ctx, order); err != nil {
		return entity.Order{}, err
	}

	zap.L().Info("order status updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
	)

	return order, nil
}

// CancelOrder is the owner-facing cancellation. Shipped, delivered and
// already cancelled orders are rejected; reserved stock is returned to
// the catalog exactly once.
func (m *Manager) CancelOrder(ctx context.Context, caller entity.Caller, id entity.OrderID) (entity.Order, error) {
	order, err := m.storage.GetOrder(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}

	if !order.AccessibleBy(caller) {
		return entity.Order{}, usecase_errors.ErrNotAuthorized
	}

	if !order.Status.Cancellable() {
		return entity.Order{}, usecase_errors.NewValidationError("cannot cancel order in %s status", order.Status)
	}

	cancelled, err := m.storage.CancelOrder(ctx, id)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderCancelled) {
			// lost the race against a concurrent cancellation
			return entity.Order{}, usecase_errors.NewValidationError("cannot cancel order in %s status", entity.StatusCancelled)
		}

		return entity.Order{}, err
	}

	zap.L().Info("order cancelled", zap.String("order_id", cancelled.ID.String()))

	return cancelled, nil
}

func (m *Manager) GetOrderStats(ctx context.Context) (entity.OrderStats, error) {
	since := time.Now().UTC().Add(-statsWindow)

	return m.storage.GetOrderStats(ctx, since)
}

func (m *Manager) cancelWithTracking(ctx context.Context, id entity.OrderID, trackingNumber string) (entity.Order, error) {
	order, err := m.storage.CancelOrder(ctx, id)
	if err != nil {
		if !errors.Is(err, err_storage.ErrOrderCancelled) {
			return entity.Order{}, err
		}

		// already cancelled: the override stays idempotent, stock is
		// not released again
		order, err = m.storage.GetOrder(ctx, id)
		if err != nil {
			return entity.Order{}, err
		}
	}

	if len(trackingNumber) > 0 && trackingNumber != order.TrackingNumber {
		order.TrackingNumber = trackingNumber
		if err := m.storage.SaveOrder(ctx, order); err != nil {
			return entity.Order{}, err
		}
	}

	return order, nil
}

func (m *Manager) deliverOrder(order *entity.Order, trackingNumber string) {
	now := time.Now().UTC()
	order.Status = entity.StatusDelivered
	order.IsDelivered = true
	order.DeliveredAt = &now
	if len(trackingNumber) > 0 {
		order.TrackingNumber = trackingNumber
	}
}
