package model

import (
	"context"
	"time"

	"github.com/ryanhellerud1/go-shop-backend/internal/app/entity"
)

// Storage is the single persistence port of the order lifecycle. All
// multi-entity mutations behind it are transactional: an order is
// created together with its line items and stock reservations, or not
// at all.
type Storage interface {
	Close() error

	CreateUser(ctx context.Context, user entity.User) error
	GetUserByLogin(ctx context.Context, login string) (entity.User, error)

	GetProduct(ctx context.Context, id entity.ProductID) (entity.Product, error)

	// CreateOrder atomically reserves stock for every line item and
	// persists the order. Returns InsufficientStockError or
	// ErrProductNotFound with no partial reservation left behind.
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, int, error)
	SaveOrder(ctx context.Context, order entity.Order) error

	// CancelOrder transitions the order to cancelled and releases the
	// reserved stock exactly once; ErrOrderCancelled when the order was
	// cancelled already.
	CancelOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)

	GetOrderStats(ctx context.Context, since time.Time) (entity.OrderStats, error)
}
