package repository

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
	"hawker/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStaleOrderStatus is returned when a guarded status update matched the
	// order ID but not its current status, meaning a concurrent writer won.
	ErrStaleOrderStatus = errors.New("order status changed concurrently")
)

// StatusUpdate describes one guarded order transition. The update only
// applies while the row's current status is in AllowedFrom, which makes
// concurrent conflicting transitions lose instead of overwriting.
type StatusUpdate struct {
	To              entity.OrderStatus
	AllowedFrom     []entity.OrderStatus
	EstimateMinutes *int   // Set when confirming, replaces the previous estimate.
	RejectReason    string // Set when rejecting.
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order with its line items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its line items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByShop retrieves a shop's orders, newest first.
	// With openOnly set, terminal orders are excluded.
	FindOrdersByShop(ctx context.Context, shopID uuid.UUID, openOnly bool) ([]*entity.Order, error)

	// FindOrdersByCustomer retrieves a customer's orders, newest first.
	// With openOnly set, only cancelled orders are excluded; completed and
	// rejected orders remain visible to the customer.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID, openOnly bool) ([]*entity.Order, error)

	// CountOrdersByShopAndStatus counts a shop's orders in the given status.
	// Counters are always recomputed from the order rows.
	CountOrdersByShopAndStatus(ctx context.Context, shopID uuid.UUID, status entity.OrderStatus) (int64, error)

	// UpdateOrderStatus applies a guarded transition. It returns
	// ErrOrderNotFound if no such order exists and ErrStaleOrderStatus if the
	// order exists but its status is no longer in AllowedFrom.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, update StatusUpdate) error
}
