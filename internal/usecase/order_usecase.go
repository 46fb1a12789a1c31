package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hawker/internal/domain/entity"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	ShopID     uuid.UUID        `json:"shop_id"`
	CustomerID uuid.UUID        `json:"customer_id"`
	Items      []OrderItemInput `json:"items"`
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	Address    string           `json:"address"`
}

// OrderUsecase defines the interface for order lifecycle use cases
type OrderUsecase interface {
	// CreateOrder places a pending order after re-checking delivery
	// eligibility against the shop's current configuration.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus moves an order along the lifecycle on behalf of the
	// shop. Confirming requires a positive preparation estimate; confirming
	// an already confirmed order revises the estimate. Rejecting records the
	// optional reason.
	UpdateOrderStatus(ctx context.Context, orderID, actorID uuid.UUID, newStatus entity.OrderStatus, estimateMinutes *int, reason string) (*entity.Order, error)

	// CancelOrder withdraws an open order on behalf of the customer.
	CancelOrder(ctx context.Context, orderID, customerID uuid.UUID) (*entity.Order, error)

	// GetOrder retrieves one order for a participant of it.
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error)

	// GetShopOrders retrieves a shop's orders for its owner.
	GetShopOrders(ctx context.Context, shopID, ownerID uuid.UUID, openOnly bool) ([]*entity.Order, error)

	// GetCustomerOrders retrieves the requesting customer's own orders.
	GetCustomerOrders(ctx context.Context, customerID uuid.UUID, openOnly bool) ([]*entity.Order, error)

	// CountPendingOrders recomputes the shop's pending order counter.
	CountPendingOrders(ctx context.Context, shopID, ownerID uuid.UUID) (int64, error)
}
