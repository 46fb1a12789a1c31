// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents where an order sits in its lifecycle.
type OrderStatus string

const (
	// OrderStatusPending means the order was placed and awaits the shop's decision.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed means the shop accepted the order and gave an estimate.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusCompleted means the order was fulfilled. Terminal.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusRejected means the shop declined the order. Terminal.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusCancelled means the customer withdrew the order. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted,
		OrderStatusRejected, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave this status.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// allowedTransitions enumerates every legal edge of the order lifecycle.
// A confirmed order may be confirmed again to revise the estimate.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {
		OrderStatusConfirmed,
		OrderStatusRejected,
		OrderStatusCancelled,
	},
	OrderStatusConfirmed: {
		OrderStatusConfirmed,
		OrderStatusCompleted,
		OrderStatusRejected,
		OrderStatusCancelled,
	},
	OrderStatusCompleted: {},
	OrderStatusRejected:  {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionSources returns every status from which the target is reachable.
// The repository uses this as the status guard of the transition update.
func TransitionSources(to OrderStatus) []OrderStatus {
	var sources []OrderStatus
	for from, nexts := range allowedTransitions {
		for _, next := range nexts {
			if next == to {
				sources = append(sources, from)
				break
			}
		}
	}
	return sources
}

// Order is a customer's purchase request against a single shop.
type Order struct {
	ID               uuid.UUID       // The Global Unique Identifier for the order.
	ShopID           uuid.UUID       // The shop the order was placed against.
	CustomerID       uuid.UUID       // The account that placed the order.
	CustomerName     string          // Customer display name, snapshotted at creation.
	CustomerPhone    string          // Customer contact number, snapshotted at creation.
	Status           OrderStatus     // Current lifecycle status.
	Items            []OrderItem     // Ordered line items, at least one.
	TotalAmount      decimal.Decimal // Sum of line totals, snapshotted at creation.
	DeliveryLocation *OrderLocation  // Where the order should be delivered.
	DistanceKm       float64         // Shop-to-customer distance measured at creation.
	EstimateMinutes  *int            // Preparation estimate, set when confirmed.
	RejectReason     string          // Shopkeeper's reason, set when rejected.
	PlacedAt         time.Time       // When the customer placed the order.
	DecidedAt        *time.Time      // When the shop last confirmed or rejected.
	ClosedAt         *time.Time      // When the order reached a terminal status.
	CreatedAt        time.Time       // Timestamp of when this record was created.
	UpdatedAt        time.Time       // Timestamp of the last modification.
}

// OrderItem is one purchased line with its price snapshotted at order time.
type OrderItem struct {
	ID        uuid.UUID       // The Global Unique Identifier for the line.
	OrderID   uuid.UUID       // The order this line belongs to.
	Name      string          // Item name as shown at order time.
	Quantity  int             // Units ordered, at least one.
	UnitPrice decimal.Decimal // Price per unit at order time.
}

// LineTotal returns quantity times unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderLocation is the delivery point the customer chose at checkout.
type OrderLocation struct {
	Latitude  float64 // WGS84 latitude in decimal degrees.
	Longitude float64 // WGS84 longitude in decimal degrees.
	Address   string  // Human-readable address label.
}

// IsOpen reports whether the order still awaits shop or customer action.
func (o *Order) IsOpen() bool {
	return !o.Status.IsTerminal()
}
