package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition_EveryEdge(t *testing.T) {
	statuses := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusCompleted,
		OrderStatusRejected,
		OrderStatusCancelled,
	}

	legal := map[OrderStatus]map[OrderStatus]bool{
		OrderStatusPending: {
			OrderStatusConfirmed: true,
			OrderStatusRejected:  true,
			OrderStatusCancelled: true,
		},
		OrderStatusConfirmed: {
			OrderStatusConfirmed: true,
			OrderStatusCompleted: true,
			OrderStatusRejected:  true,
			OrderStatusCancelled: true,
		},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := legal[from][to]
			assert.Equal(t, want, CanTransition(from, to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusRejected.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestTransitionSources(t *testing.T) {
	sources := TransitionSources(OrderStatusConfirmed)

	assert.ElementsMatch(t, []OrderStatus{OrderStatusPending, OrderStatusConfirmed}, sources)
	assert.Empty(t, TransitionSources(OrderStatusPending), "nothing transitions back to pending")
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := OrderItem{Quantity: 3, UnitPrice: decimal.RequireFromString("45.50")}

	assert.True(t, decimal.RequireFromString("136.50").Equal(item.LineTotal()))
}
