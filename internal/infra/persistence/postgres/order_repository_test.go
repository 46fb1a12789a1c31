package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hawker/internal/domain/entity"
)

// The two active-order views filter differently: the shop dashboard keeps
// only orders still needing action, while the customer list hides just the
// orders they cancelled themselves.

func TestDashboardStatuses_ExcludeAllTerminalOrders(t *testing.T) {
	open := dashboardStatuses()

	assert.Contains(t, open, entity.OrderStatusPending.String())
	assert.Contains(t, open, entity.OrderStatusConfirmed.String())
	assert.NotContains(t, open, entity.OrderStatusCompleted.String())
	assert.NotContains(t, open, entity.OrderStatusRejected.String())
	assert.NotContains(t, open, entity.OrderStatusCancelled.String())
}

func TestCustomerHiddenStatuses_OnlyCancelled(t *testing.T) {
	hidden := customerHiddenStatuses()

	assert.Equal(t, []string{entity.OrderStatusCancelled.String()}, hidden)
	// Shop decisions stay visible in the customer's active list.
	assert.NotContains(t, hidden, entity.OrderStatusCompleted.String())
	assert.NotContains(t, hidden, entity.OrderStatusRejected.String())
}
