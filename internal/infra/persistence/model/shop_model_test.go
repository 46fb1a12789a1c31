package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hawker/internal/domain/entity"
)

func TestShopModel_RoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Corner Fruit Stand",
		Category:    "groceries",
		Description: "Fresh produce daily",
		Phone:       "+886-2-1234-5678",
		Location: &entity.ShopLocation{
			Latitude:  25.0330,
			Longitude: 121.5654,
			Address:   "Xinyi District",
		},
		IsOpen: true,
		StatusEstimate: &entity.StatusEstimate{
			Direction:       entity.EstimateClosesIn,
			DurationMinutes: 45,
			UpdatedAt:       now,
		},
		Delivery:  entity.DeliveryConfig{Enabled: true, RadiusKm: 5},
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := FromShopEntity(shop).ToEntity()

	assert.Equal(t, shop.Phone, got.Phone)
	assert.Equal(t, shop.Description, got.Description)
	require.NotNil(t, got.Location)
	assert.Equal(t, shop.Location.Address, got.Location.Address)
	require.NotNil(t, got.StatusEstimate)
	assert.Equal(t, entity.EstimateClosesIn, got.StatusEstimate.Direction)
	assert.Equal(t, shop.Delivery, got.Delivery)
}

func TestShopModel_ToEntity_WithoutOptionalFields(t *testing.T) {
	m := &ShopModel{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Pop-up Stall",
	}

	got := m.ToEntity()

	assert.Nil(t, got.Location)
	assert.Nil(t, got.StatusEstimate)
	assert.False(t, got.Delivery.Enabled)
}
