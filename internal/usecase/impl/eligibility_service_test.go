package impl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hawker/internal/domain/entity"
	"hawker/internal/domain/geo"
)

// Taipei 101 and Taipei Main Station, roughly 5.2 km apart.
var (
	testShopPoint     = geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	testDeliveryPoint = geo.Coordinate{Latitude: 25.0478, Longitude: 121.5170}
)

func testShopWithDelivery(radiusKm float64) *entity.Shop {
	return &entity.Shop{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Night Market Stand",
		Location: &entity.ShopLocation{
			Latitude:  testShopPoint.Latitude,
			Longitude: testShopPoint.Longitude,
		},
		Delivery: entity.DeliveryConfig{Enabled: true, RadiusKm: radiusKm},
	}
}

func TestEligibilityService_Evaluate_DeliveryDisabled(t *testing.T) {
	service := NewEligibilityService()

	shop := testShopWithDelivery(10)
	shop.Delivery.Enabled = false

	verdict := service.Evaluate(shop, testDeliveryPoint)

	assert.False(t, verdict.DeliveryAvailable)
	assert.False(t, verdict.InRange)
	assert.Nil(t, verdict.DistanceKm)
	assert.False(t, verdict.Eligible())
}

func TestEligibilityService_Evaluate_ShopWithoutLocation(t *testing.T) {
	service := NewEligibilityService()

	shop := testShopWithDelivery(10)
	shop.Location = nil

	verdict := service.Evaluate(shop, testDeliveryPoint)

	assert.True(t, verdict.DeliveryAvailable)
	assert.False(t, verdict.InRange)
	assert.Nil(t, verdict.DistanceKm)
	assert.False(t, verdict.Eligible())
}

func TestEligibilityService_Evaluate_InvalidDeliveryPoint(t *testing.T) {
	service := NewEligibilityService()

	shop := testShopWithDelivery(10)
	point := geo.Coordinate{Latitude: 95.0, Longitude: 121.5}

	verdict := service.Evaluate(shop, point)

	assert.True(t, verdict.DeliveryAvailable)
	assert.False(t, verdict.InRange)
	assert.Nil(t, verdict.DistanceKm)
}

func TestEligibilityService_Evaluate_WithinRadius(t *testing.T) {
	service := NewEligibilityService()

	shop := testShopWithDelivery(10)

	verdict := service.Evaluate(shop, testDeliveryPoint)

	assert.True(t, verdict.DeliveryAvailable)
	assert.True(t, verdict.InRange)
	require.NotNil(t, verdict.DistanceKm)
	assert.InDelta(t, 5.2, *verdict.DistanceKm, 0.3)
	assert.True(t, verdict.Eligible())
}

func TestEligibilityService_Evaluate_OutsideRadius(t *testing.T) {
	service := NewEligibilityService()

	shop := testShopWithDelivery(3)

	verdict := service.Evaluate(shop, testDeliveryPoint)

	assert.True(t, verdict.DeliveryAvailable)
	assert.False(t, verdict.InRange)
	require.NotNil(t, verdict.DistanceKm)
	assert.False(t, verdict.Eligible())
}

func TestEligibilityService_Evaluate_BoundaryInclusive(t *testing.T) {
	service := NewEligibilityService()

	exact := geo.DistanceKm(testShopPoint, testDeliveryPoint)
	shop := testShopWithDelivery(exact)

	verdict := service.Evaluate(shop, testDeliveryPoint)

	assert.True(t, verdict.InRange)
	assert.True(t, verdict.Eligible())
}

func TestEligibilityService_Evaluate_SamePoint(t *testing.T) {
	service := NewEligibilityService()

	shop := testShopWithDelivery(1)

	verdict := service.Evaluate(shop, testShopPoint)

	assert.True(t, verdict.InRange)
	require.NotNil(t, verdict.DistanceKm)
	assert.Zero(t, *verdict.DistanceKm)
}
