package impl

import (
	"hawker/internal/domain/entity"
	"hawker/internal/domain/geo"
	"hawker/internal/usecase"
)

type eligibilityService struct{}

// NewEligibilityService creates a new eligibility service instance
func NewEligibilityService() usecase.EligibilityUsecase {
	return &eligibilityService{}
}

// Evaluate applies the delivery eligibility rules for one shop and one
// delivery point. Missing or invalid coordinates on either side fail closed:
// delivery availability is still reported truthfully, but the location can
// never be in range and no distance is produced.
func (s *eligibilityService) Evaluate(shop *entity.Shop, deliveryPoint geo.Coordinate) usecase.Eligibility {
	if !shop.Delivery.Enabled {
		return usecase.Eligibility{}
	}

	result := usecase.Eligibility{DeliveryAvailable: true}

	if !shop.HasLocation() || !deliveryPoint.Valid() {
		return result
	}

	distance := geo.DistanceKm(shop.Location.Coordinate(), deliveryPoint)
	result.DistanceKm = &distance

	// The boundary is inclusive and compared against the raw distance;
	// rounding is applied only when the value is shown to a client.
	result.InRange = distance <= shop.Delivery.RadiusKm

	return result
}
