package usecase

import (
	"hawker/internal/domain/entity"
	"hawker/internal/domain/geo"
)

// Eligibility is the outcome of a delivery eligibility check. DistanceKm is
// nil whenever either endpoint has no usable location; the check then fails
// closed with InRange false.
type Eligibility struct {
	DeliveryAvailable bool     `json:"delivery_available"`
	InRange           bool     `json:"in_range"`
	DistanceKm        *float64 `json:"distance_km"`
}

// Eligible reports whether an order could actually be delivered.
func (e Eligibility) Eligible() bool {
	return e.DeliveryAvailable && e.InRange
}

// EligibilityUsecase decides whether a shop can deliver to a customer location.
type EligibilityUsecase interface {
	// Evaluate applies the eligibility rules for one shop and one delivery
	// point. The radius boundary is inclusive and is compared against the
	// unrounded distance.
	Evaluate(shop *entity.Shop, deliveryPoint geo.Coordinate) Eligibility
}
