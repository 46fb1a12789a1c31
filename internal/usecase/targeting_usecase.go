package usecase

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/geo"
)

// NearbyUser is one targeting candidate confirmed to be inside the radius.
// SubscriberID is empty when the user has no enabled push registration.
type NearbyUser struct {
	UserID       uuid.UUID
	SubscriberID string
	DistanceKm   float64
}

// TargetingUsecase finds the users a radius-scoped message should reach.
// Both lookups pre-filter candidates with a bounding box and then confirm
// each one against the exact distance, boundary inclusive.
type TargetingUsecase interface {
	// FindRecipientsWithin returns every located user within the radius of
	// the center, push-registered or not.
	FindRecipientsWithin(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*NearbyUser, error)

	// FindRecipientsAmong confirms which of the given users are currently
	// within the radius. Users without a usable location are dropped.
	FindRecipientsAmong(ctx context.Context, center geo.Coordinate, radiusKm float64, userIDs []uuid.UUID) ([]*NearbyUser, error)
}
