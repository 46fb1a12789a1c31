package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"hawker/config"
	"hawker/internal/domain/entity"
	"hawker/internal/domain/geo"
	"hawker/internal/domain/repository"
	"hawker/internal/usecase"
)

type targetingService struct {
	userRepo       repository.UserRepository
	locationMaxAge time.Duration
}

// TargetingServiceParams holds dependencies for TargetingService, injected by Fx.
type TargetingServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Cfg      *config.Config
}

// NewTargetingService creates a new targeting service instance
func NewTargetingService(params TargetingServiceParams) usecase.TargetingUsecase {
	return &targetingService{
		userRepo:       params.UserRepo,
		locationMaxAge: params.Cfg.Broadcast.LocationMaxAge,
	}
}

// FindRecipientsWithin returns every located user within the radius of the
// center. The repository narrows candidates to a bounding box first; the
// exact Haversine check then decides inclusion, so boundary behavior does not
// depend on the pre-filter. With a location max age configured, users whose
// position was reported before the cutoff are not candidates at all.
func (s *targetingService) FindRecipientsWithin(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*usecase.NearbyUser, error) {
	box := geo.BoxAround(center, radiusKm)

	var candidates []*entity.User
	var err error
	if s.locationMaxAge > 0 {
		candidates, err = s.userRepo.FindUsersLocatedSince(ctx, box, time.Now().Add(-s.locationMaxAge))
	} else {
		candidates, err = s.userRepo.FindUsersWithinBounds(ctx, box)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users within bounds")
	}

	return refineByDistance(candidates, center, radiusKm), nil
}

// FindRecipientsAmong confirms which of the given users are currently within
// the radius, applying the same inclusive distance rule. Used by the async
// worker to re-check candidates against fresh locations.
func (s *targetingService) FindRecipientsAmong(ctx context.Context, center geo.Coordinate, radiusKm float64, userIDs []uuid.UUID) ([]*usecase.NearbyUser, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	users, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	return refineByDistance(users, center, radiusKm), nil
}

// refineByDistance keeps users whose exact distance to the center does not
// exceed the radius. The boundary is inclusive and uses the unrounded value.
func refineByDistance(users []*entity.User, center geo.Coordinate, radiusKm float64) []*usecase.NearbyUser {
	var nearby []*usecase.NearbyUser
	for _, user := range users {
		if !user.HasLocation() {
			continue
		}

		distance := geo.DistanceKm(center, user.Location.Coordinate())
		if distance > radiusKm {
			continue
		}

		target := &usecase.NearbyUser{
			UserID:     user.ID,
			DistanceKm: distance,
		}
		if user.CanReceivePush() {
			target.SubscriberID = user.Subscription.SubscriberID
		}
		nearby = append(nearby, target)
	}

	return nearby
}
