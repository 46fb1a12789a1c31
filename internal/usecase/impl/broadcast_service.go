package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"hawker/config"
	deliverycontext "hawker/internal/delivery/context"
	"hawker/internal/domain/constants"
	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/repository"
	"hawker/internal/domain/service"
	"hawker/internal/usecase"
)

type broadcastService struct {
	broadcastRepo repository.BroadcastRepository
	shopRepo      repository.ShopRepository
	targeting     usecase.TargetingUsecase
	dispatcher    usecase.DispatcherUsecase
	publisher     service.EventPublisher
	config        *config.Config
	logger        *slog.Logger
}

// BroadcastServiceParams holds dependencies for BroadcastService, injected by Fx.
type BroadcastServiceParams struct {
	fx.In

	BroadcastRepo repository.BroadcastRepository
	ShopRepo      repository.ShopRepository
	Targeting     usecase.TargetingUsecase
	Dispatcher    usecase.DispatcherUsecase
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBroadcastService creates a new broadcast service instance
func NewBroadcastService(params BroadcastServiceParams) usecase.BroadcastUsecase {
	return &broadcastService{
		broadcastRepo: params.BroadcastRepo,
		shopRepo:      params.ShopRepo,
		targeting:     params.Targeting,
		dispatcher:    params.Dispatcher,
		publisher:     params.Publisher,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// BroadcastNearby publishes one radius-scoped announcement. The broadcast
// record is durable before any fan-out runs. With a message queue configured
// the push stage is handed to the worker and the returned result covers the
// targeting stage only; otherwise the fan-out completes inline.
func (s *broadcastService) BroadcastNearby(ctx context.Context, input *usecase.BroadcastInput) (*entity.ShopBroadcast, *usecase.DispatchResult, error) {
	if err := validateBroadcastInput(input); err != nil {
		return nil, nil, err
	}

	shop, err := s.shopRepo.FindShopByID(ctx, input.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, nil, domainerrors.ErrShopNotFound
		}
		return nil, nil, errors.Wrap(err, "failed to find shop")
	}
	if shop.OwnerID != input.OwnerID {
		return nil, nil, domainerrors.ErrShopOwnershipViolation
	}
	if !shop.HasLocation() {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("the shop has no location to broadcast from")
	}

	center := shop.Location.Coordinate()
	now := time.Now()
	broadcast := &entity.ShopBroadcast{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		Latitude:    center.Latitude,
		Longitude:   center.Longitude,
		RadiusKm:    input.RadiusKm,
		Title:       input.Title,
		Body:        input.Body,
		Data:        input.Data,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.broadcastRepo.CreateBroadcast(ctx, broadcast); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create broadcast")
	}

	recipients, err := s.targeting.FindRecipientsWithin(ctx, center, input.RadiusKm)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to target broadcast recipients")
	}
	broadcast.TotalTargeted = len(recipients)

	if len(recipients) == 0 {
		if err := s.broadcastRepo.UpdateBroadcastCounters(ctx, broadcast.ID, 0, 0, 0); err != nil {
			return nil, nil, errors.Wrap(err, "failed to update broadcast counters")
		}
		return broadcast, &usecase.DispatchResult{}, nil
	}

	if s.asyncEnabled() {
		if err := s.publishEvent(ctx, broadcast, recipients); err != nil {
			// Fall back to inline fan-out; the announcement must not be
			// lost because the queue is unavailable.
			s.logger.WarnContext(ctx, "broadcast event publish failed, dispatching inline",
				slog.String("broadcast_id", broadcast.ID.String()), slog.Any("error", err))
		} else {
			if err := s.broadcastRepo.UpdateBroadcastCounters(ctx, broadcast.ID, broadcast.TotalTargeted, 0, 0); err != nil {
				return nil, nil, errors.Wrap(err, "failed to update broadcast counters")
			}
			return broadcast, &usecase.DispatchResult{}, nil
		}
	}

	result := s.dispatchInline(ctx, broadcast, shop, recipients)

	return broadcast, result, nil
}

// GetShopBroadcasts retrieves broadcast history for a shop with pagination
func (s *broadcastService) GetShopBroadcasts(ctx context.Context, shopID, ownerID uuid.UUID, limit, offset int) ([]*entity.ShopBroadcast, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}
		return nil, errors.Wrap(err, "failed to find shop")
	}
	if shop.OwnerID != ownerID {
		return nil, domainerrors.ErrShopOwnershipViolation
	}

	if limit <= 0 {
		limit = constants.DefaultNotificationPageSize
	}
	if limit > constants.MaxNotificationPageSize {
		limit = constants.MaxNotificationPageSize
	}

	broadcasts, err := s.broadcastRepo.FindBroadcastsByShop(ctx, shopID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list broadcasts")
	}

	return broadcasts, nil
}

func (s *broadcastService) asyncEnabled() bool {
	return s.config.PubSub != nil && s.config.PubSub.Provider != ""
}

func (s *broadcastService) publishEvent(ctx context.Context, broadcast *entity.ShopBroadcast, recipients []*usecase.NearbyUser) error {
	candidateIDs := make([]string, 0, len(recipients))
	for _, r := range recipients {
		candidateIDs = append(candidateIDs, r.UserID.String())
	}

	event := &service.BroadcastEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		BroadcastID:  broadcast.ID.String(),
		ShopID:       broadcast.ShopID.String(),
		Latitude:     broadcast.Latitude,
		Longitude:    broadcast.Longitude,
		RadiusKm:     broadcast.RadiusKm,
		Title:        broadcast.Title,
		Body:         broadcast.Body,
		Data:         broadcast.Data,
		CandidateIDs: candidateIDs,
	}

	return s.publisher.PublishBroadcastEvent(ctx, event)
}

func (s *broadcastService) dispatchInline(ctx context.Context, broadcast *entity.ShopBroadcast, shop *entity.Shop, recipients []*usecase.NearbyUser) *usecase.DispatchResult {
	targets := make([]*usecase.DispatchRecipient, 0, len(recipients))
	for _, r := range recipients {
		targets = append(targets, &usecase.DispatchRecipient{
			UserID:       r.UserID,
			SubscriberID: r.SubscriberID,
		})
	}

	broadcastID := broadcast.ID
	data := map[string]string{
		"broadcast_id": broadcast.ID.String(),
		"shop_id":      shop.ID.String(),
	}
	for k, v := range broadcast.Data {
		data[k] = v
	}

	result, err := s.dispatcher.Dispatch(ctx, targets, &usecase.NotificationPayload{
		ShopID:      shop.ID,
		BroadcastID: &broadcastID,
		Kind:        entity.NotificationKindBroadcast,
		Title:       broadcast.Title,
		Body:        broadcast.Body,
		Data:        data,
	})
	if err != nil {
		// The broadcast record stays; the counters just reflect that no
		// push went out.
		s.logger.ErrorContext(ctx, "broadcast dispatch failed",
			slog.String("broadcast_id", broadcast.ID.String()), slog.Any("error", err))
		result = &usecase.DispatchResult{}
		for _, t := range targets {
			result.Failures = append(result.Failures, usecase.DispatchFailure{
				UserID: t.UserID,
				Reason: "dispatch failed",
			})
		}
	}

	broadcast.TotalSent = result.Dispatched
	broadcast.TotalFailed = len(result.Failures)
	if err := s.broadcastRepo.UpdateBroadcastCounters(ctx, broadcast.ID, broadcast.TotalTargeted, broadcast.TotalSent, broadcast.TotalFailed); err != nil {
		s.logger.ErrorContext(ctx, "failed to update broadcast counters",
			slog.String("broadcast_id", broadcast.ID.String()), slog.Any("error", err))
	}

	return result
}

func validateBroadcastInput(input *usecase.BroadcastInput) error {
	if input.Title == "" || input.Body == "" {
		return domainerrors.ErrValidationFailed.WithDetails("broadcast title and body are required")
	}
	if input.RadiusKm <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("broadcast radius must be positive")
	}
	if input.RadiusKm > constants.MaxBroadcastRadiusKm {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("broadcast radius cannot exceed %.0f km", constants.MaxBroadcastRadiusKm))
	}

	return nil
}
