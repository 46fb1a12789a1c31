package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/repository"
	"hawker/internal/domain/service"
	"hawker/internal/usecase"
)

const (
	// Push providers cap multicast sends; larger recipient sets are chunked.
	pushBatchSize = 500
)

type dispatcherService struct {
	notificationRepo repository.NotificationRepository
	pushSender       service.PushSender
	logger           *slog.Logger
}

// DispatcherServiceParams holds dependencies for DispatcherService, injected by Fx.
type DispatcherServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	PushSender       service.PushSender
	Logger           *slog.Logger
}

// NewDispatcherService creates a new dispatcher service instance
func NewDispatcherService(params DispatcherServiceParams) usecase.DispatcherUsecase {
	return &dispatcherService{
		notificationRepo: params.NotificationRepo,
		pushSender:       params.PushSender,
		logger:           params.Logger,
	}
}

// Dispatch persists one in-app record per recipient and pushes to those with
// a push channel. The two effects are independent: a provider failure never
// removes records, and a record insert failure never stops the push.
func (s *dispatcherService) Dispatch(ctx context.Context, recipients []*usecase.DispatchRecipient, payload *usecase.NotificationPayload) (*usecase.DispatchResult, error) {
	if len(recipients) == 0 {
		return &usecase.DispatchResult{}, nil
	}

	pushable := make([]*usecase.DispatchRecipient, 0, len(recipients))
	for _, r := range recipients {
		if r.SubscriberID != "" {
			pushable = append(pushable, r)
		}
	}

	result := &usecase.DispatchResult{}
	pushedBySubscriber := make(map[string]bool, len(pushable))

	for i := 0; i < len(pushable); i += pushBatchSize {
		end := min(i+pushBatchSize, len(pushable))
		batch := pushable[i:end]

		ids := make([]string, 0, len(batch))
		for _, r := range batch {
			ids = append(ids, r.SubscriberID)
		}

		receipt, err := s.pushSender.SendToSubscribers(ctx, ids, &service.PushMessage{
			Title: payload.Title,
			Body:  payload.Body,
			Data:  payload.Data,
		})
		if err != nil {
			// Whole-batch failure. The in-app records below still get
			// written; the caller sees the loss in the failure list.
			s.logger.ErrorContext(ctx, "push batch failed",
				slog.Int("batch_size", len(batch)), slog.Any("error", err))
			for _, r := range batch {
				result.Failures = append(result.Failures, usecase.DispatchFailure{
					UserID: r.UserID,
					Reason: domainerrors.NewDispatchFailedError(err, "").Error(),
				})
			}
			continue
		}

		invalid := make(map[string]bool, len(receipt.InvalidSubscriberIDs))
		for _, id := range receipt.InvalidSubscriberIDs {
			invalid[id] = true
		}
		for _, r := range batch {
			if invalid[r.SubscriberID] {
				result.Failures = append(result.Failures, usecase.DispatchFailure{
					UserID: r.UserID,
					Reason: "invalid or unregistered subscriber",
				})
				continue
			}
			pushedBySubscriber[r.SubscriberID] = true
			result.Dispatched++
		}
	}

	records := make([]*entity.Notification, 0, len(recipients))
	now := time.Now()
	for _, r := range recipients {
		records = append(records, &entity.Notification{
			ID:          uuid.New(),
			RecipientID: r.UserID,
			ShopID:      payload.ShopID,
			OrderID:     payload.OrderID,
			BroadcastID: payload.BroadcastID,
			Kind:        payload.Kind,
			Title:       payload.Title,
			Body:        payload.Body,
			Data:        payload.Data,
			Pushed:      pushedBySubscriber[r.SubscriberID],
			CreatedAt:   now,
		})
	}

	if err := s.notificationRepo.BatchCreateNotifications(ctx, records); err != nil {
		// Push delivery already happened; surface the record loss without
		// undoing it.
		s.logger.ErrorContext(ctx, "failed to persist notification records",
			slog.Int("count", len(records)), slog.Any("error", err))
	}

	return result, nil
}
