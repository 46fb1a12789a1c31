package usecase

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
)

// DispatchRecipient is one target of a dispatch. A recipient with an empty
// SubscriberID gets only the in-app record.
type DispatchRecipient struct {
	UserID       uuid.UUID
	SubscriberID string
}

// NotificationPayload is the message content of one dispatch.
type NotificationPayload struct {
	ShopID      uuid.UUID
	OrderID     *uuid.UUID
	BroadcastID *uuid.UUID
	Kind        entity.NotificationKind
	Title       string
	Body        string
	Data        map[string]string
}

// DispatchFailure records one recipient the push channel could not reach.
type DispatchFailure struct {
	UserID uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

// DispatchResult summarizes a fan-out. Dispatched counts pushes the provider
// accepted; recipients without a push channel appear in neither count.
type DispatchResult struct {
	Dispatched int               `json:"dispatched"`
	Failures   []DispatchFailure `json:"failures"`
}

// DispatcherUsecase delivers one message to a set of recipients. The in-app
// record and the push attempt are independent effects: a rejected push never
// rolls back the record, and a failed record insert never blocks the push.
type DispatcherUsecase interface {
	Dispatch(ctx context.Context, recipients []*DispatchRecipient, payload *NotificationPayload) (*DispatchResult, error)
}
