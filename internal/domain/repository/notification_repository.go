package repository

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
	"hawker/internal/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrBroadcastNotFound is returned when a broadcast is not found.
	ErrBroadcastNotFound = errors.New("broadcast not found")
)

// NotificationRepository defines the interface for in-app notification records.
type NotificationRepository interface {
	// CreateNotification persists a single recipient record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// BatchCreateNotifications persists recipient records in a batch for better performance.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// FindNotificationsByRecipient retrieves a user's records, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnreadByRecipient counts a user's unread records.
	CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkNotificationRead stamps the read time on a record owned by the recipient.
	MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error
}

// BroadcastRepository defines the interface for shop broadcast records.
type BroadcastRepository interface {
	// CreateBroadcast persists a new broadcast before the fan-out runs.
	CreateBroadcast(ctx context.Context, broadcast *entity.ShopBroadcast) error

	// FindBroadcastByID retrieves a broadcast by its unique ID.
	FindBroadcastByID(ctx context.Context, id uuid.UUID) (*entity.ShopBroadcast, error)

	// FindBroadcastsByShop retrieves a shop's broadcasts, newest first.
	FindBroadcastsByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.ShopBroadcast, error)

	// UpdateBroadcastCounters overwrites the fan-out counters after dispatch.
	UpdateBroadcastCounters(ctx context.Context, id uuid.UUID, targeted, sent, failed int) error
}
