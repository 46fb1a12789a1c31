// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
)

// RegisterUserInput carries a new account registration.
type RegisterUserInput struct {
	Email string        `json:"email"`
	Name  string        `json:"name"`
	Phone string        `json:"phone"`
	Roles []entity.Role `json:"roles"`
}

// UpdateLocationInput carries a location report from a client.
type UpdateLocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// PushSubscriptionInput carries a push registration change.
type PushSubscriptionInput struct {
	SubscriberID string `json:"subscriber_id"`
	Enabled      bool   `json:"enabled"`
}

// UserUsecase defines the interface for account management use cases.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates an account holding the requested roles.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetUser retrieves an account by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SwitchActiveRole changes which side of the marketplace the account
	// acts under. The account must already hold the role.
	SwitchActiveRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error)

	// UpdateLocation stores the user's latest reported position.
	UpdateLocation(ctx context.Context, id uuid.UUID, input *UpdateLocationInput) error

	// UpdatePushSubscription registers or updates the push channel.
	UpdatePushSubscription(ctx context.Context, id uuid.UUID, input *PushSubscriptionInput) error

	// GetNotifications retrieves the user's in-app records with pagination.
	GetNotifications(ctx context.Context, id uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnreadNotifications recomputes the unread badge counter.
	CountUnreadNotifications(ctx context.Context, id uuid.UUID) (int64, error)

	// MarkNotificationRead stamps one record as read for its recipient.
	MarkNotificationRead(ctx context.Context, notificationID, recipientID uuid.UUID) error
}
