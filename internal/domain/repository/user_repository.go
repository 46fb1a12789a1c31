// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
	"hawker/internal/domain/geo"
	"hawker/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves an account by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves an account by its email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUsersByIDs retrieves the accounts matching the given IDs.
	// Missing IDs are skipped, not an error.
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// UpdateActiveRole switches the role the account currently acts under.
	UpdateActiveRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdateLocation stores the user's latest reported position.
	UpdateLocation(ctx context.Context, id uuid.UUID, location *entity.UserLocation) error

	// UpdatePushSubscription stores the user's push provider registration.
	// A nil subscription clears the registration.
	UpdatePushSubscription(ctx context.Context, id uuid.UUID, sub *entity.PushSubscription) error

	// FindUsersWithinBounds retrieves users whose last reported position falls
	// inside the box, push-registered or not. The box is a coarse pre-filter;
	// callers must refine candidates by exact distance.
	FindUsersWithinBounds(ctx context.Context, box geo.BoundingBox) ([]*entity.User, error)

	// FindUsersLocatedSince retrieves in-bounds users whose position was
	// reported at or after the cutoff. Stale positions are not targeted.
	FindUsersLocatedSince(ctx context.Context, box geo.BoundingBox, since time.Time) ([]*entity.User, error)

	// DeleteUser removes an account (soft delete).
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
