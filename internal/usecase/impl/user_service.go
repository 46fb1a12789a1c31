package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"hawker/internal/domain/constants"
	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/geo"
	"hawker/internal/domain/repository"
	"hawker/internal/usecase"
)

type userService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
	}
}

// RegisterUser creates an account holding the requested roles. Identity is
// asserted by the external provider; only the profile lives here.
func (s *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if input.Email == "" || input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and name are required")
	}

	roles := make(entity.Roles, 0, len(input.Roles))
	for _, role := range input.Roles {
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
		}
		if !roles.Contains(role) {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleCustomer}
	}

	now := time.Now()
	user := &entity.User{
		ID:         uuid.New(),
		Email:      input.Email,
		Name:       input.Name,
		Phone:      input.Phone,
		Roles:      roles,
		ActiveRole: roles[0],
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// GetUser retrieves an account by ID.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// SwitchActiveRole changes which side of the marketplace the account acts
// under. This is a view preference; the authorized role set never changes here.
func (s *userService) SwitchActiveRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Roles.Contains(role) {
		return nil, domainerrors.ErrRoleNotHeld
	}

	if err := s.userRepo.UpdateActiveRole(ctx, id, role); err != nil {
		return nil, errors.Wrap(err, "failed to switch active role")
	}

	user.ActiveRole = role
	user.UpdatedAt = time.Now()

	return user, nil
}

// UpdateLocation stores the user's latest reported position.
func (s *userService) UpdateLocation(ctx context.Context, id uuid.UUID, input *usecase.UpdateLocationInput) error {
	point := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !point.Valid() {
		return domainerrors.ErrInvalidCoordinates
	}

	location := &entity.UserLocation{
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Address:    input.Address,
		RecordedAt: time.Now(),
	}

	if err := s.userRepo.UpdateLocation(ctx, id, location); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		return errors.Wrap(err, "failed to update location")
	}

	return nil
}

// UpdatePushSubscription registers or updates the push channel. Enabling
// requires a subscriber ID; disabling keeps the ID for later re-enable.
func (s *userService) UpdatePushSubscription(ctx context.Context, id uuid.UUID, input *usecase.PushSubscriptionInput) error {
	if input.Enabled && input.SubscriberID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("enabling push requires a subscriber id")
	}

	sub := &entity.PushSubscription{
		SubscriberID: input.SubscriberID,
		Enabled:      input.Enabled,
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.UpdatePushSubscription(ctx, id, sub); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		return errors.Wrap(err, "failed to update push subscription")
	}

	return nil
}

// GetNotifications retrieves the user's in-app records with pagination.
func (s *userService) GetNotifications(ctx context.Context, id uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = constants.DefaultNotificationPageSize
	}
	if limit > constants.MaxNotificationPageSize {
		limit = constants.MaxNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindNotificationsByRecipient(ctx, id, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CountUnreadNotifications recomputes the unread badge counter on every call.
func (s *userService) CountUnreadNotifications(ctx context.Context, id uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnreadByRecipient(ctx, id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkNotificationRead stamps one record as read for its recipient.
func (s *userService) MarkNotificationRead(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound
		}
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
