package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/repository"
	mockRepo "hawker/internal/mocks/repository"
	"hawker/internal/usecase"
)

type userServiceFixtures struct {
	service          usecase.UserUsecase
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo:         userRepo,
			NotificationRepo: notificationRepo,
		}),
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email: "amma@example.com",
		Name:  "Amma",
		Roles: []entity.Role{entity.RoleShopkeeper, entity.RoleCustomer, entity.RoleShopkeeper},
	}

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, input.Email, user.Email)
	// Duplicate roles collapse; the first role becomes the active one.
	assert.Equal(t, entity.Roles{entity.RoleShopkeeper, entity.RoleCustomer}, user.Roles)
	assert.Equal(t, entity.RoleShopkeeper, user.ActiveRole)
}

func TestUserService_RegisterUser_DefaultsToCustomer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "amma@example.com", Name: "Amma"}

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, user.Roles)
	assert.Equal(t, entity.RoleCustomer, user.ActiveRole)
}

func TestUserService_RegisterUser_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{Email: "amma@example.com"})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_RegisterUser_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterUserInput{
		Email: "amma@example.com",
		Name:  "Amma",
		Roles: []entity.Role{"courier"},
	}

	_, err := fx.service.RegisterUser(context.Background(), input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "amma@example.com", Name: "Amma"}

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	_, err := fx.service.RegisterUser(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_SwitchActiveRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:         userID,
		Roles:      entity.Roles{entity.RoleCustomer, entity.RoleShopkeeper},
		ActiveRole: entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().UpdateActiveRole(ctx, userID, entity.RoleShopkeeper).Return(nil)

	user, err := fx.service.SwitchActiveRole(ctx, userID, entity.RoleShopkeeper)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopkeeper, user.ActiveRole)
}

func TestUserService_SwitchActiveRole_RoleNotHeld(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:         userID,
		Roles:      entity.Roles{entity.RoleCustomer},
		ActiveRole: entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(existing, nil)

	_, err := fx.service.SwitchActiveRole(ctx, userID, entity.RoleShopkeeper)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotHeld)
}

func TestUserService_SwitchActiveRole_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.SwitchActiveRole(context.Background(), uuid.New(), "courier")
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_UpdateLocation_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateLocationInput{Latitude: 25.0330, Longitude: 121.5654, Address: "Xinyi District"}

	fx.userRepo.EXPECT().
		UpdateLocation(ctx, userID, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	err := fx.service.UpdateLocation(ctx, userID, input)
	require.NoError(t, err)
}

func TestUserService_UpdateLocation_InvalidCoordinates(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.UpdateLocationInput{Latitude: 95.0, Longitude: 121.5654}

	err := fx.service.UpdateLocation(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestUserService_UpdateLocation_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateLocationInput{Latitude: 25.0330, Longitude: 121.5654}

	fx.userRepo.EXPECT().
		UpdateLocation(ctx, userID, mock.AnythingOfType("*entity.UserLocation")).
		Return(repository.ErrUserNotFound)

	err := fx.service.UpdateLocation(ctx, userID, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdatePushSubscription_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.PushSubscriptionInput{SubscriberID: "player-9", Enabled: true}

	fx.userRepo.EXPECT().
		UpdatePushSubscription(ctx, userID, mock.AnythingOfType("*entity.PushSubscription")).
		Return(nil)

	err := fx.service.UpdatePushSubscription(ctx, userID, input)
	require.NoError(t, err)
}

func TestUserService_UpdatePushSubscription_EnableWithoutID(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.PushSubscriptionInput{Enabled: true}

	err := fx.service.UpdatePushSubscription(context.Background(), uuid.New(), input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_GetNotifications_ClampsPageSize(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), RecipientID: userID, CreatedAt: time.Now()},
	}

	fx.notificationRepo.EXPECT().
		FindNotificationsByRecipient(ctx, userID, 100, 0).
		Return(notifications, nil)

	got, err := fx.service.GetNotifications(ctx, userID, 500, -3)
	require.NoError(t, err)
	assert.Equal(t, notifications, got)
}

func TestUserService_GetNotifications_DefaultPageSize(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationsByRecipient(ctx, userID, 20, 0).
		Return(nil, nil)

	_, err := fx.service.GetNotifications(ctx, userID, 0, 0)
	require.NoError(t, err)
}

func TestUserService_CountUnreadNotifications(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CountUnreadByRecipient(ctx, userID).
		Return(int64(7), nil)

	count, err := fx.service.CountUnreadNotifications(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestUserService_MarkNotificationRead_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkNotificationRead(ctx, notificationID, userID).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkNotificationRead(ctx, notificationID, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
