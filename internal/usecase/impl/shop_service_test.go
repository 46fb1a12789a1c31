package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/geo"
	"hawker/internal/domain/repository"
	mockRepo "hawker/internal/mocks/repository"
	mockService "hawker/internal/mocks/service"
	mockUsecase "hawker/internal/mocks/usecase"
	"hawker/internal/usecase"
)

type shopServiceFixtures struct {
	service     usecase.ShopUsecase
	shopRepo    *mockRepo.MockShopRepository
	userRepo    *mockRepo.MockUserRepository
	eligibility *mockUsecase.MockEligibilityUsecase
	qrcode      *mockService.MockQRCodeService
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	eligibility := mockUsecase.NewMockEligibilityUsecase(t)
	qrcode := mockService.NewMockQRCodeService(t)

	return shopServiceFixtures{
		service: NewShopService(ShopServiceParams{
			ShopRepo:    shopRepo,
			UserRepo:    userRepo,
			Eligibility: eligibility,
			QRCode:      qrcode,
		}),
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		eligibility: eligibility,
		qrcode:      qrcode,
	}
}

func shopkeeperUser() *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		Email:      "keeper@example.com",
		Name:       "Keeper",
		Roles:      entity.Roles{entity.RoleCustomer, entity.RoleShopkeeper},
		ActiveRole: entity.RoleShopkeeper,
	}
}

func TestShopService_CreateShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	owner := shopkeeperUser()
	lat, lng := 25.0330, 121.5654
	input := &usecase.CreateShopInput{
		OwnerID:   owner.ID,
		Name:      "Corner Fruit Stand",
		Category:  "groceries",
		Phone:     "+886-2-1234-5678",
		Latitude:  &lat,
		Longitude: &lng,
		Address:   "Xinyi District",
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, owner.ID).Return(owner, nil)
	fx.shopRepo.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("*entity.Shop")).
		Return(nil)

	shop, err := fx.service.CreateShop(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, shop.OwnerID)
	assert.Equal(t, input.Name, shop.Name)
	assert.Equal(t, input.Phone, shop.Phone)
	require.NotNil(t, shop.Location)
	assert.Equal(t, lat, shop.Location.Latitude)
	assert.Equal(t, "Xinyi District", shop.Location.Address)
}

func TestShopService_CreateShop_MissingName(t *testing.T) {
	fx := createTestShopService(t)

	_, err := fx.service.CreateShop(context.Background(), &usecase.CreateShopInput{OwnerID: uuid.New()})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestShopService_CreateShop_OwnerNotShopkeeper(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	owner := &entity.User{
		ID:         uuid.New(),
		Roles:      entity.Roles{entity.RoleCustomer},
		ActiveRole: entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, owner.ID).Return(owner, nil)

	_, err := fx.service.CreateShop(ctx, &usecase.CreateShopInput{OwnerID: owner.ID, Name: "Stand"})
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotHeld)
}

func TestShopService_CreateShop_InvalidCoordinates(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	owner := shopkeeperUser()
	lat, lng := 95.0, 121.5654

	fx.userRepo.EXPECT().FindUserByID(ctx, owner.ID).Return(owner, nil)

	_, err := fx.service.CreateShop(ctx, &usecase.CreateShopInput{
		OwnerID:   owner.ID,
		Name:      "Stand",
		Latitude:  &lat,
		Longitude: &lng,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestShopService_CreateShop_Duplicate(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	owner := shopkeeperUser()

	fx.userRepo.EXPECT().FindUserByID(ctx, owner.ID).Return(owner, nil)
	fx.shopRepo.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("*entity.Shop")).
		Return(repository.ErrDuplicateShop)

	_, err := fx.service.CreateShop(ctx, &usecase.CreateShopInput{OwnerID: owner.ID, Name: "Stand"})
	assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyExists)
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().FindShopByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	_, err := fx.service.GetShop(ctx, shopID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_GetShopForCustomer_NoCustomerLocation(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	customer := &entity.User{ID: uuid.New()}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, customer.ID).Return(customer, nil)

	view, err := fx.service.GetShopForCustomer(ctx, shop.ID, customer.ID)
	require.NoError(t, err)
	// Availability is reported, range is never assumed without a location.
	assert.True(t, view.DeliveryAvailable)
	assert.False(t, view.InRange)
	assert.Nil(t, view.DistanceKm)
}

func TestShopService_GetShopForCustomer_WithLocation(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	customer := &entity.User{
		ID: uuid.New(),
		Location: &entity.UserLocation{
			Latitude:   25.0478,
			Longitude:  121.5170,
			RecordedAt: time.Now(),
		},
	}

	distance := 3.14159
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, customer.ID).Return(customer, nil)
	fx.eligibility.EXPECT().
		Evaluate(shop, geo.Coordinate{Latitude: 25.0478, Longitude: 121.5170}).
		Return(usecase.Eligibility{DeliveryAvailable: true, InRange: true, DistanceKm: &distance})

	view, err := fx.service.GetShopForCustomer(ctx, shop.ID, customer.ID)
	require.NoError(t, err)
	assert.True(t, view.InRange)
	require.NotNil(t, view.DistanceKm)
	assert.Equal(t, 3.14, *view.DistanceKm)
}

func TestShopService_UpdateShopProfile_PartialUpdate(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	shop.Category = "groceries"

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateShopProfile(ctx, mock.AnythingOfType("*entity.Shop")).
		Return(nil)

	updated, err := fx.service.UpdateShopProfile(ctx, shop.ID, shop.OwnerID, &usecase.CreateShopInput{
		Description: "Fresh produce daily",
		Phone:       "+886-2-8765-4321",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh produce daily", updated.Description)
	assert.Equal(t, "+886-2-8765-4321", updated.Phone)
	// Untouched fields survive the update.
	assert.Equal(t, "groceries", updated.Category)
	assert.NotNil(t, updated.Location)
}

func TestShopService_UpdateShopProfile_NotOwner(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.UpdateShopProfile(ctx, shop.ID, uuid.New(), &usecase.CreateShopInput{Name: "Hijack"})
	assert.ErrorIs(t, err, domainerrors.ErrShopOwnershipViolation)
}

func TestShopService_SetOpenStatus_WithEstimate(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateOpenStatus(ctx, shop.ID, false, mock.AnythingOfType("*entity.StatusEstimate")).
		Return(nil)

	updated, err := fx.service.SetOpenStatus(ctx, shop.ID, shop.OwnerID, &usecase.OpenStatusInput{
		IsOpen:          false,
		Direction:       entity.EstimateOpensIn,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsOpen)
	require.NotNil(t, updated.StatusEstimate)
	assert.Equal(t, entity.EstimateOpensIn, updated.StatusEstimate.Direction)
	assert.Equal(t, 30, updated.StatusEstimate.DurationMinutes)
}

func TestShopService_SetOpenStatus_ClearsEstimate(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	shop.StatusEstimate = &entity.StatusEstimate{Direction: entity.EstimateClosesIn, DurationMinutes: 15}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().
		UpdateOpenStatus(ctx, shop.ID, true, (*entity.StatusEstimate)(nil)).
		Return(nil)

	updated, err := fx.service.SetOpenStatus(ctx, shop.ID, shop.OwnerID, &usecase.OpenStatusInput{IsOpen: true})
	require.NoError(t, err)
	assert.True(t, updated.IsOpen)
	assert.Nil(t, updated.StatusEstimate)
}

func TestShopService_SetOpenStatus_BadDirection(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.SetOpenStatus(ctx, shop.ID, shop.OwnerID, &usecase.OpenStatusInput{
		IsOpen:    true,
		Direction: "reopens_eventually",
	})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestShopService_SetDeliveryConfig_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	cfg := entity.DeliveryConfig{Enabled: true, RadiusKm: 8}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.shopRepo.EXPECT().UpdateDeliveryConfig(ctx, shop.ID, cfg).Return(nil)

	updated, err := fx.service.SetDeliveryConfig(ctx, shop.ID, shop.OwnerID, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, updated.Delivery)
}

func TestShopService_SetDeliveryConfig_EnabledNeedsRadius(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.SetDeliveryConfig(ctx, shop.ID, shop.OwnerID, entity.DeliveryConfig{Enabled: true})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestShopService_GenerateShopQR_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.qrcode.EXPECT().GenerateShopQR(shop.ID).Return(png, nil)

	got, err := fx.service.GenerateShopQR(ctx, shop.ID, shop.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestShopService_GenerateShopQR_NotOwner(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(5)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.GenerateShopQR(ctx, shop.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrShopOwnershipViolation)
}

func TestShopService_GetOwnShops_RepoError(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.shopRepo.EXPECT().FindShopsByOwner(ctx, ownerID).Return(nil, errors.New("db error"))

	_, err := fx.service.GetOwnShops(ctx, ownerID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list own shops")
}
