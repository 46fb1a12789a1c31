package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hawker/config"
	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/service"
	mockRepo "hawker/internal/mocks/repository"
	mockService "hawker/internal/mocks/service"
	mockUsecase "hawker/internal/mocks/usecase"
	"hawker/internal/usecase"
)

type broadcastServiceFixtures struct {
	service       usecase.BroadcastUsecase
	broadcastRepo *mockRepo.MockBroadcastRepository
	shopRepo      *mockRepo.MockShopRepository
	targeting     *mockUsecase.MockTargetingUsecase
	dispatcher    *mockUsecase.MockDispatcherUsecase
	publisher     *mockService.MockEventPublisher
}

func createTestBroadcastService(t *testing.T, cfg *config.Config) broadcastServiceFixtures {
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	targeting := mockUsecase.NewMockTargetingUsecase(t)
	dispatcher := mockUsecase.NewMockDispatcherUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return broadcastServiceFixtures{
		service: NewBroadcastService(BroadcastServiceParams{
			BroadcastRepo: broadcastRepo,
			ShopRepo:      shopRepo,
			Targeting:     targeting,
			Dispatcher:    dispatcher,
			Publisher:     publisher,
			Config:        cfg,
			Logger:        logger,
		}),
		broadcastRepo: broadcastRepo,
		shopRepo:      shopRepo,
		targeting:     targeting,
		dispatcher:    dispatcher,
		publisher:     publisher,
	}
}

func testBroadcastInput(shop *entity.Shop) *usecase.BroadcastInput {
	return &usecase.BroadcastInput{
		ShopID:   shop.ID,
		OwnerID:  shop.OwnerID,
		RadiusKm: 3,
		Title:    "Fresh mangoes in",
		Body:     "First crates of the season just arrived",
		Data:     map[string]string{"screen": "shop"},
	}
}

func TestBroadcastService_BroadcastNearby_InlineSuccess(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)

	recipients := []*usecase.NearbyUser{
		{UserID: uuid.New(), SubscriberID: "sub-1", DistanceKm: 0.4},
		{UserID: uuid.New(), DistanceKm: 1.8},
	}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.broadcastRepo.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.ShopBroadcast")).
		Return(nil)
	fx.targeting.EXPECT().
		FindRecipientsWithin(ctx, shop.Location.Coordinate(), input.RadiusKm).
		Return(recipients, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("[]*usecase.DispatchRecipient"), mock.AnythingOfType("*usecase.NotificationPayload")).
		Run(func(_ context.Context, targets []*usecase.DispatchRecipient, payload *usecase.NotificationPayload) {
			require.Len(t, targets, 2)
			assert.Equal(t, "sub-1", targets[0].SubscriberID)
			assert.Equal(t, entity.NotificationKindBroadcast, payload.Kind)
			assert.Equal(t, shop.ID.String(), payload.Data["shop_id"])
			assert.Equal(t, "shop", payload.Data["screen"])
		}).
		Return(&usecase.DispatchResult{Dispatched: 1}, nil)
	fx.broadcastRepo.EXPECT().
		UpdateBroadcastCounters(ctx, mock.AnythingOfType("uuid.UUID"), 2, 1, 0).
		Return(nil)

	broadcast, result, err := fx.service.BroadcastNearby(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, broadcast.TotalTargeted)
	assert.Equal(t, 1, broadcast.TotalSent)
	assert.Zero(t, broadcast.TotalFailed)
	assert.Equal(t, 1, result.Dispatched)
}

func TestBroadcastService_BroadcastNearby_NoRecipients(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.broadcastRepo.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.ShopBroadcast")).
		Return(nil)
	fx.targeting.EXPECT().
		FindRecipientsWithin(ctx, shop.Location.Coordinate(), input.RadiusKm).
		Return(nil, nil)
	fx.broadcastRepo.EXPECT().
		UpdateBroadcastCounters(ctx, mock.AnythingOfType("uuid.UUID"), 0, 0, 0).
		Return(nil)

	broadcast, result, err := fx.service.BroadcastNearby(ctx, input)
	require.NoError(t, err)
	assert.Zero(t, broadcast.TotalTargeted)
	assert.Zero(t, result.Dispatched)
	assert.Empty(t, result.Failures)
}

func TestBroadcastService_BroadcastNearby_AsyncHandoff(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}}
	fx := createTestBroadcastService(t, cfg)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)

	recipients := []*usecase.NearbyUser{
		{UserID: uuid.New(), SubscriberID: "sub-1", DistanceKm: 0.4},
	}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.broadcastRepo.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.ShopBroadcast")).
		Return(nil)
	fx.targeting.EXPECT().
		FindRecipientsWithin(ctx, shop.Location.Coordinate(), input.RadiusKm).
		Return(recipients, nil)
	fx.publisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Run(func(_ context.Context, event *service.BroadcastEvent) {
			assert.Equal(t, shop.ID.String(), event.ShopID)
			require.Len(t, event.CandidateIDs, 1)
			assert.Equal(t, recipients[0].UserID.String(), event.CandidateIDs[0])
		}).
		Return(nil)
	fx.broadcastRepo.EXPECT().
		UpdateBroadcastCounters(ctx, mock.AnythingOfType("uuid.UUID"), 1, 0, 0).
		Return(nil)

	broadcast, result, err := fx.service.BroadcastNearby(ctx, input)
	require.NoError(t, err)
	// The worker owns the push stage; only targeting is reported here.
	assert.Equal(t, 1, broadcast.TotalTargeted)
	assert.Zero(t, result.Dispatched)
}

func TestBroadcastService_BroadcastNearby_PublishFailureFallsBackInline(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}
	fx := createTestBroadcastService(t, cfg)

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)

	recipients := []*usecase.NearbyUser{
		{UserID: uuid.New(), SubscriberID: "sub-1", DistanceKm: 0.4},
	}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.broadcastRepo.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.ShopBroadcast")).
		Return(nil)
	fx.targeting.EXPECT().
		FindRecipientsWithin(ctx, shop.Location.Coordinate(), input.RadiusKm).
		Return(recipients, nil)
	fx.publisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(errors.New("queue unavailable"))
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("[]*usecase.DispatchRecipient"), mock.AnythingOfType("*usecase.NotificationPayload")).
		Return(&usecase.DispatchResult{Dispatched: 1}, nil)
	fx.broadcastRepo.EXPECT().
		UpdateBroadcastCounters(ctx, mock.AnythingOfType("uuid.UUID"), 1, 1, 0).
		Return(nil)

	broadcast, result, err := fx.service.BroadcastNearby(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, broadcast.TotalSent)
	assert.Equal(t, 1, result.Dispatched)
}

func TestBroadcastService_BroadcastNearby_DispatchFailureKeepsRecord(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)

	recipients := []*usecase.NearbyUser{
		{UserID: uuid.New(), SubscriberID: "sub-1", DistanceKm: 0.4},
		{UserID: uuid.New(), SubscriberID: "sub-2", DistanceKm: 1.1},
	}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.broadcastRepo.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.ShopBroadcast")).
		Return(nil)
	fx.targeting.EXPECT().
		FindRecipientsWithin(ctx, shop.Location.Coordinate(), input.RadiusKm).
		Return(recipients, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("[]*usecase.DispatchRecipient"), mock.AnythingOfType("*usecase.NotificationPayload")).
		Return(nil, errors.New("provider down"))
	fx.broadcastRepo.EXPECT().
		UpdateBroadcastCounters(ctx, mock.AnythingOfType("uuid.UUID"), 2, 0, 2).
		Return(nil)

	broadcast, result, err := fx.service.BroadcastNearby(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, broadcast.TotalTargeted)
	assert.Equal(t, 2, broadcast.TotalFailed)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "dispatch failed", result.Failures[0].Reason)
}

func TestBroadcastService_BroadcastNearby_NotOwner(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)
	input.OwnerID = uuid.New()

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, _, err := fx.service.BroadcastNearby(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrShopOwnershipViolation)
}

func TestBroadcastService_BroadcastNearby_ShopWithoutLocation(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	shop.Location = nil
	input := testBroadcastInput(shop)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, _, err := fx.service.BroadcastNearby(ctx, input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestBroadcastService_BroadcastNearby_RadiusTooLarge(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)
	input.RadiusKm = 80

	_, _, err := fx.service.BroadcastNearby(context.Background(), input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestBroadcastService_BroadcastNearby_MissingTitle(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	shop := testShopWithDelivery(5)
	input := testBroadcastInput(shop)
	input.Title = ""

	_, _, err := fx.service.BroadcastNearby(context.Background(), input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestBroadcastService_GetShopBroadcasts_Success(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	ctx := context.Background()
	shop := testShopWithDelivery(5)
	history := []*entity.ShopBroadcast{{ID: uuid.New(), ShopID: shop.ID}}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.broadcastRepo.EXPECT().
		FindBroadcastsByShop(ctx, shop.ID, 20, 0).
		Return(history, nil)

	broadcasts, err := fx.service.GetShopBroadcasts(ctx, shop.ID, shop.OwnerID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, history, broadcasts)
}

func TestBroadcastService_GetShopBroadcasts_NotOwner(t *testing.T) {
	fx := createTestBroadcastService(t, &config.Config{})

	ctx := context.Background()
	shop := testShopWithDelivery(5)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.GetShopBroadcasts(ctx, shop.ID, uuid.New(), 20, 0)
	assert.ErrorIs(t, err, domainerrors.ErrShopOwnershipViolation)
}
