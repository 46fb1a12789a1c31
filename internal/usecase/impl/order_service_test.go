package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/repository"
	mockRepo "hawker/internal/mocks/repository"
	mockUsecase "hawker/internal/mocks/usecase"
	"hawker/internal/usecase"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	shopRepo    *mockRepo.MockShopRepository
	userRepo    *mockRepo.MockUserRepository
	txManager   *mockRepo.MockTransactionManager
	eligibility *mockUsecase.MockEligibilityUsecase
	dispatcher  *mockUsecase.MockDispatcherUsecase
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	eligibility := mockUsecase.NewMockEligibilityUsecase(t)
	dispatcher := mockUsecase.NewMockDispatcherUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return orderServiceFixtures{
		service: NewOrderService(OrderServiceParams{
			OrderRepo:   orderRepo,
			ShopRepo:    shopRepo,
			UserRepo:    userRepo,
			TxManager:   txManager,
			Eligibility: eligibility,
			Dispatcher:  dispatcher,
			Logger:      logger,
		}),
		orderRepo:   orderRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		eligibility: eligibility,
		dispatcher:  dispatcher,
	}
}

func testOrderInput(shopID, customerID uuid.UUID) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		ShopID:     shopID,
		CustomerID: customerID,
		Items: []usecase.OrderItemInput{
			{Name: "Dumplings", Quantity: 2, UnitPrice: decimal.NewFromInt(60)},
			{Name: "Hot and sour soup", Quantity: 1, UnitPrice: decimal.NewFromInt(80)},
		},
		Latitude:  25.0478,
		Longitude: 121.5170,
		Address:   "Taipei Main Station",
	}
}

func testOrderWithStatus(shop *entity.Shop, customerID uuid.UUID, status entity.OrderStatus) *entity.Order {
	now := time.Now()
	return &entity.Order{
		ID:         uuid.New(),
		ShopID:     shop.ID,
		CustomerID: customerID,
		Status:     status,
		Items: []entity.OrderItem{
			{ID: uuid.New(), Name: "Dumplings", Quantity: 2, UnitPrice: decimal.NewFromInt(60)},
		},
		TotalAmount: decimal.NewFromInt(120),
		PlacedAt:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customer := &entity.User{
		ID:    uuid.New(),
		Name:  "Mei Lin",
		Phone: "+886-912-345-678",
		Roles: entity.Roles{entity.RoleCustomer},
	}
	input := testOrderInput(shop.ID, customer.ID)
	distance := 5.2

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txShopRepo := mockRepo.NewMockShopRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewShopRepository().Return(txShopRepo)
			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewUserRepository().Return(txUserRepo)

			txShopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
			txUserRepo.EXPECT().FindUserByID(ctx, customer.ID).Return(customer, nil)
			txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			_ = fn(factory)
		}).
		Return(nil)

	fx.eligibility.EXPECT().
		Evaluate(shop, mock.AnythingOfType("geo.Coordinate")).
		Return(usecase.Eligibility{DeliveryAvailable: true, InRange: true, DistanceKm: &distance})

	order, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, customer.ID, order.CustomerID)
	// Contact details are snapshotted onto the order at creation.
	assert.Equal(t, "Mei Lin", order.CustomerName)
	assert.Equal(t, "+886-912-345-678", order.CustomerPhone)
	assert.Equal(t, distance, order.DistanceKm)
	require.Len(t, order.Items, 2)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, order.DeliveryLocation)
	assert.Equal(t, input.Address, order.DeliveryLocation.Address)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	input := testOrderInput(uuid.New(), uuid.New())
	input.Items = nil

	_, err := fx.service.CreateOrder(context.Background(), input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_CreateOrder_ZeroQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	input := testOrderInput(uuid.New(), uuid.New())
	input.Items[0].Quantity = 0

	_, err := fx.service.CreateOrder(context.Background(), input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_CreateOrder_NegativePrice(t *testing.T) {
	fx := createTestOrderService(t)

	input := testOrderInput(uuid.New(), uuid.New())
	input.Items[0].UnitPrice = decimal.NewFromInt(-5)

	_, err := fx.service.CreateOrder(context.Background(), input)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_CreateOrder_InvalidCoordinates(t *testing.T) {
	fx := createTestOrderService(t)

	input := testOrderInput(uuid.New(), uuid.New())
	input.Latitude = 95.0

	_, err := fx.service.CreateOrder(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestOrderService_CreateOrder_ShopNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := testOrderInput(uuid.New(), uuid.New())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txShopRepo := mockRepo.NewMockShopRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewShopRepository().Return(txShopRepo)
			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewUserRepository().Return(txUserRepo)

			txShopRepo.EXPECT().FindShopByID(ctx, input.ShopID).Return(nil, repository.ErrShopNotFound)

			_ = fn(factory)
		}).
		Return(domainerrors.ErrShopNotFound)

	_, err := fx.service.CreateOrder(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestOrderService_CreateOrder_Ineligible(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(2)
	customerID := uuid.New()
	input := testOrderInput(shop.ID, customerID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txShopRepo := mockRepo.NewMockShopRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewShopRepository().Return(txShopRepo)
			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewUserRepository().Return(txUserRepo)

			txShopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
			txUserRepo.EXPECT().
				FindUserByID(ctx, customerID).
				Return(&entity.User{ID: customerID, Name: "Mei Lin", Roles: entity.Roles{entity.RoleCustomer}}, nil)

			_ = fn(factory)
		}).
		Return(domainerrors.ErrDeliveryIneligible)

	distance := 5.2
	fx.eligibility.EXPECT().
		Evaluate(shop, mock.AnythingOfType("geo.Coordinate")).
		Return(usecase.Eligibility{DeliveryAvailable: true, InRange: false, DistanceKm: &distance})

	_, err := fx.service.CreateOrder(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryIneligible)
}

func TestOrderService_UpdateOrderStatus_ConfirmWithoutEstimate(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), entity.OrderStatusConfirmed, nil, "")
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_UpdateOrderStatus_CancelGoesThroughCancel(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), entity.OrderStatusCancelled, nil, "")
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), "shipped", nil, "")
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_UpdateOrderStatus_Confirm_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusPending)
	estimate := 20

	confirmed := *order
	confirmed.Status = entity.OrderStatusConfirmed
	confirmed.EstimateMinutes = &estimate

	customer := &entity.User{
		ID:           customerID,
		Subscription: &entity.PushSubscription{SubscriberID: "player-7", Enabled: true},
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, mock.AnythingOfType("repository.StatusUpdate")).
		Return(nil)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&confirmed, nil).Once()

	fx.userRepo.EXPECT().FindUserByID(ctx, customerID).Return(customer, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("[]*usecase.DispatchRecipient"), mock.AnythingOfType("*usecase.NotificationPayload")).
		Run(func(_ context.Context, recipients []*usecase.DispatchRecipient, payload *usecase.NotificationPayload) {
			require.Len(t, recipients, 1)
			assert.Equal(t, customerID, recipients[0].UserID)
			assert.Equal(t, "player-7", recipients[0].SubscriberID)
			assert.Equal(t, entity.NotificationKindOrderStatus, payload.Kind)
		}).
		Return(&usecase.DispatchResult{Dispatched: 1}, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, shop.OwnerID, entity.OrderStatusConfirmed, &estimate, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	require.NotNil(t, updated.EstimateMinutes)
	assert.Equal(t, estimate, *updated.EstimateMinutes)
}

func TestOrderService_UpdateOrderStatus_ReConfirmRevisesEstimate(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	firstEstimate := 20
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusConfirmed)
	order.EstimateMinutes = &firstEstimate

	// Confirming again is a legal edge; only the estimate changes.
	revisedEstimate := 35
	revised := *order
	revised.EstimateMinutes = &revisedEstimate

	customer := &entity.User{ID: customerID}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, mock.AnythingOfType("repository.StatusUpdate")).
		Run(func(_ context.Context, _ uuid.UUID, update repository.StatusUpdate) {
			assert.Equal(t, entity.OrderStatusConfirmed, update.To)
			require.NotNil(t, update.EstimateMinutes)
			assert.Equal(t, revisedEstimate, *update.EstimateMinutes)
		}).
		Return(nil)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&revised, nil).Once()

	fx.userRepo.EXPECT().FindUserByID(ctx, customerID).Return(customer, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("[]*usecase.DispatchRecipient"), mock.AnythingOfType("*usecase.NotificationPayload")).
		Return(&usecase.DispatchResult{}, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, shop.OwnerID, entity.OrderStatusConfirmed, &revisedEstimate, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	require.NotNil(t, updated.EstimateMinutes)
	assert.Equal(t, revisedEstimate, *updated.EstimateMinutes)
}

func TestOrderService_UpdateOrderStatus_CompletedByCustomerNotifiesOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusConfirmed)

	completed := *order
	completed.Status = entity.OrderStatusCompleted

	owner := &entity.User{ID: shop.OwnerID}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, mock.AnythingOfType("repository.StatusUpdate")).
		Return(nil)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&completed, nil).Once()

	fx.userRepo.EXPECT().FindUserByID(ctx, shop.OwnerID).Return(owner, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("[]*usecase.DispatchRecipient"), mock.AnythingOfType("*usecase.NotificationPayload")).
		Run(func(_ context.Context, recipients []*usecase.DispatchRecipient, _ *usecase.NotificationPayload) {
			require.Len(t, recipients, 1)
			assert.Equal(t, shop.OwnerID, recipients[0].UserID)
		}).
		Return(&usecase.DispatchResult{}, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, customerID, entity.OrderStatusCompleted, nil, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
}

func TestOrderService_UpdateOrderStatus_StrangerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	order := testOrderWithStatus(shop, uuid.New(), entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, uuid.New(), entity.OrderStatusRejected, nil, "out of stock")
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessViolation)
}

func TestOrderService_UpdateOrderStatus_CustomerCannotConfirm(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusPending)
	estimate := 15

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, customerID, entity.OrderStatusConfirmed, &estimate, "")
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessViolation)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	order := testOrderWithStatus(shop, uuid.New(), entity.OrderStatusCompleted)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, shop.OwnerID, entity.OrderStatusRejected, nil, "")

	var transitionErr *domainerrors.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entity.OrderStatusCompleted.String(), transitionErr.From)
	assert.Equal(t, entity.OrderStatusRejected.String(), transitionErr.To)
}

func TestOrderService_UpdateOrderStatus_StaleStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	order := testOrderWithStatus(shop, uuid.New(), entity.OrderStatusPending)

	// A concurrent writer rejected the order between the read and the update.
	rejected := *order
	rejected.Status = entity.OrderStatusRejected

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	estimate := 10
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, mock.AnythingOfType("repository.StatusUpdate")).
		Return(repository.ErrStaleOrderStatus)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&rejected, nil).Once()

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, shop.OwnerID, entity.OrderStatusConfirmed, &estimate, "")

	var transitionErr *domainerrors.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entity.OrderStatusRejected.String(), transitionErr.From)
	assert.Equal(t, entity.OrderStatusConfirmed.String(), transitionErr.To)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusPending)

	cancelled := *order
	cancelled.Status = entity.OrderStatusCancelled

	owner := &entity.User{ID: shop.OwnerID}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, mock.AnythingOfType("repository.StatusUpdate")).
		Return(nil)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&cancelled, nil).Once()
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	fx.userRepo.EXPECT().FindUserByID(ctx, shop.OwnerID).Return(owner, nil)
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("[]*usecase.DispatchRecipient"), mock.AnythingOfType("*usecase.NotificationPayload")).
		Return(&usecase.DispatchResult{}, nil)

	updated, err := fx.service.CancelOrder(ctx, order.ID, customerID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_CancelOrder_NotCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	order := testOrderWithStatus(shop, uuid.New(), entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, order.ID, shop.OwnerID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessViolation)
}

func TestOrderService_CancelOrder_AlreadyCompleted(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusCompleted)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, order.ID, customerID)

	var transitionErr *domainerrors.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entity.OrderStatusCompleted.String(), transitionErr.From)
}

func TestOrderService_CancelOrder_ShopLookupFailureSkipsNotification(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusPending)

	cancelled := *order
	cancelled.Status = entity.OrderStatusCancelled

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, mock.AnythingOfType("repository.StatusUpdate")).
		Return(nil)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&cancelled, nil).Once()
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(nil, errors.New("db error"))

	// The cancellation is already durable; a failed notification must not
	// surface to the customer.
	updated, err := fx.service.CancelOrder(ctx, order.ID, customerID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_GetOrder_Customer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	customerID := uuid.New()
	order := testOrderWithStatus(shop, customerID, entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, order.ID, customerID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_ShopOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	order := testOrderWithStatus(shop, uuid.New(), entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	got, err := fx.service.GetOrder(ctx, order.ID, shop.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_StrangerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	order := testOrderWithStatus(shop, uuid.New(), entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.GetOrder(ctx, order.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessViolation)
}

func TestOrderService_GetShopOrders_NotOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.GetShopOrders(ctx, shop.ID, uuid.New(), false)
	assert.ErrorIs(t, err, domainerrors.ErrShopOwnershipViolation)
}

func TestOrderService_GetShopOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)
	orders := []*entity.Order{testOrderWithStatus(shop, uuid.New(), entity.OrderStatusPending)}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().FindOrdersByShop(ctx, shop.ID, true).Return(orders, nil)

	got, err := fx.service.GetShopOrders(ctx, shop.ID, shop.OwnerID, true)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_GetCustomerOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.orderRepo.EXPECT().FindOrdersByCustomer(ctx, customerID, false).Return(nil, nil)

	orders, err := fx.service.GetCustomerOrders(ctx, customerID, false)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CountPendingOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	shop := testShopWithDelivery(10)

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		CountOrdersByShopAndStatus(ctx, shop.ID, entity.OrderStatusPending).
		Return(int64(3), nil)

	count, err := fx.service.CountPendingOrders(ctx, shop.ID, shop.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
