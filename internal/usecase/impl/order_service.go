package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/geo"
	"hawker/internal/domain/repository"
	"hawker/internal/usecase"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
	txManager   repository.TransactionManager
	eligibility usecase.EligibilityUsecase
	dispatcher  usecase.DispatcherUsecase
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ShopRepo    repository.ShopRepository
	UserRepo    repository.UserRepository
	TxManager   repository.TransactionManager
	Eligibility usecase.EligibilityUsecase
	Dispatcher  usecase.DispatcherUsecase
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		shopRepo:    params.ShopRepo,
		userRepo:    params.UserRepo,
		txManager:   params.TxManager,
		eligibility: params.Eligibility,
		dispatcher:  params.Dispatcher,
		logger:      params.Logger,
	}
}

// CreateOrder places a pending order. Eligibility is re-evaluated here against
// the shop's current configuration; a verdict cached by the client during
// browsing is never trusted.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	deliveryPoint := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}

	var order *entity.Order
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		shopRepo := txRepoFactory.NewShopRepository()
		orderRepo := txRepoFactory.NewOrderRepository()
		userRepo := txRepoFactory.NewUserRepository()

		shop, err := shopRepo.FindShopByID(ctx, input.ShopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound
			}
			return errors.Wrap(err, "failed to find shop")
		}

		customer, err := userRepo.FindUserByID(ctx, input.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}
			return errors.Wrap(err, "failed to find customer")
		}

		verdict := s.eligibility.Evaluate(shop, deliveryPoint)
		if !verdict.Eligible() {
			return domainerrors.ErrDeliveryIneligible.WithDetails(eligibilityDetails(verdict))
		}

		now := time.Now()
		order = &entity.Order{
			ID:            uuid.New(),
			ShopID:        shop.ID,
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			CustomerPhone: customer.Phone,
			Status:        entity.OrderStatusPending,
			DeliveryLocation: &entity.OrderLocation{
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
				Address:   input.Address,
			},
			DistanceKm: *verdict.DistanceKm,
			PlacedAt:   now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		total := decimal.Zero
		for _, item := range input.Items {
			line := entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
			order.Items = append(order.Items, line)
			total = total.Add(line.LineTotal())
		}
		order.TotalAmount = total

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus moves an order along the lifecycle on behalf of the shop
// side, or of either party for completion. The repository re-checks the
// current status inside the update, so a concurrent conflicting transition
// loses cleanly instead of overwriting.
func (s *orderService) UpdateOrderStatus(
	ctx context.Context,
	orderID, actorID uuid.UUID,
	newStatus entity.OrderStatus,
	estimateMinutes *int,
	reason string,
) (*entity.Order, error) {
	switch newStatus {
	case entity.OrderStatusConfirmed:
		if estimateMinutes == nil || *estimateMinutes <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("confirming requires a positive estimate in minutes")
		}
	case entity.OrderStatusRejected, entity.OrderStatusCompleted:
	case entity.OrderStatusCancelled:
		return nil, domainerrors.ErrValidationFailed.WithDetails("cancellation goes through the cancel operation")
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", newStatus))
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	shop, err := s.shopRepo.FindShopByID(ctx, order.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}
		return nil, errors.Wrap(err, "failed to find shop")
	}

	// Confirm and reject are shop actions; either party may mark completion.
	isOwner := shop.OwnerID == actorID
	isCustomer := order.CustomerID == actorID
	if newStatus == entity.OrderStatusCompleted {
		if !isOwner && !isCustomer {
			return nil, domainerrors.ErrOrderAccessViolation
		}
	} else if !isOwner {
		return nil, domainerrors.ErrOrderAccessViolation
	}

	if !entity.CanTransition(order.Status, newStatus) {
		return nil, domainerrors.NewInvalidTransitionError(order.Status.String(), newStatus.String())
	}

	update := repository.StatusUpdate{
		To:              newStatus,
		AllowedFrom:     entity.TransitionSources(newStatus),
		EstimateMinutes: estimateMinutes,
		RejectReason:    reason,
	}
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, update); err != nil {
		return nil, s.transitionError(ctx, orderID, newStatus, err)
	}

	updated, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	// The counter-party gets the alert: the customer for shop actions, the
	// owner when the customer marks completion.
	recipientID := updated.CustomerID
	if !isOwner {
		recipientID = shop.OwnerID
	}
	s.notifyStatusChange(ctx, updated, shop, recipientID)

	return updated, nil
}

// CancelOrder withdraws an open order. Customer-initiated only.
func (s *orderService) CancelOrder(ctx context.Context, orderID, customerID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.CustomerID != customerID {
		return nil, domainerrors.ErrOrderAccessViolation
	}

	if !entity.CanTransition(order.Status, entity.OrderStatusCancelled) {
		return nil, domainerrors.NewInvalidTransitionError(order.Status.String(), entity.OrderStatusCancelled.String())
	}

	update := repository.StatusUpdate{
		To:          entity.OrderStatusCancelled,
		AllowedFrom: entity.TransitionSources(entity.OrderStatusCancelled),
	}
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, update); err != nil {
		return nil, s.transitionError(ctx, orderID, entity.OrderStatusCancelled, err)
	}

	updated, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	// The source never told the shop about cancellations; notifying the
	// owner keeps the two sides symmetric.
	shop, err := s.shopRepo.FindShopByID(ctx, order.ShopID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip cancel notification, shop lookup failed",
			slog.String("order_id", orderID.String()), slog.Any("error", err))
		return updated, nil
	}
	s.notifyStatusChange(ctx, updated, shop, shop.OwnerID)

	return updated, nil
}

// GetOrder retrieves one order for a participant of it.
func (s *orderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.CustomerID != requesterID {
		shop, err := s.shopRepo.FindShopByID(ctx, order.ShopID)
		if err != nil || shop.OwnerID != requesterID {
			return nil, domainerrors.ErrOrderAccessViolation
		}
	}

	return order, nil
}

// GetShopOrders retrieves a shop's orders for its owner.
func (s *orderService) GetShopOrders(ctx context.Context, shopID, ownerID uuid.UUID, openOnly bool) ([]*entity.Order, error) {
	if err := s.requireShopOwner(ctx, shopID, ownerID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindOrdersByShop(ctx, shopID, openOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	return orders, nil
}

// GetCustomerOrders retrieves the requesting customer's own orders.
func (s *orderService) GetCustomerOrders(ctx context.Context, customerID uuid.UUID, openOnly bool) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByCustomer(ctx, customerID, openOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// CountPendingOrders recomputes the shop's pending counter from the order
// rows. Nothing caches this value.
func (s *orderService) CountPendingOrders(ctx context.Context, shopID, ownerID uuid.UUID) (int64, error) {
	if err := s.requireShopOwner(ctx, shopID, ownerID); err != nil {
		return 0, err
	}

	count, err := s.orderRepo.CountOrdersByShopAndStatus(ctx, shopID, entity.OrderStatusPending)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pending orders")
	}

	return count, nil
}

func (s *orderService) requireShopOwner(ctx context.Context, shopID, ownerID uuid.UUID) error {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}
		return errors.Wrap(err, "failed to find shop")
	}
	if shop.OwnerID != ownerID {
		return domainerrors.ErrShopOwnershipViolation
	}

	return nil
}

// transitionError maps a guarded-update failure back to a typed error. On a
// stale status the order is re-read so the error names the actual current state.
func (s *orderService) transitionError(ctx context.Context, orderID uuid.UUID, requested entity.OrderStatus, err error) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrStaleOrderStatus):
		current, readErr := s.orderRepo.FindOrderByID(ctx, orderID)
		if readErr != nil {
			return domainerrors.NewInvalidTransitionError("unknown", requested.String())
		}
		return domainerrors.NewInvalidTransitionError(current.Status.String(), requested.String())
	default:
		return errors.Wrap(err, "failed to update order status")
	}
}

// notifyStatusChange tells the counter-party about a durable transition.
// Best-effort: the transition is already committed, a dispatch failure is
// logged and never propagated.
func (s *orderService) notifyStatusChange(ctx context.Context, order *entity.Order, shop *entity.Shop, recipientID uuid.UUID) {
	user, err := s.userRepo.FindUserByID(ctx, recipientID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip status notification, recipient lookup failed",
			slog.String("order_id", order.ID.String()), slog.Any("error", err))
		return
	}

	recipient := &usecase.DispatchRecipient{UserID: user.ID}
	if user.CanReceivePush() {
		recipient.SubscriberID = user.Subscription.SubscriberID
	}

	orderID := order.ID
	payload := &usecase.NotificationPayload{
		ShopID:  shop.ID,
		OrderID: &orderID,
		Kind:    entity.NotificationKindOrderStatus,
		Title:   statusChangeTitle(order.Status),
		Body:    statusChangeBody(order, shop),
		Data: map[string]string{
			"order_id": order.ID.String(),
			"shop_id":  shop.ID.String(),
			"status":   order.Status.String(),
		},
	}

	if _, err := s.dispatcher.Dispatch(ctx, []*usecase.DispatchRecipient{recipient}, payload); err != nil {
		s.logger.WarnContext(ctx, "order status notification failed",
			slog.String("order_id", order.ID.String()),
			slog.String("status", order.Status.String()),
			slog.Any("error", err))
	}
}

func statusChangeTitle(status entity.OrderStatus) string {
	switch status {
	case entity.OrderStatusConfirmed:
		return "Order confirmed"
	case entity.OrderStatusCompleted:
		return "Order completed"
	case entity.OrderStatusRejected:
		return "Order rejected"
	case entity.OrderStatusCancelled:
		return "Order cancelled"
	default:
		return "Order updated"
	}
}

func statusChangeBody(order *entity.Order, shop *entity.Shop) string {
	switch order.Status {
	case entity.OrderStatusConfirmed:
		if order.EstimateMinutes != nil {
			return fmt.Sprintf("%s confirmed your order, ready in about %d minutes", shop.Name, *order.EstimateMinutes)
		}
		return fmt.Sprintf("%s confirmed your order", shop.Name)
	case entity.OrderStatusCompleted:
		return fmt.Sprintf("Your order from %s is completed", shop.Name)
	case entity.OrderStatusRejected:
		if order.RejectReason != "" {
			return fmt.Sprintf("%s rejected your order: %s", shop.Name, order.RejectReason)
		}
		return fmt.Sprintf("%s rejected your order", shop.Name)
	case entity.OrderStatusCancelled:
		return "The customer cancelled an order"
	default:
		return fmt.Sprintf("Your order from %s was updated", shop.Name)
	}
}

func validateOrderInput(input *usecase.CreateOrderInput) error {
	if len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("an order needs at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return domainerrors.ErrValidationFailed.WithDetails("item quantity must be at least one")
		}
		if item.UnitPrice.IsNegative() {
			return domainerrors.ErrValidationFailed.WithDetails("item price cannot be negative")
		}
		if item.Name == "" {
			return domainerrors.ErrValidationFailed.WithDetails("item name is required")
		}
	}

	point := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !point.Valid() {
		return domainerrors.ErrInvalidCoordinates
	}

	return nil
}

func eligibilityDetails(verdict usecase.Eligibility) string {
	if !verdict.DeliveryAvailable {
		return "the shop does not deliver"
	}
	if verdict.DistanceKm == nil {
		return "the delivery location could not be verified against the shop"
	}
	return fmt.Sprintf("the delivery location is %.2f km away, outside the delivery radius", geo.RoundKm(*verdict.DistanceKm))
}
