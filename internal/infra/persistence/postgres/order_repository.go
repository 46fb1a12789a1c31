// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/repository"
	"hawker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order with its line items. GORM inserts the
// associated item rows alongside the order row.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := model.FromOrderEntity(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid shop or customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a data constraint")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.Items[i].OrderID
	}

	return nil
}

// FindOrderByID retrieves an order with its line items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return orderM.ToEntity(), nil
}

// FindOrdersByShop retrieves a shop's orders, newest first. The dashboard
// view keeps only orders still needing action, so every terminal status is
// filtered out.
func (repo *orderRepository) FindOrdersByShop(ctx context.Context, shopID uuid.UUID, openOnly bool) ([]*entity.Order, error) {
	query := repo.ordersQuery(ctx).Where("shop_id = ?", shopID)
	if openOnly {
		query = query.Where("status IN ?", dashboardStatuses())
	}

	return scanOrders(query)
}

// FindOrdersByCustomer retrieves a customer's orders, newest first. The
// customer's active view only hides orders they cancelled themselves; shop
// decisions (completed, rejected) stay visible.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID, openOnly bool) ([]*entity.Order, error) {
	query := repo.ordersQuery(ctx).Where("customer_id = ?", customerID)
	if openOnly {
		query = query.Where("status NOT IN ?", customerHiddenStatuses())
	}

	return scanOrders(query)
}

func (repo *orderRepository) ordersQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Items").
		Order("placed_at DESC")
}

func scanOrders(query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, orderM.ToEntity())
	}

	return orders, nil
}

// CountOrdersByShopAndStatus counts a shop's orders in the given status.
func (repo *orderRepository) CountOrdersByShopAndStatus(ctx context.Context, shopID uuid.UUID, status entity.OrderStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("shop_id = ? AND status = ?", shopID, status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by status")
	}

	return count, nil
}

// UpdateOrderStatus applies a guarded transition. The status predicate makes
// concurrent conflicting transitions lose instead of overwriting each other:
// the row only changes while its current status is still in AllowedFrom.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, update repository.StatusUpdate) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status": update.To.String(),
	}

	switch update.To {
	case entity.OrderStatusConfirmed:
		updates["estimate_minutes"] = update.EstimateMinutes
		updates["decided_at"] = now
	case entity.OrderStatusRejected:
		updates["reject_reason"] = update.RejectReason
		updates["decided_at"] = now
	}
	if update.To.IsTerminal() {
		updates["closed_at"] = now
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status IN ?", id, statusStrings(update.AllowedFrom)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing order from one whose status moved under us.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to recheck order after guarded update")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrStaleOrderStatus
	}

	return nil
}

func customerHiddenStatuses() []string {
	return []string{entity.OrderStatusCancelled.String()}
}

func dashboardStatuses() []string {
	var open []string
	for _, status := range []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusConfirmed,
	} {
		open = append(open, status.String())
	}

	return open
}

func statusStrings(statuses []entity.OrderStatus) []string {
	result := make([]string, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, status.String())
	}

	return result
}
