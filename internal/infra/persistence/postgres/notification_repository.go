// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"hawker/internal/domain/constants"
	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/repository"
	"hawker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a single recipient record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := model.FromNotificationEntity(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid recipient, shop, or order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// BatchCreateNotifications persists recipient records in a batch for better performance.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, model.FromNotificationEntity(notification))
	}

	// Use GORM's CreateInBatches for efficient batch insertion
	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid reference in notification batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	// Update the entities with generated values
	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// FindNotificationsByRecipient retrieves a user's records, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = constants.DefaultNotificationPageSize
	}
	if limit > constants.MaxNotificationPageSize {
		limit = constants.MaxNotificationPageSize
	}

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit)

	if offset > 0 {
		query = query.Offset(offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, notificationM.ToEntity())
	}

	return notifications, nil
}

// CountUnreadByRecipient counts a user's unread records.
func (repo *notificationRepository) CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkNotificationRead stamps the read time on a record owned by the recipient.
// Already-read records are left untouched so the first read time survives.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", id, recipientID).
		Update("read_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		// Either the record does not exist for this recipient or it was
		// already read. Re-check so already-read stays idempotent.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NotificationModel{}).
			Where("id = ? AND recipient_id = ?", id, recipientID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to recheck notification after read update")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}
	}

	return nil
}

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(db *gorm.DB) repository.BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// CreateBroadcast persists a new broadcast before the fan-out runs.
func (repo *broadcastRepository) CreateBroadcast(ctx context.Context, broadcast *entity.ShopBroadcast) error {
	broadcastM := model.FromBroadcastEntity(broadcast)

	if err := repo.db.WithContext(ctx).Create(broadcastM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid shop reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required broadcast information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create broadcast")
	}

	// Update the entity with generated values
	broadcast.ID = broadcastM.ID
	broadcast.PublishedAt = broadcastM.PublishedAt
	broadcast.CreatedAt = broadcastM.CreatedAt
	broadcast.UpdatedAt = broadcastM.UpdatedAt

	return nil
}

// FindBroadcastByID retrieves a broadcast by its unique ID.
func (repo *broadcastRepository) FindBroadcastByID(ctx context.Context, id uuid.UUID) (*entity.ShopBroadcast, error) {
	var broadcastM model.ShopBroadcastModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&broadcastM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBroadcastNotFound
		}

		return nil, errors.Wrap(err, "failed to find broadcast by id")
	}

	return broadcastM.ToEntity(), nil
}

// FindBroadcastsByShop retrieves a shop's broadcasts, newest first.
func (repo *broadcastRepository) FindBroadcastsByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.ShopBroadcast, error) {
	query := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("published_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var broadcastModels []*model.ShopBroadcastModel
	if err := query.Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find broadcasts by shop")
	}

	broadcasts := make([]*entity.ShopBroadcast, 0, len(broadcastModels))
	for _, broadcastM := range broadcastModels {
		broadcasts = append(broadcasts, broadcastM.ToEntity())
	}

	return broadcasts, nil
}

// UpdateBroadcastCounters overwrites the fan-out counters after dispatch.
func (repo *broadcastRepository) UpdateBroadcastCounters(ctx context.Context, id uuid.UUID, targeted, sent, failed int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopBroadcastModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_targeted": targeted,
			"total_sent":     sent,
			"total_failed":   failed,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update broadcast counters")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBroadcastNotFound
	}

	return nil
}
