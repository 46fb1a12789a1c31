// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"hawker/internal/domain/entity"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/repository"
	"hawker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// CreateShop persists a new storefront.
func (repo *shopRepository) CreateShop(ctx context.Context, shop *entity.Shop) error {
	shopM := model.FromShopEntity(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopAlreadyExists.WrapMessage("shop already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	// Update the entity with generated values
	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindShopByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return shopM.ToEntity(), nil
}

// FindShopsByOwner retrieves every shop managed by the given account.
func (repo *shopRepository) FindShopsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shops by owner")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, shopM.ToEntity())
	}

	return shops, nil
}

// UpdateShopProfile updates name, category, description and location.
func (repo *shopRepository) UpdateShopProfile(ctx context.Context, shop *entity.Shop) error {
	updates := map[string]interface{}{
		"name":        shop.Name,
		"category":    shop.Category,
		"description": shop.Description,
		"phone":       shop.Phone,
	}
	if shop.Location != nil {
		updates["latitude"] = shop.Location.Latitude
		updates["longitude"] = shop.Location.Longitude
		updates["location_address"] = shop.Location.Address
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Updates(updates)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return errors.Wrap(result.Error, "failed to update shop profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// UpdateOpenStatus flips the open flag and replaces the status estimate.
// A nil estimate clears any previous one.
func (repo *shopRepository) UpdateOpenStatus(ctx context.Context, id uuid.UUID, isOpen bool, estimate *entity.StatusEstimate) error {
	updates := map[string]interface{}{
		"is_open":            isOpen,
		"estimate_direction": "",
		"estimate_minutes":   nil,
		"estimate_updated":   nil,
	}
	if estimate != nil {
		updates["estimate_direction"] = estimate.Direction.String()
		updates["estimate_minutes"] = estimate.DurationMinutes
		updates["estimate_updated"] = estimate.UpdatedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update open status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// UpdateDeliveryConfig replaces the delivery availability settings.
func (repo *shopRepository) UpdateDeliveryConfig(ctx context.Context, id uuid.UUID, cfg entity.DeliveryConfig) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"delivery_enabled":   cfg.Enabled,
			"delivery_radius_km": cfg.RadiusKm,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery config")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// DeleteShop removes a storefront (soft delete via DeletedAt).
func (repo *shopRepository) DeleteShop(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShopModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}
