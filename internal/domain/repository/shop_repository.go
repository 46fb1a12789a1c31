package repository

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
	"hawker/internal/errors"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrDuplicateShop is returned when the owner already has a shop.
	ErrDuplicateShop = errors.New("shop already exists")
)

// ShopRepository defines the standard operations for shop persistence.
type ShopRepository interface {
	// CreateShop persists a new storefront.
	CreateShop(ctx context.Context, shop *entity.Shop) error

	// FindShopByID retrieves a shop by its unique ID.
	FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindShopsByOwner retrieves every shop managed by the given account.
	FindShopsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)

	// UpdateShopProfile updates name, category, description and location.
	UpdateShopProfile(ctx context.Context, shop *entity.Shop) error

	// UpdateOpenStatus flips the open flag and replaces the status estimate.
	// A nil estimate clears any previous one.
	UpdateOpenStatus(ctx context.Context, id uuid.UUID, isOpen bool, estimate *entity.StatusEstimate) error

	// UpdateDeliveryConfig replaces the delivery availability settings.
	UpdateDeliveryConfig(ctx context.Context, id uuid.UUID, cfg entity.DeliveryConfig) error

	// DeleteShop removes a storefront (soft delete).
	DeleteShop(ctx context.Context, id uuid.UUID) error
}
