package usecase

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
)

// CreateShopInput carries a new storefront registration.
type CreateShopInput struct {
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Address     string    `json:"address"`
}

// OpenStatusInput carries an open/closed flip with an optional estimate.
type OpenStatusInput struct {
	IsOpen          bool                     `json:"is_open"`
	Direction       entity.EstimateDirection `json:"direction,omitempty"`
	DurationMinutes int                      `json:"duration_minutes,omitempty"`
}

// ShopEligibilityView is what a browsing customer sees for one shop:
// the shop itself plus whether it could deliver to them, with the
// distance rounded for display.
type ShopEligibilityView struct {
	Shop              *entity.Shop `json:"shop"`
	DeliveryAvailable bool         `json:"delivery_available"`
	InRange           bool         `json:"in_range"`
	DistanceKm        *float64     `json:"distance_km"`
}

// ShopUsecase defines the interface for shop management use cases
type ShopUsecase interface {
	// CreateShop registers a storefront for a shopkeeper account.
	CreateShop(ctx context.Context, input *CreateShopInput) (*entity.Shop, error)

	// GetShop retrieves a shop by ID.
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)

	// GetShopForCustomer retrieves a shop together with the delivery
	// eligibility verdict for the given customer location.
	GetShopForCustomer(ctx context.Context, shopID, customerID uuid.UUID) (*ShopEligibilityView, error)

	// GetOwnShops retrieves every shop the account manages.
	GetOwnShops(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)

	// UpdateShopProfile updates storefront details on behalf of the owner.
	UpdateShopProfile(ctx context.Context, shopID, ownerID uuid.UUID, input *CreateShopInput) (*entity.Shop, error)

	// SetOpenStatus flips the open flag. The estimate is optional and is
	// cleared when absent.
	SetOpenStatus(ctx context.Context, shopID, ownerID uuid.UUID, input *OpenStatusInput) (*entity.Shop, error)

	// SetDeliveryConfig replaces the delivery availability settings.
	SetDeliveryConfig(ctx context.Context, shopID, ownerID uuid.UUID, cfg entity.DeliveryConfig) (*entity.Shop, error)

	// GenerateShopQR renders a QR code deep-linking to the storefront.
	GenerateShopQR(ctx context.Context, shopID, ownerID uuid.UUID) ([]byte, error)
}
