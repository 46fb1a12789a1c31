package usecase

import (
	"context"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
)

// BroadcastInput carries one radius-scoped announcement from a shop.
type BroadcastInput struct {
	ShopID   uuid.UUID         `json:"shop_id"`
	OwnerID  uuid.UUID         `json:"-"`
	RadiusKm float64           `json:"radius_km"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
}

// BroadcastUsecase defines the interface for shop announcement use cases
type BroadcastUsecase interface {
	// BroadcastNearby targets every user within the radius of the shop,
	// persists the broadcast with its per-recipient records, and pushes to
	// the recipients that have a push channel. When an event publisher is
	// configured the fan-out runs asynchronously and the returned result
	// only reflects the targeting stage.
	BroadcastNearby(ctx context.Context, input *BroadcastInput) (*entity.ShopBroadcast, *DispatchResult, error)

	// GetShopBroadcasts retrieves broadcast history for a shop with pagination
	GetShopBroadcasts(ctx context.Context, shopID, ownerID uuid.UUID, limit, offset int) ([]*entity.ShopBroadcast, error)
}
