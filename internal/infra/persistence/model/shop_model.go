package model

import (
	"time"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
)

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);index"`
	Phone       string    `gorm:"type:varchar(32)"`

	Latitude        *float64 `gorm:"type:decimal(10,8)"`
	Longitude       *float64 `gorm:"type:decimal(11,8)"`
	LocationAddress string   `gorm:"type:text"`

	IsOpen bool `gorm:"not null;default:false"`

	// Optional schedule hint alongside the open flag.
	EstimateDirection string     `gorm:"type:varchar(16)"`
	EstimateMinutes   *int
	EstimateUpdated   *time.Time

	DeliveryEnabled  bool    `gorm:"not null;default:false"`
	DeliveryRadiusKm float64 `gorm:"type:decimal(5,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ToEntity converts the database row to a domain entity.
func (m *ShopModel) ToEntity() *entity.Shop {
	shop := &entity.Shop{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Phone:       m.Phone,
		IsOpen:      m.IsOpen,
		Delivery: entity.DeliveryConfig{
			Enabled:  m.DeliveryEnabled,
			RadiusKm: m.DeliveryRadiusKm,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Latitude != nil && m.Longitude != nil {
		shop.Location = &entity.ShopLocation{
			Latitude:  *m.Latitude,
			Longitude: *m.Longitude,
			Address:   m.LocationAddress,
		}
	}

	if m.EstimateDirection != "" && m.EstimateMinutes != nil {
		estimate := &entity.StatusEstimate{
			Direction:       entity.EstimateDirection(m.EstimateDirection),
			DurationMinutes: *m.EstimateMinutes,
		}
		if m.EstimateUpdated != nil {
			estimate.UpdatedAt = *m.EstimateUpdated
		}
		shop.StatusEstimate = estimate
	}

	return shop
}

// FromShopEntity converts a domain entity to a database row.
func FromShopEntity(shop *entity.Shop) *ShopModel {
	m := &ShopModel{
		ID:               shop.ID,
		OwnerID:          shop.OwnerID,
		Name:             shop.Name,
		Description:      shop.Description,
		Category:         shop.Category,
		Phone:            shop.Phone,
		IsOpen:           shop.IsOpen,
		DeliveryEnabled:  shop.Delivery.Enabled,
		DeliveryRadiusKm: shop.Delivery.RadiusKm,
		CreatedAt:        shop.CreatedAt,
		UpdatedAt:        shop.UpdatedAt,
	}

	if shop.Location != nil {
		lat, lng := shop.Location.Latitude, shop.Location.Longitude
		m.Latitude = &lat
		m.Longitude = &lng
		m.LocationAddress = shop.Location.Address
	}

	if shop.StatusEstimate != nil {
		minutes, updated := shop.StatusEstimate.DurationMinutes, shop.StatusEstimate.UpdatedAt
		m.EstimateDirection = shop.StatusEstimate.Direction.String()
		m.EstimateMinutes = &minutes
		m.EstimateUpdated = &updated
	}

	return m
}
