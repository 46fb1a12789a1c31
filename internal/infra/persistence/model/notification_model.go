package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
)

// NotificationModel mirrors the 'notifications' table. One row is the
// in-app record of a message delivered (or attempted) to one recipient.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	BroadcastID *uuid.UUID `gorm:"type:uuid;index"`
	Kind        string     `gorm:"type:varchar(32);not null"`
	Title       string     `gorm:"type:text;not null"`
	Body        string     `gorm:"type:text;not null"`
	Data        []byte     `gorm:"type:jsonb"`
	Pushed      bool       `gorm:"not null;default:false"`
	ReadAt      *time.Time `gorm:"index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts the database row to a domain entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	notification := &entity.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		ShopID:      m.ShopID,
		OrderID:     m.OrderID,
		BroadcastID: m.BroadcastID,
		Kind:        entity.NotificationKind(m.Kind),
		Title:       m.Title,
		Body:        m.Body,
		Pushed:      m.Pushed,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
	notification.Data = decodePayload(m.Data)

	return notification
}

// FromNotificationEntity converts a domain entity to a database row.
func FromNotificationEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:          notification.ID,
		RecipientID: notification.RecipientID,
		ShopID:      notification.ShopID,
		OrderID:     notification.OrderID,
		BroadcastID: notification.BroadcastID,
		Kind:        notification.Kind.String(),
		Title:       notification.Title,
		Body:        notification.Body,
		Data:        encodePayload(notification.Data),
		Pushed:      notification.Pushed,
		ReadAt:      notification.ReadAt,
		CreatedAt:   notification.CreatedAt,
	}
}

// ShopBroadcastModel mirrors the 'shop_broadcasts' table. One row is a
// radius-scoped announcement with its fan-out counters.
type ShopBroadcastModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	RadiusKm      float64   `gorm:"type:decimal(5,2);not null"`
	Title         string    `gorm:"type:text;not null"`
	Body          string    `gorm:"type:text;not null"`
	Data          []byte    `gorm:"type:jsonb"`
	TotalTargeted int       `gorm:"not null;default:0"`
	TotalSent     int       `gorm:"not null;default:0"`
	TotalFailed   int       `gorm:"not null;default:0"`
	PublishedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopBroadcastModel) TableName() string {
	return "shop_broadcasts"
}

// ToEntity converts the database row to a domain entity.
func (m *ShopBroadcastModel) ToEntity() *entity.ShopBroadcast {
	broadcast := &entity.ShopBroadcast{
		ID:            m.ID,
		ShopID:        m.ShopID,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		RadiusKm:      m.RadiusKm,
		Title:         m.Title,
		Body:          m.Body,
		TotalTargeted: m.TotalTargeted,
		TotalSent:     m.TotalSent,
		TotalFailed:   m.TotalFailed,
		PublishedAt:   m.PublishedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	broadcast.Data = decodePayload(m.Data)

	return broadcast
}

// FromBroadcastEntity converts a domain entity to a database row.
func FromBroadcastEntity(broadcast *entity.ShopBroadcast) *ShopBroadcastModel {
	return &ShopBroadcastModel{
		ID:            broadcast.ID,
		ShopID:        broadcast.ShopID,
		Latitude:      broadcast.Latitude,
		Longitude:     broadcast.Longitude,
		RadiusKm:      broadcast.RadiusKm,
		Title:         broadcast.Title,
		Body:          broadcast.Body,
		Data:          encodePayload(broadcast.Data),
		TotalTargeted: broadcast.TotalTargeted,
		TotalSent:     broadcast.TotalSent,
		TotalFailed:   broadcast.TotalFailed,
		PublishedAt:   broadcast.PublishedAt,
		CreatedAt:     broadcast.CreatedAt,
		UpdatedAt:     broadcast.UpdatedAt,
	}
}

func encodePayload(data map[string]string) []byte {
	if len(data) == 0 {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}

	return raw
}

func decodePayload(raw []byte) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}

	return data
}
