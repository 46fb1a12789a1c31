// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the in-app record of a message delivered (or attempted)
// to one recipient. It is persisted independently of whether the push
// channel accepted the message.
type Notification struct {
	ID          uuid.UUID         `json:"id"`                     // The Global Unique Identifier for the record.
	RecipientID uuid.UUID         `json:"recipient_id"`           // The account that received the message.
	ShopID      uuid.UUID         `json:"shop_id"`                // The shop the message originated from.
	OrderID     *uuid.UUID        `json:"order_id,omitempty"`     // Set for order lifecycle notifications.
	BroadcastID *uuid.UUID        `json:"broadcast_id,omitempty"` // Set for radius broadcast notifications.
	Kind        NotificationKind  `json:"kind"`                   // What event produced the message.
	Title       string            `json:"title"`                  // Display title.
	Body        string            `json:"body"`                   // Display body.
	Data        map[string]string `json:"data,omitempty"`         // Deep-link payload forwarded to the client.
	Pushed      bool              `json:"pushed"`                 // Whether the push provider accepted the message.
	ReadAt      *time.Time        `json:"read_at,omitempty"`      // When the recipient opened it, nil while unread.
	CreatedAt   time.Time         `json:"created_at"`             // Timestamp of when this record was created.
}

// NotificationKind classifies what produced a notification.
type NotificationKind string

const (
	// NotificationKindOrderStatus covers order lifecycle messages.
	NotificationKindOrderStatus NotificationKind = "order_status"
	// NotificationKindBroadcast covers radius-scoped shop announcements.
	NotificationKindBroadcast NotificationKind = "broadcast"
)

// String returns the string representation of the NotificationKind.
func (k NotificationKind) String() string {
	return string(k)
}

// ShopBroadcast represents one radius-scoped announcement published by a shop,
// with counters describing how the fan-out went.
type ShopBroadcast struct {
	ID            uuid.UUID         `json:"id"`             // The Global Unique Identifier for the broadcast.
	ShopID        uuid.UUID         `json:"shop_id"`        // The publishing shop.
	Latitude      float64           `json:"latitude"`       // Shop latitude at publish time.
	Longitude     float64           `json:"longitude"`      // Shop longitude at publish time.
	RadiusKm      float64           `json:"radius_km"`      // Targeting radius, boundary inclusive.
	Title         string            `json:"title"`          // Message title.
	Body          string            `json:"body"`           // Message body.
	Data          map[string]string `json:"data,omitempty"` // Deep-link payload.
	TotalTargeted int               `json:"total_targeted"` // Users inside the radius at publish time.
	TotalSent     int               `json:"total_sent"`     // Pushes accepted by the provider.
	TotalFailed   int               `json:"total_failed"`   // Pushes rejected or undeliverable.
	PublishedAt   time.Time         `json:"published_at"`   // When the fan-out ran.
	CreatedAt     time.Time         `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time         `json:"updated_at"`     // Timestamp of the last modification.
}
