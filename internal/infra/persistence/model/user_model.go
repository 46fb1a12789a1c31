package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hawker/internal/domain/entity"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"type:varchar(255);unique;not null"`
	Name       string    `gorm:"type:varchar(100)"`
	Phone      string    `gorm:"type:varchar(32)"`
	Roles      string    `gorm:"type:varchar(64);not null;default:'customer'"`
	ActiveRole string    `gorm:"type:varchar(32);not null;default:'customer'"`

	// Last reported position, all nullable until the user shares one.
	// Latitude and longitude carry a composite index for bounding-box scans.
	Latitude         *float64   `gorm:"type:decimal(10,8);index:idx_users_position"`
	Longitude        *float64   `gorm:"type:decimal(11,8);index:idx_users_position"`
	LocationAddress  string     `gorm:"type:text"`
	LocationUpdated  *time.Time

	// Push provider registration.
	SubscriberID string     `gorm:"type:varchar(255)"`
	PushEnabled  bool       `gorm:"not null;default:false"`
	PushUpdated  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the database row to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	user := &entity.User{
		ID:         m.ID,
		Email:      m.Email,
		Name:       m.Name,
		Phone:      m.Phone,
		Roles:      entity.RolesFromStrings(strings.Split(m.Roles, ",")),
		ActiveRole: entity.Role(m.ActiveRole),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	if m.Latitude != nil && m.Longitude != nil {
		location := &entity.UserLocation{
			Latitude:  *m.Latitude,
			Longitude: *m.Longitude,
			Address:   m.LocationAddress,
		}
		if m.LocationUpdated != nil {
			location.RecordedAt = *m.LocationUpdated
		}
		user.Location = location
	}

	if m.SubscriberID != "" || m.PushEnabled {
		sub := &entity.PushSubscription{
			SubscriberID: m.SubscriberID,
			Enabled:      m.PushEnabled,
		}
		if m.PushUpdated != nil {
			sub.UpdatedAt = *m.PushUpdated
		}
		user.Subscription = sub
	}

	return user
}

// FromUserEntity converts a domain entity to a database row.
func FromUserEntity(user *entity.User) *UserModel {
	m := &UserModel{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Phone:      user.Phone,
		Roles:      strings.Join(user.Roles.ToStrings(), ","),
		ActiveRole: user.ActiveRole.String(),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if user.Location != nil {
		lat, lng, recorded := user.Location.Latitude, user.Location.Longitude, user.Location.RecordedAt
		m.Latitude = &lat
		m.Longitude = &lng
		m.LocationAddress = user.Location.Address
		m.LocationUpdated = &recorded
	}

	if user.Subscription != nil {
		updated := user.Subscription.UpdatedAt
		m.SubscriberID = user.Subscription.SubscriberID
		m.PushEnabled = user.Subscription.Enabled
		m.PushUpdated = &updated
	}

	return m
}
