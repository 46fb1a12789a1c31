package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hawker/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(32);not null;default:'pending';index"`

	// Customer contact snapshot taken at checkout, so the shop can reach
	// the customer even after the account changes.
	CustomerName  string `gorm:"type:varchar(255);not null;default:''"`
	CustomerPhone string `gorm:"type:varchar(32);not null;default:''"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	// Delivery point snapshot taken at checkout.
	DeliveryLatitude  *float64 `gorm:"type:decimal(10,8)"`
	DeliveryLongitude *float64 `gorm:"type:decimal(11,8)"`
	DeliveryAddress   string   `gorm:"type:text"`
	DistanceKm        float64  `gorm:"type:decimal(6,2);not null;default:0"`

	EstimateMinutes *int
	RejectReason    string `gorm:"type:text"`

	PlacedAt  time.Time
	DecidedAt *time.Time
	ClosedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Prices are snapshotted
// at order time and never re-read from the shop.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToEntity converts the database row to a domain entity.
func (m *OrderModel) ToEntity() *entity.Order {
	order := &entity.Order{
		ID:              m.ID,
		ShopID:          m.ShopID,
		CustomerID:      m.CustomerID,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		Status:          entity.OrderStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		DistanceKm:      m.DistanceKm,
		EstimateMinutes: m.EstimateMinutes,
		RejectReason:    m.RejectReason,
		PlacedAt:        m.PlacedAt,
		DecidedAt:       m.DecidedAt,
		ClosedAt:        m.ClosedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.DeliveryLatitude != nil && m.DeliveryLongitude != nil {
		order.DeliveryLocation = &entity.OrderLocation{
			Latitude:  *m.DeliveryLatitude,
			Longitude: *m.DeliveryLongitude,
			Address:   m.DeliveryAddress,
		}
	}

	if len(m.Items) > 0 {
		order.Items = make([]entity.OrderItem, 0, len(m.Items))
		for _, item := range m.Items {
			order.Items = append(order.Items, entity.OrderItem{
				ID:        item.ID,
				OrderID:   item.OrderID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
	}

	return order
}

// FromOrderEntity converts a domain entity to a database row.
func FromOrderEntity(order *entity.Order) *OrderModel {
	m := &OrderModel{
		ID:              order.ID,
		ShopID:          order.ShopID,
		CustomerID:      order.CustomerID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		Status:          order.Status.String(),
		TotalAmount:     order.TotalAmount,
		DistanceKm:      order.DistanceKm,
		EstimateMinutes: order.EstimateMinutes,
		RejectReason:    order.RejectReason,
		PlacedAt:        order.PlacedAt,
		DecidedAt:       order.DecidedAt,
		ClosedAt:        order.ClosedAt,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}

	if order.DeliveryLocation != nil {
		lat, lng := order.DeliveryLocation.Latitude, order.DeliveryLocation.Longitude
		m.DeliveryLatitude = &lat
		m.DeliveryLongitude = &lng
		m.DeliveryAddress = order.DeliveryLocation.Address
	}

	if len(order.Items) > 0 {
		m.Items = make([]OrderItemModel, 0, len(order.Items))
		for _, item := range order.Items {
			m.Items = append(m.Items, OrderItemModel{
				ID:        item.ID,
				OrderID:   item.OrderID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
	}

	return m
}
