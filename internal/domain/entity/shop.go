// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"

	"hawker/internal/domain/geo"
)

// Shop represents a storefront run by a shopkeeper account.
type Shop struct {
	ID             uuid.UUID       // The Global Unique Identifier for the shop.
	OwnerID        uuid.UUID       // The account that owns and manages this shop.
	Name           string          // Storefront name shown to customers.
	Category       string          // Free-form category label (groceries, pharmacy, ...).
	Description    string          // Optional storefront description.
	Phone          string          // Optional contact number shown to customers.
	Location       *ShopLocation   // Physical position. Nil until the shopkeeper sets one.
	IsOpen         bool            // Whether the shop is currently accepting orders.
	StatusEstimate *StatusEstimate // Optional opening/closing estimate shown alongside IsOpen.
	Delivery       DeliveryConfig  // Delivery availability and reach.
	CreatedAt      time.Time       // Timestamp of when this shop was created.
	UpdatedAt      time.Time       // Timestamp of the last modification.
}

// ShopLocation is the shop's physical position.
type ShopLocation struct {
	Latitude  float64 // WGS84 latitude in decimal degrees.
	Longitude float64 // WGS84 longitude in decimal degrees.
	Address   string  // Human-readable address label.
}

// Coordinate returns the location as a geo point.
func (l *ShopLocation) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// EstimateDirection says whether a status estimate counts toward opening or closing.
type EstimateDirection string

const (
	// EstimateOpensIn means the shop is closed and expects to open.
	EstimateOpensIn EstimateDirection = "opens_in"
	// EstimateClosesIn means the shop is open and expects to close.
	EstimateClosesIn EstimateDirection = "closes_in"
)

// String returns the string representation of the EstimateDirection.
func (d EstimateDirection) String() string {
	return string(d)
}

// IsValid checks if the EstimateDirection is a valid value.
func (d EstimateDirection) IsValid() bool {
	switch d {
	case EstimateOpensIn, EstimateClosesIn:
		return true
	default:
		return false
	}
}

// StatusEstimate is a shopkeeper-provided hint about when the open/closed
// status will flip next.
type StatusEstimate struct {
	Direction       EstimateDirection // Which way the status is about to flip.
	DurationMinutes int               // Minutes until the flip, as estimated at UpdatedAt.
	UpdatedAt       time.Time         // When the estimate was set.
}

// DeliveryConfig describes whether and how far the shop delivers.
type DeliveryConfig struct {
	Enabled  bool    // Whether the shop delivers at all.
	RadiusKm float64 // Delivery reach in kilometers, boundary inclusive.
}

// HasLocation reports whether the shop has a usable position on the map.
func (s *Shop) HasLocation() bool {
	return s.Location != nil && s.Location.Coordinate().Valid()
}
