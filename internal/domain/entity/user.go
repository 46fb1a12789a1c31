// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"

	"hawker/internal/domain/geo"
)

// User is the core entity in the system, representing a unique account.
// A single account can hold both roles; ActiveRole decides which side of
// the marketplace it is currently acting as.
type User struct {
	ID           uuid.UUID         // The Global Unique Identifier for the account.
	Email        string            // Primary contact email, also the login identifier.
	Name         string            // Display name.
	Phone        string            // Contact phone number, optional.
	Roles        Roles             // All roles this account holds.
	ActiveRole   Role              // The role the account is currently acting under.
	Location     *UserLocation     // Last known location. Nil until the user shares one.
	Subscription *PushSubscription // Push channel registration. Nil if the user never opted in.
	CreatedAt    time.Time         // Timestamp of when this account was created.
	UpdatedAt    time.Time         // Timestamp of the last modification.
}

// UserLocation is the user's last reported position, used for delivery
// eligibility checks and radius-scoped broadcast targeting.
type UserLocation struct {
	Latitude   float64   // WGS84 latitude in decimal degrees.
	Longitude  float64   // WGS84 longitude in decimal degrees.
	Address    string    // Human-readable address label, optional.
	RecordedAt time.Time // When the position was reported.
}

// Coordinate returns the location as a geo point.
func (l *UserLocation) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// PushSubscription is the user's registration with the push provider.
type PushSubscription struct {
	SubscriberID string    // Provider-side player/device identifier.
	Enabled      bool      // Whether the user currently accepts pushes.
	UpdatedAt    time.Time // When the registration last changed.
}

// CanReceivePush reports whether a push can be attempted for this user.
// Users without an enabled subscription still receive in-app records.
func (u *User) CanReceivePush() bool {
	return u.Subscription != nil && u.Subscription.Enabled && u.Subscription.SubscriberID != ""
}

// HasLocation reports whether the user has a usable reported position.
func (u *User) HasLocation() bool {
	return u.Location != nil && u.Location.Coordinate().Valid()
}
