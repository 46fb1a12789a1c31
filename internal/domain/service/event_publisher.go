package service

import (
	"context"
)

// BroadcastEvent represents one shop announcement handed to the push worker
// for asynchronous fan-out.
type BroadcastEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	BroadcastID  string            `json:"broadcast_id"`
	ShopID       string            `json:"shop_id"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	RadiusKm     float64           `json:"radius_km"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Data         map[string]string `json:"data,omitempty"`
	CandidateIDs []string          `json:"candidate_ids"` // Coarse-filtered recipient user IDs
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBroadcastEvent publishes a broadcast event for async processing
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
