package service

import (
	"context"
)

// PushMessage is the provider-agnostic payload of one push send.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReceipt reports how a multi-recipient send went. A send with some
// rejected recipients is still a successful call; only a whole-call failure
// surfaces as an error.
type PushReceipt struct {
	Accepted             int
	Failed               int
	InvalidSubscriberIDs []string
}

// PushSender defines the interface for push notification providers.
type PushSender interface {
	// SendToSubscribers delivers the message to the given provider-side
	// subscriber IDs. Implementations batch as the provider requires.
	SendToSubscribers(ctx context.Context, subscriberIDs []string, msg *PushMessage) (*PushReceipt, error)
}
