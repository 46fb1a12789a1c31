package push

import (
	"context"
	"fmt"

	"hawker/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCM limits multicast sends to 500 tokens per request.
const fcmMaxRecipients = 500

// fcmSender implements PushSender against Firebase Cloud Messaging.
// Subscriber IDs are FCM registration tokens for this provider.
type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates a new FCM push sender instance
func NewFCMSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmSender{
		client: client,
	}, nil
}

// SendToSubscribers delivers the message to the given registration tokens,
// splitting into multicast calls of at most 500 tokens.
func (s *fcmSender) SendToSubscribers(ctx context.Context, subscriberIDs []string, msg *service.PushMessage) (*service.PushReceipt, error) {
	if len(subscriberIDs) == 0 {
		return &service.PushReceipt{}, nil
	}

	receipt := &service.PushReceipt{}
	for start := 0; start < len(subscriberIDs); start += fcmMaxRecipients {
		end := min(start+fcmMaxRecipients, len(subscriberIDs))

		chunk, err := s.sendChunk(ctx, subscriberIDs[start:end], msg)
		if err != nil {
			return nil, err
		}

		receipt.Accepted += chunk.Accepted
		receipt.Failed += chunk.Failed
		receipt.InvalidSubscriberIDs = append(receipt.InvalidSubscriberIDs, chunk.InvalidSubscriberIDs...)
	}

	return receipt, nil
}

func (s *fcmSender) sendChunk(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReceipt, error) {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	// Collect invalid tokens so callers can prune dead registrations.
	invalidTokens := make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, tokens[idx])
			}
		}
	}

	return &service.PushReceipt{
		Accepted:             response.SuccessCount,
		Failed:               response.FailureCount,
		InvalidSubscriberIDs: invalidTokens,
	}, nil
}
