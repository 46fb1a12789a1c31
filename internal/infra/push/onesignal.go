package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"hawker/config"
	domainerrors "hawker/internal/domain/errors"
	"hawker/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultOneSignalEndpoint = "https://api.onesignal.com/notifications"
	defaultOneSignalTimeout  = 10 * time.Second

	// OneSignal caps include_subscription_ids per create-notification call.
	oneSignalMaxRecipients = 2000
)

// oneSignalSender implements PushSender against the OneSignal REST API.
type oneSignalSender struct {
	endpoint   string
	appID      string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// oneSignalRequest is the create-notification request body.
type oneSignalRequest struct {
	AppID                  string            `json:"app_id"`
	IncludeSubscriptionIDs []string          `json:"include_subscription_ids"`
	Headings               map[string]string `json:"headings"`
	Contents               map[string]string `json:"contents"`
	Data                   map[string]string `json:"data,omitempty"`
}

// oneSignalResponse is the subset of the create-notification response we read.
type oneSignalResponse struct {
	ID     string `json:"id"`
	Errors struct {
		InvalidPlayerIDs []string `json:"invalid_player_ids"`
	} `json:"errors"`
}

// NewOneSignalSender creates a new OneSignal push sender.
func NewOneSignalSender(cfg *config.PushConfig, logger *slog.Logger) service.PushSender {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultOneSignalEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultOneSignalTimeout
	}

	return &oneSignalSender{
		endpoint: endpoint,
		appID:    cfg.AppID,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SendToSubscribers delivers the message to the given OneSignal subscription IDs.
// Recipient lists beyond the provider cap are split into sequential calls.
func (s *oneSignalSender) SendToSubscribers(ctx context.Context, subscriberIDs []string, msg *service.PushMessage) (*service.PushReceipt, error) {
	if len(subscriberIDs) == 0 {
		return &service.PushReceipt{}, nil
	}

	receipt := &service.PushReceipt{}
	for start := 0; start < len(subscriberIDs); start += oneSignalMaxRecipients {
		end := min(start+oneSignalMaxRecipients, len(subscriberIDs))

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

func (s *oneSignalSender) sendChunk(ctx context.Context, subscriberIDs []string, msg *service.PushMessage) (*service.PushReceipt, error) {
	body, err := json.Marshal(&oneSignalRequest{
		AppID:                  s.appID,
		IncludeSubscriptionIDs: subscriberIDs,
		Headings:               map[string]string{"en": msg.Title},
		Contents:               map[string]string{"en": msg.Body},
		Data:                   msg.Data,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewDispatchFailedError(err, "onesignal request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read onesignal response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error("[OneSignal] Provider rejected the send",
			slog.Int("status", resp.StatusCode),
			slog.Int("recipients", len(subscriberIDs)),
		)

		return nil, domainerrors.NewDispatchFailedError(
			errors.Errorf("onesignal returned status %d", resp.StatusCode),
			string(respBody),
		)
	}

	var parsed oneSignalResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode onesignal response")
	}

	invalid := parsed.Errors.InvalidPlayerIDs
	receipt := &service.PushReceipt{
		Accepted:             len(subscriberIDs) - len(invalid),
		Failed:               len(invalid),
		InvalidSubscriberIDs: invalid,
	}

	s.logger.Debug("[OneSignal] Send accepted",
		slog.String("notification_id", parsed.ID),
		slog.Int("accepted", receipt.Accepted),
		slog.Int("failed", receipt.Failed),
	)

	return receipt, nil
}
