// Package push contains the concrete push notification providers.
package push

import (
	"context"
	"log/slog"

	"hawker/config"
	"hawker/internal/domain/constants"
	"hawker/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopSender is a no-op implementation when no push provider is configured.
// Notification records are still written; only the push channel is skipped.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendToSubscribers(_ context.Context, subscriberIDs []string, _ *service.PushMessage) (*service.PushReceipt, error) {
	s.logger.Debug("[NoopPush] Push provider disabled, skipping send",
		slog.Int("recipients", len(subscriberIDs)),
	)

	return &service.PushReceipt{}, nil
}

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Push
	logger := params.Logger

	// If no provider is configured, return a no-op sender
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push provider not configured, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PushProviderOneSignal:
		if cfg.AppID == "" || cfg.APIKey == "" {
			return nil, errors.New("app ID and API key are required for onesignal provider")
		}
		logger.Info("Using OneSignal push sender",
			slog.String("app_id", cfg.AppID),
		)

		return NewOneSignalSender(cfg, logger), nil

	case constants.PushProviderFCM:
		fbCfg := params.Config.Firebase
		if fbCfg == nil || fbCfg.CredentialsPath == "" {
			return nil, errors.New("firebase credentials are required for fcm provider")
		}
		logger.Info("Using FCM push sender",
			slog.String("project_id", fbCfg.ProjectID),
		)

		return NewFCMSender(params.Ctx, fbCfg.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushSender),
)
