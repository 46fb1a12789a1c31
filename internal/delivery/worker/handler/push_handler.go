package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"hawker/config"
	deliverycontext "hawker/internal/delivery/context"
	"hawker/internal/domain/constants"
	"hawker/internal/domain/entity"
	"hawker/internal/domain/geo"
	"hawker/internal/domain/repository"
	"hawker/internal/domain/service"
	"hawker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying shop broadcast events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	targetingSvc   usecase.TargetingUsecase
	dispatcherSvc  usecase.DispatcherUsecase
	broadcastRepo  repository.BroadcastRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	TargetingSvc  usecase.TargetingUsecase
	DispatcherSvc usecase.DispatcherUsecase
	BroadcastRepo repository.BroadcastRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		targetingSvc:   params.TargetingSvc,
		dispatcherSvc:  params.DispatcherSvc,
		broadcastRepo:  params.BroadcastRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse broadcast event
	var event service.BroadcastEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse broadcast event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing broadcast event",
		slog.String("broadcast_id", event.BroadcastID),
		slog.String("shop_id", event.ShopID),
		slog.Int("candidate_count", len(event.CandidateIDs)),
	)

	// Process the broadcast fan-out
	if err := h.processBroadcast(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process broadcast",
			slog.String("broadcast_id", event.BroadcastID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Broadcast processed successfully",
		slog.String("broadcast_id", event.BroadcastID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.BroadcastEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processBroadcast runs the fan-out for one broadcast event. Candidates were
// coarse-filtered at publish time; their positions are re-checked against the
// radius here because they may have moved since.
func (h *PushHandler) processBroadcast(ctx context.Context, event *service.BroadcastEvent) error {
	broadcastID, candidateIDs, err := h.parseEventIDs(event)
	if err != nil {
		return err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if len(candidateIDs) == 0 {
		logger.Info("[Worker] No candidates to notify",
			slog.String("broadcast_id", event.BroadcastID),
		)

		return h.saveCounters(ctx, broadcastID, 0, 0, 0)
	}

	// Confirm which candidates are still within the radius
	center := geo.Coordinate{Latitude: event.Latitude, Longitude: event.Longitude}
	recipients, err := h.targetingSvc.FindRecipientsAmong(ctx, center, event.RadiusKm, candidateIDs)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	logger.Info("[Worker] Confirmed recipients by distance",
		slog.String("broadcast_id", event.BroadcastID),
		slog.Int("candidate_count", len(candidateIDs)),
		slog.Int("recipient_count", len(recipients)),
	)

	if len(recipients) == 0 {
		return h.saveCounters(ctx, broadcastID, 0, 0, 0)
	}

	// Dispatch push messages and in-app records
	dispatchRecipients := make([]*usecase.DispatchRecipient, 0, len(recipients))
	for _, recipient := range recipients {
		dispatchRecipients = append(dispatchRecipients, &usecase.DispatchRecipient{
			UserID:       recipient.UserID,
			SubscriberID: recipient.SubscriberID,
		})
	}

	shopID, err := uuid.Parse(event.ShopID)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.dispatcherSvc.Dispatch(ctx, dispatchRecipients, &usecase.NotificationPayload{
		ShopID:      shopID,
		BroadcastID: &broadcastID,
		Kind:        entity.NotificationKindBroadcast,
		Title:       event.Title,
		Body:        event.Body,
		Data:        event.Data,
	})
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return h.saveCounters(ctx, broadcastID, len(recipients), result.Dispatched, len(result.Failures))
}

// parseEventIDs parses and validates all IDs from the event
func (h *PushHandler) parseEventIDs(event *service.BroadcastEvent) (broadcastID uuid.UUID, candidateIDs []uuid.UUID, err error) {
	broadcastID, err = uuid.Parse(event.BroadcastID)
	if err != nil {
		return uuid.Nil, nil, errors.WithStack(err)
	}

	candidateIDs = make([]uuid.UUID, 0, len(event.CandidateIDs))
	for _, idStr := range event.CandidateIDs {
		id, parseErr := uuid.Parse(idStr)
		if parseErr == nil {
			candidateIDs = append(candidateIDs, id)
		}
	}

	return broadcastID, candidateIDs, nil
}

// saveCounters overwrites the broadcast fan-out counters
func (h *PushHandler) saveCounters(ctx context.Context, broadcastID uuid.UUID, targeted, sent, failed int) error {
	if err := h.broadcastRepo.UpdateBroadcastCounters(ctx, broadcastID, targeted, sent, failed); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("[Worker] Broadcast fan-out completed",
		slog.String("broadcast_id", broadcastID.String()),
		slog.Int("total_targeted", targeted),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
