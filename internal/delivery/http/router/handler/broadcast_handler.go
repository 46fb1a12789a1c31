package handler

import (
	"log/slog"
	"net/http"

	"hawker/internal/delivery/http/response"
	"hawker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BroadcastHandler holds dependencies for shop announcement handlers.
type BroadcastHandler struct {
	uc     usecase.BroadcastUsecase
	logger *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler, injected by Fx.
func NewBroadcastHandler(uc usecase.BroadcastUsecase, logger *slog.Logger) *BroadcastHandler {
	return &BroadcastHandler{
		uc:     uc,
		logger: logger,
	}
}

// BroadcastRequest carries one radius-scoped announcement from a shop.
type BroadcastRequest struct {
	RadiusKm float64           `json:"radius_km" validate:"required,gt=0"`
	Title    string            `json:"title" validate:"required"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
}

// BroadcastNearby announces to every user within the radius of the shop.
func (h *BroadcastHandler) BroadcastNearby(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.BroadcastInput{
		ShopID:   shopID,
		OwnerID:  ownerID,
		RadiusKm: req.RadiusKm,
		Title:    req.Title,
		Body:     req.Body,
		Data:     req.Data,
	}
	broadcast, result, err := h.uc.BroadcastNearby(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{"broadcast": broadcast}
	if result != nil {
		payload["dispatched"] = result.Dispatched
		payload["failed"] = len(result.Failures)
	}

	return response.Success(c, http.StatusAccepted, payload, "Broadcast published successfully")
}

// GetShopBroadcasts retrieves broadcast history for a shop, newest first.
func (h *BroadcastHandler) GetShopBroadcasts(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	limit, offset := getPagination(c)
	broadcasts, err := h.uc.GetShopBroadcasts(c.Request().Context(), shopID, ownerID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, broadcasts, "Broadcasts retrieved successfully")
}
