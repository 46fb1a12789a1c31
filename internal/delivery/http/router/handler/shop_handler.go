package handler

import (
	"log/slog"
	"net/http"

	"hawker/internal/delivery/http/response"
	"hawker/internal/domain/entity"
	"hawker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopHandler holds dependencies for storefront-related handlers.
type ShopHandler struct {
	uc     usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.ShopUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		uc:     uc,
		logger: logger,
	}
}

// ShopRequest carries storefront details for create and update.
type ShopRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Phone       string   `json:"phone"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Address     string   `json:"address"`
}

// CreateShop registers a storefront for the authenticated shopkeeper.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateShopInput{
		OwnerID:     ownerID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
	}
	shop, err := h.uc.CreateShop(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop created successfully")
}

// GetShop retrieves a storefront by ID.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	shop, err := h.uc.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

// GetShopForCustomer retrieves a storefront together with the delivery
// eligibility verdict for the authenticated customer's reported location.
func (h *ShopHandler) GetShopForCustomer(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	view, err := h.uc.GetShopForCustomer(c.Request().Context(), shopID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Shop retrieved successfully")
}

// GetOwnShops retrieves every storefront the authenticated account manages.
func (h *ShopHandler) GetOwnShops(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shops, err := h.uc.GetOwnShops(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shops, "Shops retrieved successfully")
}

// UpdateShopProfile updates storefront details on behalf of the owner.
func (h *ShopHandler) UpdateShopProfile(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateShopInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
	}
	shop, err := h.uc.UpdateShopProfile(c.Request().Context(), shopID, ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop updated successfully")
}

// OpenStatusRequest carries an open/closed flip with an optional estimate.
type OpenStatusRequest struct {
	IsOpen          bool   `json:"is_open"`
	Direction       string `json:"direction,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1"`
}

// SetOpenStatus flips the storefront's open flag, optionally announcing
// when the flag is about to flip the other way.
func (h *ShopHandler) SetOpenStatus(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req OpenStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	direction := entity.EstimateDirection(req.Direction)
	if req.Direction != "" && !direction.IsValid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "direction must be 'opens_in' or 'closes_in'")
	}

	input := &usecase.OpenStatusInput{
		IsOpen:          req.IsOpen,
		Direction:       direction,
		DurationMinutes: req.DurationMinutes,
	}
	shop, err := h.uc.SetOpenStatus(c.Request().Context(), shopID, ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop status updated successfully")
}

// DeliveryConfigRequest carries the delivery availability settings.
type DeliveryConfigRequest struct {
	Enabled  bool    `json:"enabled"`
	RadiusKm float64 `json:"radius_km" validate:"min=0"`
}

// SetDeliveryConfig replaces the storefront's delivery availability settings.
func (h *ShopHandler) SetDeliveryConfig(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req DeliveryConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery config input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cfg := entity.DeliveryConfig{
		Enabled:  req.Enabled,
		RadiusKm: req.RadiusKm,
	}
	shop, err := h.uc.SetDeliveryConfig(c.Request().Context(), shopID, ownerID, cfg)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Delivery config updated successfully")
}

// GenerateShopQR renders a PNG QR code deep-linking to the storefront.
func (h *ShopHandler) GenerateShopQR(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	png, err := h.uc.GenerateShopQR(c.Request().Context(), shopID, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
