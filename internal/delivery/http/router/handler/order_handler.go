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
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest carries everything needed to place an order.
type CreateOrderRequest struct {
	ShopID    uuid.UUID          `json:"shop_id" validate:"required"`
	Items     []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Latitude  float64            `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64            `json:"longitude" validate:"min=-180,max=180"`
	Address   string             `json:"address"`
}

// CreateOrder places a pending order for the authenticated customer.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	input := &usecase.CreateOrderInput{
		ShopID:     req.ShopID,
		CustomerID: customerID,
		Items:      items,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    req.Address,
	}
	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder retrieves one order for a participant of it.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	requesterID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID, requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateOrderStatusRequest carries a lifecycle decision from the shop.
type UpdateOrderStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	EstimateMinutes *int   `json:"estimate_minutes,omitempty" validate:"omitempty,min=1"`
	Reason          string `json:"reason,omitempty"`
}

// UpdateOrderStatus moves an order along the lifecycle on behalf of the shop.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	newStatus := entity.OrderStatus(req.Status)
	if !newStatus.IsValid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "unknown order status")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, actorID, newStatus, req.EstimateMinutes, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// CancelOrder withdraws an open order on behalf of the customer.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), orderID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// GetShopOrders retrieves a shop's orders for its owner, newest first.
// Pass ?open=true to restrict to orders still awaiting action.
func (h *OrderHandler) GetShopOrders(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	openOnly := c.QueryParam("open") == "true"
	orders, err := h.uc.GetShopOrders(c.Request().Context(), shopID, ownerID, openOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetCustomerOrders retrieves the authenticated customer's own orders.
func (h *OrderHandler) GetCustomerOrders(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	openOnly := c.QueryParam("open") == "true"
	orders, err := h.uc.GetCustomerOrders(c.Request().Context(), customerID, openOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// CountPendingOrders recomputes the shop's pending order counter.
func (h *OrderHandler) CountPendingOrders(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	count, err := h.uc.CountPendingOrders(c.Request().Context(), shopID, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"pending": count}, "Pending count retrieved successfully")
}
