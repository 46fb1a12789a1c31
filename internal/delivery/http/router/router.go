// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hawker/internal/delivery/http/middleware"
	"hawker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const roleShopkeeper = "shopkeeper"

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ShopHandler      *handler.ShopHandler
	OrderHandler     *handler.OrderHandler
	BroadcastHandler *handler.BroadcastHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	shopHandler      *handler.ShopHandler
	orderHandler     *handler.OrderHandler
	broadcastHandler *handler.BroadcastHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		shopHandler:      params.ShopHandler,
		orderHandler:     params.OrderHandler,
		broadcastHandler: params.BroadcastHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account registration is open; everything else under /users requires
	// a valid token.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)

		meGroup := userGroup.Group("/me")
		meGroup.Use(r.authMiddleware.Authenticate)
		{
			meGroup.GET("", r.userHandler.GetProfile)
			meGroup.PUT("/role", r.userHandler.SwitchActiveRole)
			meGroup.PUT("/location", r.userHandler.UpdateLocation)
			meGroup.PUT("/push", r.userHandler.UpdatePushSubscription)
			meGroup.GET("/notifications", r.userHandler.GetNotifications)
			meGroup.GET("/notifications/unread", r.userHandler.CountUnreadNotifications)
		}
	}

	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.POST("/:id/read", r.userHandler.MarkNotificationRead)
	}

	// Shop routes: reads for any authenticated account, writes only for
	// shopkeepers. Ownership itself is enforced in the usecase layer.
	shopGroup := e.Group("/shops")
	shopGroup.Use(r.authMiddleware.Authenticate)
	{
		shopGroup.GET("/:id", r.shopHandler.GetShop)
		shopGroup.GET("/:id/availability", r.shopHandler.GetShopForCustomer)

		keeperGroup := shopGroup.Group("")
		keeperGroup.Use(r.authMiddleware.RequireRole(roleShopkeeper))
		{
			keeperGroup.POST("", r.shopHandler.CreateShop)
			keeperGroup.GET("/mine", r.shopHandler.GetOwnShops)
			keeperGroup.PUT("/:id", r.shopHandler.UpdateShopProfile)
			keeperGroup.PUT("/:id/status", r.shopHandler.SetOpenStatus)
			keeperGroup.PUT("/:id/delivery", r.shopHandler.SetDeliveryConfig)
			keeperGroup.GET("/:id/qrcode", r.shopHandler.GenerateShopQR)

			keeperGroup.GET("/:id/orders", r.orderHandler.GetShopOrders)
			keeperGroup.GET("/:id/orders/pending", r.orderHandler.CountPendingOrders)

			keeperGroup.POST("/:id/broadcasts", r.broadcastHandler.BroadcastNearby)
			keeperGroup.GET("/:id/broadcasts", r.broadcastHandler.GetShopBroadcasts)
		}
	}

	// Order routes for the customer side; status decisions come from the
	// shop side and are authorized against the shop owner in the usecase.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.GetCustomerOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}
}
