// Package router wires the API handlers onto echo routes.
package router

import (
	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	PartnerHandler  *handler.PartnerHandler
	DeliveryHandler *handler.DeliveryHandler
	SweepHandler    *handler.SweepHandler
	DocumentHandler *handler.DocumentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	partnerHandler  *handler.PartnerHandler
	deliveryHandler *handler.DeliveryHandler
	sweepHandler    *handler.SweepHandler
	documentHandler *handler.DocumentHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		partnerHandler:  params.PartnerHandler,
		deliveryHandler: params.DeliveryHandler,
		sweepHandler:    params.SweepHandler,
		documentHandler: params.DocumentHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.Signup)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	userGroup := apiV1.Group("/user")
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.DELETE("", r.userHandler.DeleteAccount)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.productHandler.Create)
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/:id", r.productHandler.Get)
		productsGroup.PUT("/:id", r.productHandler.Update)
		productsGroup.DELETE("/:id", r.productHandler.Delete)
		productsGroup.GET("/:id/label", r.productHandler.Label)
		productsGroup.GET("/:id/movements", r.productHandler.Movements)
	}

	partnersGroup := apiV1.Group("/partners")
	{
		partnersGroup.POST("", r.partnerHandler.Create)
		partnersGroup.GET("", r.partnerHandler.List)
		partnersGroup.GET("/:id", r.partnerHandler.Get)
	}

	deliveriesGroup := apiV1.Group("/deliveries")
	{
		deliveriesGroup.POST("", r.deliveryHandler.Create)
		deliveriesGroup.GET("", r.deliveryHandler.List)
		deliveriesGroup.GET("/:id", r.deliveryHandler.Get)
		deliveriesGroup.POST("/:id/deliver", r.deliveryHandler.MarkDelivered)
		deliveriesGroup.POST("/:id/cancel", r.deliveryHandler.Cancel)
	}

	sweepsGroup := apiV1.Group("/sweeps")
	{
		sweepsGroup.POST("/dead-stock", r.sweepHandler.RunDeadStock)
		sweepsGroup.POST("/stale-deliveries", r.sweepHandler.RunStaleDeliveries)
	}

	documentsGroup := apiV1.Group("/documents")
	{
		documentsGroup.POST("", r.documentHandler.Upload)
		documentsGroup.GET("", r.documentHandler.List)
		documentsGroup.GET("/:id", r.documentHandler.Download)
	}
}
