// Package router contains routing setup for the HTTP delivery.
package router

import (
	"homepros/internal/delivery/http/middleware"
	"homepros/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	SearchHandler       *handler.SearchHandler
	ServiceHandler      *handler.ServiceHandler
	ListingHandler      *handler.ListingHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler       *handler.SearchHandler
	serviceHandler      *handler.ServiceHandler
	listingHandler      *handler.ListingHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:       params.SearchHandler,
		serviceHandler:      params.ServiceHandler,
		listingHandler:      params.ListingHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public directory routes
	api.GET("/search", r.searchHandler.Search)
	api.GET("/services", r.serviceHandler.ListServices)
	api.GET("/listings/:id", r.listingHandler.GetListing)

	// Owner management routes require authentication
	manage := api.Group("")
	manage.Use(r.authMiddleware.Authenticate)
	{
		manage.POST("/listings/:id/claim", r.listingHandler.ClaimListing)
		manage.PUT("/listings/:id", r.listingHandler.UpdateListing)
		manage.POST("/listings/:id/services", r.listingHandler.AddServices)
		manage.DELETE("/listings/:id/services/:serviceId", r.listingHandler.RemoveService)
		manage.POST("/listings/:id/photos", r.listingHandler.AddPhoto)
		manage.DELETE("/listings/:id/photos/:photoId", r.listingHandler.RemovePhoto)
		manage.POST("/uploads", r.listingHandler.UploadMedia)

		manage.GET("/listings/:id/subscription", r.subscriptionHandler.GetSubscriptionStatus)
		manage.POST("/listings/:id/checkout", r.subscriptionHandler.CreateCheckout)
		manage.GET("/listings/:id/checkout/qr", r.subscriptionHandler.CheckoutQR)
	}
}
