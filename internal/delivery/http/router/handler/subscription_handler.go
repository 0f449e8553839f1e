package handler

import (
	"log/slog"
	"net/http"

	"homepros/internal/delivery/http/middleware"
	"homepros/internal/delivery/http/response"
	"homepros/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler serves the billing endpoints for listing owners.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateCheckoutRequest represents the request body for starting an upgrade
// checkout.
type CreateCheckoutRequest struct {
	ReturnURL string `json:"return_url" validate:"required,url"`
}

// GetSubscriptionStatus handles GET /api/listings/:id/subscription. The read
// reconciles the stored tier against the billing provider before answering.
func (h *SubscriptionHandler) GetSubscriptionStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	status, err := h.subscriptionUC.ReconcileSubscription(c.Request().Context(), actor, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// CreateCheckout handles POST /api/listings/:id/checkout
func (h *SubscriptionHandler) CreateCheckout(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req CreateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	url, err := h.subscriptionUC.StartUpgradeCheckout(c.Request().Context(), actor, listingID, req.ReturnURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}

// CheckoutQR handles GET /api/listings/:id/checkout/qr, returning the hosted
// checkout link as a PNG QR code.
func (h *SubscriptionHandler) CheckoutQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	returnURL := c.QueryParam("return_url")
	if returnURL == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "return_url query parameter is required")
	}

	png, err := h.subscriptionUC.UpgradeCheckoutQR(c.Request().Context(), actor, listingID, returnURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
