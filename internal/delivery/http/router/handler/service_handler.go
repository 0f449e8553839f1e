package handler

import (
	"log/slog"
	"net/http"

	"homepros/internal/delivery/http/response"
	"homepros/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// ServiceHandler serves the service-category catalog.
type ServiceHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// ListServices handles GET /api/services, returning the flat catalog and the
// same catalog grouped by parent category.
func (h *ServiceHandler) ListServices(c echo.Context) error {
	catalog, err := h.directoryUC.ListServiceCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"services": catalog.Services,
		"grouped":  catalog.Grouped,
	})
}
