package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"homepros/internal/delivery/http/response"
	"homepros/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// SearchHandler serves the public directory search.
type SearchHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// Search handles GET /api/search. Filters arrive as comma-separated query
// parameters: services (category ids), cities, plus optional zip and radius.
func (h *SearchHandler) Search(c echo.Context) error {
	query := usecase.SearchQuery{
		Zip: strings.TrimSpace(c.QueryParam("zip")),
	}

	if raw := c.QueryParam("services"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return response.BadRequest(c, "INVALID_SERVICE_ID", "Service ids must be integers")
			}
			query.ServiceIDs = append(query.ServiceIDs, id)
		}
	}

	if raw := c.QueryParam("cities"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if city := strings.TrimSpace(part); city != "" {
				query.Cities = append(query.Cities, city)
			}
		}
	}

	if raw := c.QueryParam("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			return response.BadRequest(c, "INVALID_RADIUS", "Radius must be a positive number")
		}
		query.RadiusMiles = &radius
	}

	listings, err := h.directoryUC.SearchListings(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"contractors": listings})
}
