package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"homepros/internal/delivery/http/middleware"
	"homepros/internal/delivery/http/response"
	"homepros/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	ListingUC   usecase.ListingUsecase
	Logger      *slog.Logger
}

// ListingHandler serves the public listing page and the owner management
// endpoints.
type ListingHandler struct {
	directoryUC usecase.DirectoryUsecase
	listingUC   usecase.ListingUsecase
	logger      *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		directoryUC: params.DirectoryUC,
		listingUC:   params.ListingUC,
		logger:      params.Logger,
	}
}

// UpdateListingRequest represents the owner-editable profile fields.
type UpdateListingRequest struct {
	Description      *string `json:"description,omitempty"`
	LogoURL          *string `json:"logo_url,omitempty"`
	PrimaryServiceID *int64  `json:"primary_service_id,omitempty"`
}

// AddServicesRequest represents the request body for adding service categories.
type AddServicesRequest struct {
	ServiceIDs []int64 `json:"service_ids" validate:"required,min=1"`
}

// AddPhotoRequest represents the request body for attaching a photo.
type AddPhotoRequest struct {
	PhotoURL string `json:"photo_url" validate:"required,url"`
}

func listingIDParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// GetListing handles GET /api/listings/:id
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	detail, err := h.directoryUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// ClaimListing handles POST /api/listings/:id/claim
func (h *ListingHandler) ClaimListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.ClaimListing(c.Request().Context(), actor, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing claimed successfully"})
}

// UpdateListing handles PUT /api/listings/:id
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	input := usecase.ProfileUpdateInput{
		Description:      req.Description,
		LogoURL:          req.LogoURL,
		PrimaryServiceID: req.PrimaryServiceID,
	}

	if err := h.listingUC.UpdateListing(c.Request().Context(), actor, listingID, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing updated successfully"})
}

// AddServices handles POST /api/listings/:id/services
func (h *ListingHandler) AddServices(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req AddServicesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid services input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.listingUC.AddServices(c.Request().Context(), actor, listingID, req.ServiceIDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Services added successfully"})
}

// RemoveService handles DELETE /api/listings/:id/services/:serviceId
func (h *ListingHandler) RemoveService(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	serviceID, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil || serviceID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	if err := h.listingUC.RemoveService(c.Request().Context(), actor, listingID, serviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Service removed successfully"})
}

// AddPhoto handles POST /api/listings/:id/photos
func (h *ListingHandler) AddPhoto(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req AddPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	photo, err := h.listingUC.AddPhoto(c.Request().Context(), actor, listingID, req.PhotoURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, photo)
}

// RemovePhoto handles DELETE /api/listings/:id/photos/:photoId
func (h *ListingHandler) RemovePhoto(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, ok := listingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	photoID, err := strconv.ParseInt(c.Param("photoId"), 10, 64)
	if err != nil || photoID <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid photo ID")
	}

	if err := h.listingUC.RemovePhoto(c.Request().Context(), actor, listingID, photoID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Photo removed successfully"})
}

// UploadMedia handles POST /api/uploads, accepting one multipart file and
// returning its stable public URL.
func (h *ListingHandler) UploadMedia(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read uploaded file")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.listingUC.UploadMedia(c.Request().Context(), actor, fileHeader.Filename, contentType, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}
