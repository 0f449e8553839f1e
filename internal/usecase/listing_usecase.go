package usecase

import (
	"context"

	"homepros/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated user an operation runs on behalf of.
type Actor struct {
	UserID uuid.UUID
	Email  string
}

// ProfileUpdateInput carries the owner-editable listing fields. Nil fields
// are left untouched.
type ProfileUpdateInput struct {
	Description *string

	// LogoURL replaces the listing logo; it must be a URL previously
	// returned by UploadMedia.
	LogoURL *string

	// PrimaryServiceID, when set, swaps the primary service flag to this
	// category. The category must already be associated with the listing.
	PrimaryServiceID *int64
}

// ListingUsecase defines owner-side listing management.
type ListingUsecase interface {
	// ClaimListing makes the actor the permanent owner of an unclaimed
	// listing. Concurrent claims are serialized; exactly one succeeds.
	ClaimListing(ctx context.Context, actor Actor, listingID int64) error

	// UpdateListing applies profile edits, including the primary-service
	// swap, as one atomic operation.
	UpdateListing(ctx context.Context, actor Actor, listingID int64, input ProfileUpdateInput) error

	// AddServices associates extra service categories with a pro listing.
	// Already-associated categories are skipped.
	AddServices(ctx context.Context, actor Actor, listingID int64, serviceIDs []int64) error

	// RemoveService drops a non-primary service association.
	RemoveService(ctx context.Context, actor Actor, listingID, serviceID int64) error

	// AddPhoto attaches an uploaded photo to a pro listing.
	AddPhoto(ctx context.Context, actor Actor, listingID int64, photoURL string) (*entity.Photo, error)

	// RemovePhoto deletes a photo from the actor's listing.
	RemovePhoto(ctx context.Context, actor Actor, listingID, photoID int64) error

	// UploadMedia stores raw bytes (logo or photo) and returns the stable
	// public URL to reference from the listing.
	UploadMedia(ctx context.Context, actor Actor, filename, contentType string, data []byte) (string, error)
}
