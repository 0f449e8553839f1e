package repository

import (
	"context"

	"homepros/internal/domain/entity"
	"homepros/internal/errors"
)

// ErrServiceNotFound is returned when a listing/service association does not exist.
var ErrServiceNotFound = errors.New("service association not found")

// CategoryRepository defines the interface for service-category database operations.
type CategoryRepository interface {
	// ListCategories returns all service categories ordered by parent
	// category, then name.
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)

	// FindListingServices returns a listing's service associations joined
	// with category names, primary first, then by name.
	FindListingServices(ctx context.Context, listingID int64) ([]*entity.ListingServiceView, error)

	// FindListingService retrieves one association, or ErrServiceNotFound.
	FindListingService(ctx context.Context, listingID, serviceID int64) (*entity.ListingService, error)

	// AddListingServices associates the given categories with a listing.
	// Adding an existing association is a no-op (idempotent per id).
	AddListingServices(ctx context.Context, listingID int64, serviceIDs []int64) error

	// RemoveListingService deletes one association, or ErrServiceNotFound.
	RemoveListingService(ctx context.Context, listingID, serviceID int64) error

	// ClearPrimaryService drops the primary flag from all of a listing's
	// associations. Step one of the primary-service swap.
	ClearPrimaryService(ctx context.Context, listingID int64) error

	// SetPrimaryService flags one association as primary, or
	// ErrServiceNotFound when the association does not exist.
	SetPrimaryService(ctx context.Context, listingID, serviceID int64) error

	// DeleteNonPrimaryServices removes every association except the primary
	// one; part of the downgrade cascade so a downgraded listing is never
	// left without its main category.
	DeleteNonPrimaryServices(ctx context.Context, listingID int64) error
}
