// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"homepros/internal/domain/entity"
	"homepros/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingAlreadyClaimed is returned when a claim races against, or
	// arrives after, another successful claim.
	ErrListingAlreadyClaimed = errors.New("listing already claimed")
)

// SearchFilter narrows a directory search. At least one of the two sets must
// be non-empty; enforcing that is the caller's job.
type SearchFilter struct {
	// ServiceIDs restricts results to listings associated with any of these
	// service categories. Empty means no service filter.
	ServiceIDs []int64

	// Cities restricts results to listings in any of these cities,
	// matched case-insensitively. Empty means no city filter.
	Cities []string
}

// ProfileUpdate carries the optional owner-editable listing fields.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Description *string
	LogoURL     *string
}

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// FindListingByID retrieves a listing by its identifier.
	FindListingByID(ctx context.Context, id int64) (*entity.Listing, error)

	// SearchListings returns the deduplicated listings matching the filter,
	// ordered by display name ascending, each annotated with its aggregated
	// service names. Listings never appear twice even when they match
	// several filter values.
	SearchListings(ctx context.Context, filter SearchFilter) ([]*entity.ListingSummary, error)

	// ClaimListing atomically assigns ownership of an unclaimed listing.
	// The update is guarded on the claimed flag so concurrent claims are
	// serialized by the store: exactly one writer succeeds, the rest get
	// ErrListingAlreadyClaimed.
	ClaimListing(ctx context.Context, id int64, ownerID uuid.UUID) error

	// UpdateProfile applies the non-nil fields of the update to a listing.
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error

	// SetBillingCustomer stores the billing-customer reference created for
	// the listing on first checkout.
	SetBillingCustomer(ctx context.Context, id int64, customerID string) error

	// UpdateSubscriptionState persists a tier transition together with the
	// new subscription-end timestamp as one atomic update.
	UpdateSubscriptionState(ctx context.Context, id int64, tier entity.Tier, subscriptionEnd *time.Time) error
}
