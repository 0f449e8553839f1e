// Package usecase defines the application-level interfaces and their
// input/output types.
package usecase

import (
	"context"

	"homepros/internal/domain/entity"
)

// SearchQuery carries the directory search parameters. At least one of
// ServiceIDs or Cities must be non-empty.
type SearchQuery struct {
	// ServiceIDs filters by service category; empty means no service filter.
	ServiceIDs []int64

	// Cities filters by city name, case-insensitively; empty means no
	// city filter.
	Cities []string

	// Zip, when set, restricts results to listings within RadiusMiles of
	// the zip's centroid. Listings without coordinates are excluded.
	Zip string

	// RadiusMiles overrides the configured default radius. Nil uses the
	// default; it is ignored when Zip is empty.
	RadiusMiles *float64
}

// ServiceCatalog is the full category list plus the same categories grouped
// by parent, with parentless ones under the catch-all bucket.
type ServiceCatalog struct {
	Services []*entity.ServiceCategory            `json:"services"`
	Grouped  map[string][]*entity.ServiceCategory `json:"grouped"`
}

// DirectoryUsecase defines the public, read-only directory operations.
type DirectoryUsecase interface {
	// SearchListings returns the listings matching the query, ordered by
	// name. A query with neither service nor city filter is rejected; an
	// unknown zip is rejected without touching the store.
	SearchListings(ctx context.Context, query SearchQuery) ([]*entity.ListingSummary, error)

	// ListServiceCategories returns the service catalog.
	ListServiceCategories(ctx context.Context) (*ServiceCatalog, error)

	// GetListing returns one listing with its services, and its photos when
	// the listing is on the pro tier.
	GetListing(ctx context.Context, id int64) (*entity.ListingDetail, error)
}
