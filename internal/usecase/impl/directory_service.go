// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"log/slog"

	"homepros/config"
	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/geo"
	"homepros/internal/domain/repository"
	"homepros/internal/domain/service"
	"homepros/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type directoryService struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	photoRepo    repository.PhotoRepository
	geocoder     service.Geocoder
	config       *config.Config
	logger       *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	CategoryRepo repository.CategoryRepository
	PhotoRepo    repository.PhotoRepository
	Geocoder     service.Geocoder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		listingRepo:  params.ListingRepo,
		categoryRepo: params.CategoryRepo,
		photoRepo:    params.PhotoRepo,
		geocoder:     params.Geocoder,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// SearchListings returns the listings matching the query, ordered by name.
func (s *directoryService) SearchListings(ctx context.Context, query usecase.SearchQuery) ([]*entity.ListingSummary, error) {
	if len(query.ServiceIDs) == 0 && len(query.Cities) == 0 {
		return nil, domainerrors.ErrSearchFilterRequired
	}

	// Resolve the zip before touching the store so an unserviceable zip
	// costs no query.
	var origin orb.Point
	radiusSearch := query.Zip != ""
	if radiusSearch {
		point, err := s.geocoder.Resolve(query.Zip)
		if err != nil {
			if errors.Is(err, service.ErrUnknownZip) {
				return nil, domainerrors.ErrOutsideServiceArea
			}

			return nil, errors.Wrap(err, "failed to resolve zip")
		}
		origin = point
	}

	summaries, err := s.listingRepo.SearchListings(ctx, repository.SearchFilter{
		ServiceIDs: query.ServiceIDs,
		Cities:     query.Cities,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	if !radiusSearch {
		return summaries, nil
	}

	radius := s.config.Search.DefaultRadiusMiles
	if query.RadiusMiles != nil {
		radius = *query.RadiusMiles
	}

	// The radius filter runs in-process over the already name-ordered rows,
	// so the ordering survives. Listings without coordinates never match.
	filtered := make([]*entity.ListingSummary, 0, len(summaries))
	for _, summary := range summaries {
		if !summary.HasCoordinate() {
			continue
		}
		point := orb.Point{*summary.Longitude, *summary.Latitude}
		if geo.DistanceMiles(origin, point) <= radius {
			filtered = append(filtered, summary)
		}
	}

	return filtered, nil
}

// ListServiceCategories returns the catalog, grouped by parent category.
func (s *directoryService) ListServiceCategories(ctx context.Context) (*usecase.ServiceCatalog, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service categories")
	}

	grouped := make(map[string][]*entity.ServiceCategory)
	for _, category := range categories {
		group := category.Group()
		grouped[group] = append(grouped[group], category)
	}

	return &usecase.ServiceCatalog{
		Services: categories,
		Grouped:  grouped,
	}, nil
}

// GetListing returns one listing with its services and, for pro listings,
// its photos.
func (s *directoryService) GetListing(ctx context.Context, id int64) (*entity.ListingDetail, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	services, err := s.categoryRepo.FindListingServices(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listing services")
	}

	// Photos are a pro feature; basic listings always present an empty set.
	photos := []*entity.Photo{}
	if listing.Tier == entity.TierPro {
		photos, err = s.photoRepo.FindPhotosByListing(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find listing photos")
		}
	}

	return &entity.ListingDetail{
		Listing:  listing,
		Services: services,
		Photos:   photos,
	}, nil
}
