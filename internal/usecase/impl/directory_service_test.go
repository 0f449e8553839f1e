package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homepros/config"
	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/repository"
	"homepros/internal/domain/service"
	mockRepo "homepros/internal/mocks/repository"
	mockSvc "homepros/internal/mocks/service"
	"homepros/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directoryServiceFixtures struct {
	service      usecase.DirectoryUsecase
	listingRepo  *mockRepo.MockListingRepository
	categoryRepo *mockRepo.MockCategoryRepository
	photoRepo    *mockRepo.MockPhotoRepository
	geocoder     *mockSvc.MockGeocoder
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	listingRepo := mockRepo.NewMockListingRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	photoRepo := mockRepo.NewMockPhotoRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	cfg := &config.Config{
		Search: &config.SearchConfig{DefaultRadiusMiles: 35},
	}

	svc := NewDirectoryService(DirectoryServiceParams{
		ListingRepo:  listingRepo,
		CategoryRepo: categoryRepo,
		PhotoRepo:    photoRepo,
		Geocoder:     geocoder,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return directoryServiceFixtures{
		service:      svc,
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		photoRepo:    photoRepo,
		geocoder:     geocoder,
	}
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func TestDirectoryService_SearchListings_FilterRequired(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	results, err := fx.service.SearchListings(ctx, usecase.SearchQuery{Zip: "64601"})
	assert.Nil(t, results)
	assert.Equal(t, domainerrors.ErrSearchFilterRequired, err)
}

func TestDirectoryService_SearchListings_UnknownZip(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		Resolve("99999").
		Return(orb.Point{}, service.ErrUnknownZip)

	// No SearchListings expectation: an unserviceable zip must fail before
	// any store query runs.
	results, err := fx.service.SearchListings(ctx, usecase.SearchQuery{
		ServiceIDs: []int64{1},
		Zip:        "99999",
	})
	assert.Nil(t, results)
	assert.Equal(t, domainerrors.ErrOutsideServiceArea, err)
	fx.listingRepo.AssertNotCalled(t, "SearchListings")
}

func TestDirectoryService_SearchListings_RadiusFilter(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	chillicothe := orb.Point{-93.5527, 39.7953}

	fx.geocoder.EXPECT().
		Resolve("64601").
		Return(chillicothe, nil)

	summaries := []*entity.ListingSummary{
		{
			ID:        1,
			Name:      "Ace Plumbing",
			Latitude:  floatPtr(39.7953),
			Longitude: floatPtr(-93.5527),
		},
		{
			// Hannibal, roughly 120 miles east of Chillicothe.
			ID:        2,
			Name:      "Hannibal Heating",
			Latitude:  floatPtr(39.7084),
			Longitude: floatPtr(-91.3585),
		},
		{
			ID:   3,
			Name: "No Coordinates Co",
		},
	}

	fx.listingRepo.EXPECT().
		SearchListings(ctx, repository.SearchFilter{ServiceIDs: []int64{1}}).
		Return(summaries, nil)

	results, err := fx.service.SearchListings(ctx, usecase.SearchQuery{
		ServiceIDs: []int64{1},
		Zip:        "64601",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].ID)
}

func TestDirectoryService_SearchListings_RadiusOverride(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	chillicothe := orb.Point{-93.5527, 39.7953}

	fx.geocoder.EXPECT().
		Resolve("64601").
		Return(chillicothe, nil)

	summaries := []*entity.ListingSummary{
		{
			ID:        1,
			Name:      "Ace Plumbing",
			Latitude:  floatPtr(39.7953),
			Longitude: floatPtr(-93.5527),
		},
		{
			ID:        2,
			Name:      "Hannibal Heating",
			Latitude:  floatPtr(39.7084),
			Longitude: floatPtr(-91.3585),
		},
	}

	fx.listingRepo.EXPECT().
		SearchListings(ctx, repository.SearchFilter{ServiceIDs: []int64{1}}).
		Return(summaries, nil)

	results, err := fx.service.SearchListings(ctx, usecase.SearchQuery{
		ServiceIDs:  []int64{1},
		Zip:         "64601",
		RadiusMiles: floatPtr(200),
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDirectoryService_SearchListings_NoZipPassthrough(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	summaries := []*entity.ListingSummary{
		{ID: 1, Name: "Ace Plumbing"},
		{ID: 3, Name: "No Coordinates Co"},
	}

	fx.listingRepo.EXPECT().
		SearchListings(ctx, repository.SearchFilter{Cities: []string{"Chillicothe"}}).
		Return(summaries, nil)

	results, err := fx.service.SearchListings(ctx, usecase.SearchQuery{
		Cities: []string{"Chillicothe"},
	})
	require.NoError(t, err)
	assert.Equal(t, summaries, results)
	fx.geocoder.AssertNotCalled(t, "Resolve")
}

func TestDirectoryService_SearchListings_RepoError(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.listingRepo.EXPECT().
		SearchListings(ctx, repository.SearchFilter{ServiceIDs: []int64{7}}).
		Return(nil, errors.New("database error"))

	results, err := fx.service.SearchListings(ctx, usecase.SearchQuery{ServiceIDs: []int64{7}})
	assert.Nil(t, results)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search listings")
}

func TestDirectoryService_ListServiceCategories_Grouped(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	categories := []*entity.ServiceCategory{
		{ID: 1, Name: "Drain Cleaning", ParentCategory: strPtr("Plumbing")},
		{ID: 2, Name: "Water Heaters", ParentCategory: strPtr("Plumbing")},
		{ID: 3, Name: "Junk Removal"},
	}

	fx.categoryRepo.EXPECT().
		ListCategories(ctx).
		Return(categories, nil)

	catalog, err := fx.service.ListServiceCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, catalog.Services)
	assert.Len(t, catalog.Grouped["Plumbing"], 2)
	assert.Len(t, catalog.Grouped[entity.CatchAllCategory], 1)
}

func TestDirectoryService_GetListing_ProIncludesPhotos(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 5, Name: "Ace Plumbing", Tier: entity.TierPro}
	services := []*entity.ListingServiceView{
		{ServiceID: 1, Name: "Drain Cleaning", IsPrimary: true},
	}
	photos := []*entity.Photo{
		{ID: 10, ListingID: 5, PhotoURL: "https://cdn.example.com/p/10.jpg"},
	}

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(listing, nil)
	fx.categoryRepo.EXPECT().
		FindListingServices(ctx, int64(5)).
		Return(services, nil)
	fx.photoRepo.EXPECT().
		FindPhotosByListing(ctx, int64(5)).
		Return(photos, nil)

	detail, err := fx.service.GetListing(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, listing, detail.Listing)
	assert.Equal(t, services, detail.Services)
	assert.Equal(t, photos, detail.Photos)
}

func TestDirectoryService_GetListing_BasicHidesPhotos(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: 5, Name: "Ace Plumbing", Tier: entity.TierBasic}

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(5)).
		Return(listing, nil)
	fx.categoryRepo.EXPECT().
		FindListingServices(ctx, int64(5)).
		Return([]*entity.ListingServiceView{}, nil)

	detail, err := fx.service.GetListing(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, detail.Photos)
	fx.photoRepo.AssertNotCalled(t, "FindPhotosByListing")
}

func TestDirectoryService_GetListing_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.listingRepo.EXPECT().
		FindListingByID(ctx, int64(404)).
		Return(nil, repository.ErrListingNotFound)

	detail, err := fx.service.GetListing(ctx, 404)
	assert.Nil(t, detail)
	assert.Equal(t, domainerrors.ErrListingNotFound, err)
}
