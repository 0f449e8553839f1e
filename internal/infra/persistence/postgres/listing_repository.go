// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/repository"
	"homepros/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(ctx context.Context, id int64) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// SearchListings returns the distinct listings matching the filter ordered by
// name, each annotated with its service names. The listings and their service
// names are fetched in two queries so a listing matching several filter
// values still appears exactly once.
func (repo *listingRepository) SearchListings(ctx context.Context, filter repository.SearchFilter) ([]*entity.ListingSummary, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Distinct("listings.*")

	if len(filter.ServiceIDs) > 0 {
		query = query.
			Joins("JOIN listing_services ON listing_services.listing_id = listings.id").
			Where("listing_services.service_id IN ?", filter.ServiceIDs)
	}
	if len(filter.Cities) > 0 {
		lowered := make([]string, 0, len(filter.Cities))
		for _, city := range filter.Cities {
			lowered = append(lowered, normalizeCity(city))
		}
		query = query.Where("LOWER(listings.city) IN ?", lowered)
	}

	var listingModels []*model.ListingModel
	if err := query.Order("listings.name ASC").Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	if len(listingModels) == 0 {
		return []*entity.ListingSummary{}, nil
	}

	serviceNames, err := repo.fetchServiceNames(ctx, listingModels)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.ListingSummary, 0, len(listingModels))
	for _, listingM := range listingModels {
		summary := toListingSummary(listingM)
		summary.ServiceNames = serviceNames[listingM.ID]
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// fetchServiceNames batch-loads the service names of all matched listings in
// one query to avoid per-listing lookups.
func (repo *listingRepository) fetchServiceNames(ctx context.Context, listingModels []*model.ListingModel) (map[int64][]string, error) {
	listingIDs := make([]int64, 0, len(listingModels))
	for _, listingM := range listingModels {
		listingIDs = append(listingIDs, listingM.ID)
	}

	type listingServiceName struct {
		ListingID int64
		Name      string
	}

	var rows []listingServiceName
	if err := repo.db.WithContext(ctx).
		Table("listing_services").
		Select("listing_services.listing_id, service_categories.name").
		Joins("JOIN service_categories ON service_categories.id = listing_services.service_id").
		Where("listing_services.listing_id IN ?", listingIDs).
		Order("listing_services.listing_id, service_categories.name").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load listing service names")
	}

	serviceNames := make(map[int64][]string, len(listingIDs))
	for _, row := range rows {
		serviceNames[row.ListingID] = append(serviceNames[row.ListingID], row.Name)
	}

	return serviceNames, nil
}

// ClaimListing atomically assigns ownership of an unclaimed listing. The
// claimed flag is part of the WHERE clause so concurrent claims serialize in
// the database: the loser sees zero affected rows.
func (repo *listingRepository) ClaimListing(ctx context.Context, id int64, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND claimed = ?", id, false).
		Updates(map[string]any{
			"claimed":  true,
			"owner_id": ownerID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim listing")
	}

	if result.RowsAffected == 0 {
		// Distinguish a race from a missing row.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ListingModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check listing existence")
		}
		if count == 0 {
			return repository.ErrListingNotFound
		}

		return repository.ErrListingAlreadyClaimed
	}

	return nil
}

// UpdateProfile applies the non-nil fields of the update to a listing.
func (repo *listingRepository) UpdateProfile(ctx context.Context, id int64, update repository.ProfileUpdate) error {
	fields := map[string]any{}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.LogoURL != nil {
		fields["logo_url"] = *update.LogoURL
	}
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// normalizeCity lowercases and trims a city name for case-insensitive matching.
func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// SetBillingCustomer stores the billing-customer reference on a listing.
func (repo *listingRepository) SetBillingCustomer(ctx context.Context, id int64, customerID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Update("stripe_customer_id", customerID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set billing customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// UpdateSubscriptionState persists a tier transition and the reported
// subscription end in one statement.
func (repo *listingRepository) UpdateSubscriptionState(ctx context.Context, id int64, tier entity.Tier, subscriptionEnd *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"subscription_status":   string(tier),
			"subscription_end_date": subscriptionEnd,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// toListingDomain maps the persistence model to a pure domain entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	description := ""
	if data.Description != nil {
		description = *data.Description
	}

	return &entity.Listing{
		ID:                   data.ID,
		Name:                 data.Name,
		Phone:                data.Phone,
		Address:              data.Address,
		City:                 data.City,
		State:                data.State,
		Zip:                  data.Zip,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Description:          description,
		LogoURL:              data.LogoURL,
		Claimed:              data.Claimed,
		OwnerID:              data.OwnerID,
		Tier:                 entity.NormalizeTier(data.SubscriptionStatus),
		StripeCustomerID:     data.StripeCustomerID,
		StripeSubscriptionID: data.StripeSubscriptionID,
		SubscriptionEnd:      data.SubscriptionEndDate,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// toListingSummary maps the persistence model to the search read model.
// ServiceNames is filled in by the caller.
func toListingSummary(data *model.ListingModel) *entity.ListingSummary {
	description := ""
	if data.Description != nil {
		description = *data.Description
	}

	return &entity.ListingSummary{
		ID:          data.ID,
		Name:        data.Name,
		Phone:       data.Phone,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		Zip:         data.Zip,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Description: description,
		LogoURL:     data.LogoURL,
		Tier:        entity.NormalizeTier(data.SubscriptionStatus),
	}
}
