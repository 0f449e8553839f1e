package postgres

import (
	"context"

	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/repository"
	"homepros/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository implements the repository.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// ListCategories returns all service categories ordered by parent, then name.
func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	var categoryModels []*model.ServiceCategoryModel

	if err := repo.db.WithContext(ctx).
		Order("parent_category NULLS LAST, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service categories")
	}

	categories := make([]*entity.ServiceCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindListingServices returns a listing's service associations joined with
// category names, primary first, then alphabetically.
func (repo *categoryRepository) FindListingServices(ctx context.Context, listingID int64) ([]*entity.ListingServiceView, error) {
	var views []*entity.ListingServiceView

	if err := repo.db.WithContext(ctx).
		Table("listing_services").
		Select("listing_services.service_id, service_categories.name, listing_services.is_primary").
		Joins("JOIN service_categories ON service_categories.id = listing_services.service_id").
		Where("listing_services.listing_id = ?", listingID).
		Order("listing_services.is_primary DESC, service_categories.name ASC").
		Scan(&views).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listing services")
	}

	return views, nil
}

// FindListingService retrieves one association, or ErrServiceNotFound.
func (repo *categoryRepository) FindListingService(ctx context.Context, listingID, serviceID int64) (*entity.ListingService, error) {
	var serviceM model.ListingServiceModel

	if err := repo.db.WithContext(ctx).
		Where("listing_id = ? AND service_id = ?", listingID, serviceID).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing service")
	}

	return &entity.ListingService{
		ListingID: serviceM.ListingID,
		ServiceID: serviceM.ServiceID,
		IsPrimary: serviceM.IsPrimary,
	}, nil
}

// AddListingServices associates the given categories with a listing.
// Existing associations are left untouched so the operation is idempotent.
func (repo *categoryRepository) AddListingServices(ctx context.Context, listingID int64, serviceIDs []int64) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	rows := make([]model.ListingServiceModel, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		rows = append(rows, model.ListingServiceModel{
			ListingID: listingID,
			ServiceID: serviceID,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add listing services")
	}

	return nil
}

// RemoveListingService deletes one association, or ErrServiceNotFound.
func (repo *categoryRepository) RemoveListingService(ctx context.Context, listingID, serviceID int64) error {
	result := repo.db.WithContext(ctx).
		Where("listing_id = ? AND service_id = ?", listingID, serviceID).
		Delete(&model.ListingServiceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove listing service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// ClearPrimaryService drops the primary flag from all of a listing's associations.
func (repo *categoryRepository) ClearPrimaryService(ctx context.Context, listingID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ListingServiceModel{}).
		Where("listing_id = ?", listingID).
		Update("is_primary", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear primary service")
	}

	return nil
}

// SetPrimaryService flags one association as primary.
func (repo *categoryRepository) SetPrimaryService(ctx context.Context, listingID, serviceID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingServiceModel{}).
		Where("listing_id = ? AND service_id = ?", listingID, serviceID).
		Update("is_primary", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set primary service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// DeleteNonPrimaryServices removes every association except the primary one.
func (repo *categoryRepository) DeleteNonPrimaryServices(ctx context.Context, listingID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("listing_id = ? AND is_primary = ?", listingID, false).
		Delete(&model.ListingServiceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete non-primary services")
	}

	return nil
}

// toCategoryDomain maps the persistence model to a pure domain entity.
func toCategoryDomain(data *model.ServiceCategoryModel) *entity.ServiceCategory {
	return &entity.ServiceCategory{
		ID:             data.ID,
		Name:           data.Name,
		ParentCategory: data.ParentCategory,
	}
}
