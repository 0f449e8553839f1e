package postgres

import (
	"context"

	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/repository"
	"homepros/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// photoRepository implements the repository.PhotoRepository interface using GORM.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{
		db: db,
	}
}

// CreatePhoto persists a new photo and fills in generated fields.
func (repo *photoRepository) CreatePhoto(ctx context.Context, photo *entity.Photo) error {
	photoM := &model.ListingPhotoModel{
		ListingID: photo.ListingID,
		PhotoURL:  photo.PhotoURL,
	}

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindPhotosByListing returns a listing's photos, newest first.
func (repo *photoRepository) FindPhotosByListing(ctx context.Context, listingID int64) ([]*entity.Photo, error) {
	var photoModels []*model.ListingPhotoModel

	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find photos by listing")
	}

	photos := make([]*entity.Photo, 0, len(photoModels))
	for _, photoM := range photoModels {
		photos = append(photos, toPhotoDomain(photoM))
	}

	return photos, nil
}

// DeletePhoto removes one photo scoped to its listing.
func (repo *photoRepository) DeletePhoto(ctx context.Context, listingID, photoID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND listing_id = ?", photoID, listingID).
		Delete(&model.ListingPhotoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete photo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// DeletePhotosByListing removes all of a listing's photos.
func (repo *photoRepository) DeletePhotosByListing(ctx context.Context, listingID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Delete(&model.ListingPhotoModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete photos by listing")
	}

	return nil
}

// toPhotoDomain maps the persistence model to a pure domain entity.
func toPhotoDomain(data *model.ListingPhotoModel) *entity.Photo {
	return &entity.Photo{
		ID:        data.ID,
		ListingID: data.ListingID,
		PhotoURL:  data.PhotoURL,
		CreatedAt: data.CreatedAt,
	}
}
