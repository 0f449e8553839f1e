package repository

import (
	"context"

	"homepros/internal/domain/entity"
	"homepros/internal/errors"
)

// ErrPhotoNotFound is returned when a photo is not found.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines the interface for photo-related database operations.
type PhotoRepository interface {
	// CreatePhoto persists a new photo and fills in generated fields.
	CreatePhoto(ctx context.Context, photo *entity.Photo) error

	// FindPhotosByListing returns a listing's photos, newest first.
	FindPhotosByListing(ctx context.Context, listingID int64) ([]*entity.Photo, error)

	// DeletePhoto removes one photo scoped to its listing, or ErrPhotoNotFound.
	DeletePhoto(ctx context.Context, listingID, photoID int64) error

	// DeletePhotosByListing removes all of a listing's photos; part of the
	// downgrade cascade.
	DeletePhotosByListing(ctx context.Context, listingID int64) error
}
