package impl

import (
	"context"

	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/repository"
	"homepros/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authorizeOwner loads a listing and enforces the management guard order:
// authenticated first, then existence, then ownership. Tier checks are the
// caller's concern.
func authorizeOwner(ctx context.Context, listingRepo repository.ListingRepository, actor usecase.Actor, listingID int64) (*entity.Listing, error) {
	if actor.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	listing, err := listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if !listing.OwnedBy(actor.UserID) {
		return nil, domainerrors.ErrNotListingOwner
	}

	return listing, nil
}
