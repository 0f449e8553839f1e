package impl

import (
	"context"
	"log/slog"

	deliverycontext "homepros/internal/delivery/context"
	"homepros/internal/domain/entity"
	domainerrors "homepros/internal/domain/errors"
	"homepros/internal/domain/repository"
	"homepros/internal/domain/service"
	"homepros/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type listingService struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	photoRepo    repository.PhotoRepository
	txManager    repository.TransactionManager
	mediaStorage service.MediaStorage
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	CategoryRepo repository.CategoryRepository
	PhotoRepo    repository.PhotoRepository
	TxManager    repository.TransactionManager
	MediaStorage service.MediaStorage
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewListingService creates a new listing management service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		listingRepo:  params.ListingRepo,
		categoryRepo: params.CategoryRepo,
		photoRepo:    params.PhotoRepo,
		txManager:    params.TxManager,
		mediaStorage: params.MediaStorage,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// ClaimListing makes the actor the permanent owner of an unclaimed listing.
func (s *listingService) ClaimListing(ctx context.Context, actor usecase.Actor, listingID int64) error {
	if actor.UserID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := s.listingRepo.ClaimListing(ctx, listingID, actor.UserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrListingNotFound):
			return domainerrors.ErrListingNotFound
		case errors.Is(err, repository.ErrListingAlreadyClaimed):
			return domainerrors.ErrListingAlreadyClaimed
		default:
			return errors.Wrap(err, "failed to claim listing")
		}
	}

	s.publishEvent(ctx, &service.ListingEvent{
		Type:      service.EventListingClaimed,
		ListingID: listingID,
		OwnerID:   actor.UserID.String(),
	})

	return nil
}

// UpdateListing applies profile edits and the optional primary-service swap.
func (s *listingService) UpdateListing(ctx context.Context, actor usecase.Actor, listingID int64, input usecase.ProfileUpdateInput) error {
	if _, err := authorizeOwner(ctx, s.listingRepo, actor, listingID); err != nil {
		return err
	}

	update := repository.ProfileUpdate{
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}

	if input.PrimaryServiceID == nil {
		if err := s.listingRepo.UpdateProfile(ctx, listingID, update); err != nil {
			return errors.Wrap(err, "failed to update listing profile")
		}

		return nil
	}

	// The primary swap clears every flag and sets the new one inside a
	// single transaction, so no concurrent reader observes a listing with
	// zero or two primary services.
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txListingRepo := factory.NewListingRepository()
		txCategoryRepo := factory.NewCategoryRepository()

		if err := txListingRepo.UpdateProfile(ctx, listingID, update); err != nil {
			return err
		}
		if err := txCategoryRepo.ClearPrimaryService(ctx, listingID); err != nil {
			return err
		}

		return txCategoryRepo.SetPrimaryService(ctx, listingID, *input.PrimaryServiceID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return domainerrors.ErrTransactionFailed.WrapMessage("primary service swap failed")
	}

	return nil
}

// AddServices associates extra service categories with a pro listing.
func (s *listingService) AddServices(ctx context.Context, actor usecase.Actor, listingID int64, serviceIDs []int64) error {
	listing, err := authorizeOwner(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return err
	}

	if listing.Tier != entity.TierPro {
		return domainerrors.ErrProRequired
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	if err := s.categoryRepo.AddListingServices(ctx, listingID, serviceIDs); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to add listing services")
	}

	return nil
}

// RemoveService drops a non-primary service association.
func (s *listingService) RemoveService(ctx context.Context, actor usecase.Actor, listingID, serviceID int64) error {
	if _, err := authorizeOwner(ctx, s.listingRepo, actor, listingID); err != nil {
		return err
	}

	association, err := s.categoryRepo.FindListingService(ctx, listingID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to find listing service")
	}

	if association.IsPrimary {
		return domainerrors.ErrPrimaryServiceLocked
	}

	if err := s.categoryRepo.RemoveListingService(ctx, listingID, serviceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to remove listing service")
	}

	return nil
}

// AddPhoto attaches an uploaded photo to a pro listing.
func (s *listingService) AddPhoto(ctx context.Context, actor usecase.Actor, listingID int64, photoURL string) (*entity.Photo, error) {
	listing, err := authorizeOwner(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return nil, err
	}

	if listing.Tier != entity.TierPro {
		return nil, domainerrors.ErrProRequired
	}

	photo := &entity.Photo{
		ListingID: listingID,
		PhotoURL:  photoURL,
	}

	if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
		return nil, errors.Wrap(err, "failed to create photo")
	}

	return photo, nil
}

// RemovePhoto deletes a photo from the actor's listing.
func (s *listingService) RemovePhoto(ctx context.Context, actor usecase.Actor, listingID, photoID int64) error {
	if _, err := authorizeOwner(ctx, s.listingRepo, actor, listingID); err != nil {
		return err
	}

	if err := s.photoRepo.DeletePhoto(ctx, listingID, photoID); err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return domainerrors.ErrPhotoNotFound
		}

		return errors.Wrap(err, "failed to delete photo")
	}

	return nil
}

// UploadMedia stores raw bytes and returns the stable public URL.
func (s *listingService) UploadMedia(ctx context.Context, actor usecase.Actor, filename, contentType string, data []byte) (string, error) {
	if actor.UserID == uuid.Nil {
		return "", domainerrors.ErrUnauthenticated
	}

	url, err := s.mediaStorage.Upload(ctx, filename, contentType, data)
	if err != nil {
		s.logger.Error("media upload failed",
			slog.String("filename", filename),
			slog.String("error", err.Error()),
		)

		return "", domainerrors.ErrUploadFailed
	}

	return url, nil
}

// publishEvent emits a listing event; publish failures are logged, never
// surfaced to the caller.
func (s *listingService) publishEvent(ctx context.Context, event *service.ListingEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := s.publisher.PublishListingEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish listing event",
			slog.String("event_type", event.Type),
			slog.Int64("listing_id", event.ListingID),
			slog.String("error", err.Error()),
		)
	}
}
