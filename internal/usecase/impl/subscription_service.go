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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	listingRepo    repository.ListingRepository
	txManager      repository.TransactionManager
	billingGateway service.BillingGateway
	qrcodeService  service.QRCodeService
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	ListingRepo    repository.ListingRepository
	TxManager      repository.TransactionManager
	BillingGateway service.BillingGateway
	QRCodeService  service.QRCodeService
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		listingRepo:    params.ListingRepo,
		txManager:      params.TxManager,
		billingGateway: params.BillingGateway,
		qrcodeService:  params.QRCodeService,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

// ReconcileSubscription converges the stored tier to the provider's live
// subscription state.
func (s *subscriptionService) ReconcileSubscription(ctx context.Context, actor usecase.Actor, listingID int64) (*usecase.SubscriptionStatus, error) {
	listing, err := authorizeOwner(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return nil, err
	}

	// Without a subscription reference there is nothing to reconcile; the
	// stored tier stands.
	if listing.StripeSubscriptionID == nil {
		return &usecase.SubscriptionStatus{Status: listing.Tier}, nil
	}

	sub, err := s.billingGateway.GetSubscription(ctx, *listing.StripeSubscriptionID)
	if err != nil {
		// The provider is not reachable; keep serving the stored state
		// rather than failing or guessing.
		s.logger.Warn("billing provider unreachable, serving stored subscription state",
			slog.Int64("listing_id", listingID),
			slog.String("error", err.Error()),
		)

		return &usecase.SubscriptionStatus{
			Status:         listing.Tier,
			SubscriptionID: *listing.StripeSubscriptionID,
			EndDate:        listing.SubscriptionEnd,
		}, nil
	}

	newTier := entity.TierForBillingStatus(sub.Status)
	if newTier != listing.Tier {
		if err := s.applyTierTransition(ctx, listing, newTier, sub); err != nil {
			return nil, err
		}
	}

	return &usecase.SubscriptionStatus{
		Status:         newTier,
		SubscriptionID: *listing.StripeSubscriptionID,
		EndDate:        sub.CurrentPeriodEnd,
	}, nil
}

// applyTierTransition persists a tier change. A downgrade additionally purges
// photos and non-primary services in the same transaction, so a failed purge
// leaves the listing on its previous tier.
func (s *subscriptionService) applyTierTransition(ctx context.Context, listing *entity.Listing, newTier entity.Tier, sub *service.BillingSubscription) error {
	listingID := listing.ID

	if newTier == entity.TierBasic {
		err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewListingRepository().UpdateSubscriptionState(ctx, listingID, newTier, sub.CurrentPeriodEnd); err != nil {
				return err
			}
			if err := factory.NewPhotoRepository().DeletePhotosByListing(ctx, listingID); err != nil {
				return err
			}

			return factory.NewCategoryRepository().DeleteNonPrimaryServices(ctx, listingID)
		})
		if err != nil {
			return domainerrors.ErrTransactionFailed.WrapMessage("downgrade cascade failed")
		}
	} else {
		if err := s.listingRepo.UpdateSubscriptionState(ctx, listingID, newTier, sub.CurrentPeriodEnd); err != nil {
			return errors.Wrap(err, "failed to update subscription state")
		}
	}

	eventType := service.EventSubscriptionUpgraded
	if newTier == entity.TierBasic {
		eventType = service.EventSubscriptionDowngraded
	}
	s.publishEvent(ctx, &service.ListingEvent{
		Type:      eventType,
		ListingID: listingID,
		Tier:      string(newTier),
	})

	s.logger.Info("subscription tier reconciled",
		slog.Int64("listing_id", listingID),
		slog.String("from", string(listing.Tier)),
		slog.String("to", string(newTier)),
	)

	return nil
}

// StartUpgradeCheckout opens a hosted checkout for the monthly pro plan.
func (s *subscriptionService) StartUpgradeCheckout(ctx context.Context, actor usecase.Actor, listingID int64, returnURL string) (string, error) {
	listing, err := authorizeOwner(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return "", err
	}

	// Create the billing customer lazily on first checkout and remember it.
	customerID := ""
	if listing.StripeCustomerID != nil {
		customerID = *listing.StripeCustomerID
	} else {
		customerID, err = s.billingGateway.CreateCustomer(ctx, actor.Email, listingID, actor.UserID)
		if err != nil {
			s.logger.Error("failed to create billing customer",
				slog.Int64("listing_id", listingID),
				slog.String("error", err.Error()),
			)

			return "", domainerrors.ErrBillingUnavailable
		}

		if err := s.listingRepo.SetBillingCustomer(ctx, listingID, customerID); err != nil {
			return "", errors.Wrap(err, "failed to store billing customer")
		}
	}

	url, err := s.billingGateway.CreateCheckoutSession(ctx, customerID, listingID, returnURL)
	if err != nil {
		s.logger.Error("failed to create checkout session",
			slog.Int64("listing_id", listingID),
			slog.String("error", err.Error()),
		)

		return "", domainerrors.ErrBillingUnavailable
	}

	return url, nil
}

// UpgradeCheckoutQR renders the checkout URL as a PNG QR code.
func (s *subscriptionService) UpgradeCheckoutQR(ctx context.Context, actor usecase.Actor, listingID int64, returnURL string) ([]byte, error) {
	url, err := s.StartUpgradeCheckout(ctx, actor, listingID, returnURL)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateCheckoutQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate checkout QR code")
	}

	return png, nil
}

func (s *subscriptionService) publishEvent(ctx context.Context, event *service.ListingEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := s.publisher.PublishListingEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish listing event",
			slog.String("event_type", event.Type),
			slog.Int64("listing_id", event.ListingID),
			slog.String("error", err.Error()),
		)
	}
}
