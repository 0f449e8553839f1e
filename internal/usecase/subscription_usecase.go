package usecase

import (
	"context"
	"time"

	"homepros/internal/domain/entity"
)

// SubscriptionStatus is the reconciled billing state reported back to the
// owner dashboard.
type SubscriptionStatus struct {
	// Status is the tier after reconciliation.
	Status entity.Tier `json:"status"`

	// SubscriptionID is the provider's subscription reference; empty when
	// the listing has never checked out.
	SubscriptionID string `json:"subscriptionId,omitempty"`

	// EndDate is the end of the current billing period as last reported by
	// the provider; nil when unknown.
	EndDate *time.Time `json:"endDate,omitempty"`
}

// SubscriptionUsecase defines the billing flows of a listing.
type SubscriptionUsecase interface {
	// ReconcileSubscription pulls live provider state and converges the
	// stored tier to it, applying the downgrade cascade when a pro listing
	// falls back to basic. When the provider is unreachable the stored
	// state is returned unchanged.
	ReconcileSubscription(ctx context.Context, actor Actor, listingID int64) (*SubscriptionStatus, error)

	// StartUpgradeCheckout opens a hosted checkout for the monthly pro plan
	// and returns its URL, creating the billing customer on first use.
	StartUpgradeCheckout(ctx context.Context, actor Actor, listingID int64, returnURL string) (string, error)

	// UpgradeCheckoutQR renders the checkout URL as a PNG QR code.
	UpgradeCheckoutQR(ctx context.Context, actor Actor, listingID int64, returnURL string) ([]byte, error)
}
