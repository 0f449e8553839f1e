package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BillingSubscription is the slice of provider subscription state the domain
// cares about: the live status string and the end of the current billing
// period (nil when the provider reports none).
type BillingSubscription struct {
	ID               string
	Status           string
	CurrentPeriodEnd *time.Time
}

// BillingGateway is the boundary to the external billing provider. The
// provider is authoritative for subscription status but not always available;
// callers on read paths must treat a failed call as "use what we have stored"
// rather than as a hard failure.
type BillingGateway interface {
	// CreateCustomer registers a billing customer for a listing owner and
	// returns the provider's opaque customer id.
	CreateCustomer(ctx context.Context, email string, listingID int64, userID uuid.UUID) (string, error)

	// CreateCheckoutSession starts a subscription checkout for the fixed
	// monthly Pro plan and returns the hosted checkout URL.
	CreateCheckoutSession(ctx context.Context, customerID string, listingID int64, returnURL string) (string, error)

	// GetSubscription retrieves live subscription state by the provider's
	// subscription id. The call is bounded by a timeout; on expiry it fails
	// like any other provider error.
	GetSubscription(ctx context.Context, subscriptionID string) (*BillingSubscription, error)
}
