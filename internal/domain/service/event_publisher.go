package service

import (
	"context"
)

// Listing event types published on state transitions.
const (
	EventListingClaimed         = "listing.claimed"
	EventSubscriptionUpgraded   = "subscription.upgraded"
	EventSubscriptionDowngraded = "subscription.downgraded"
)

// ListingEvent represents a listing state transition for downstream consumers
// (e.g. a future push-based billing notifier or an indexing worker).
type ListingEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	ListingID int64  `json:"listing_id"`
	Tier      string `json:"tier,omitempty"`
	OwnerID   string `json:"owner_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a listing event for async processing
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
