// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing is the core entity of the directory: one contractor's entry.
// A listing starts out unclaimed (imported from seed data, no owner); the first
// authenticated user to claim it becomes its permanent owner.
type Listing struct {
	ID                   int64      `json:"id"`                        // Directory-wide identifier for the listing.
	Name                 string     `json:"name"`                      // The contractor's display name.
	Phone                string     `json:"phone"`                     // Public contact phone number.
	Address              string     `json:"address"`                   // Street address.
	City                 string     `json:"city"`                      // City, matched case-insensitively by search.
	State                string     `json:"state"`                     // Two-letter state code.
	Zip                  string     `json:"zip"`                       // 5-character postal code.
	Latitude             *float64   `json:"lat"`                       // Geographic latitude; nil while unresolved.
	Longitude            *float64   `json:"lng"`                       // Geographic longitude; nil while unresolved.
	Description          string     `json:"description"`               // Free-text description shown on the listing page.
	LogoURL              *string    `json:"logo_url"`                  // Stable media URL of the logo; nil when none uploaded.
	Claimed              bool       `json:"claimed"`                   // True once an owner has claimed the listing.
	OwnerID              *uuid.UUID `json:"owner_id,omitempty"`        // The claiming user; nil iff Claimed is false.
	Tier                 Tier       `json:"tier"`                      // Current subscription tier (basic or pro).
	StripeCustomerID     *string    `json:"-"`                         // Opaque billing-customer reference; created lazily on first checkout.
	StripeSubscriptionID *string    `json:"-"`                         // Opaque billing-subscription reference; nil until a subscription exists.
	SubscriptionEnd      *time.Time `json:"subscription_end"`          // End of the current billing period, as last reported by the provider.
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// HasCoordinate reports whether the listing can participate in radius search.
func (l *Listing) HasCoordinate() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// OwnedBy reports whether userID is the listing's owner.
func (l *Listing) OwnedBy(userID uuid.UUID) bool {
	return l.OwnerID != nil && *l.OwnerID == userID
}

// ListingSummary is the read model returned by directory search: the public
// listing fields plus the deduplicated names of its associated services.
type ListingSummary struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Latitude     *float64 `json:"lat"`
	Longitude    *float64 `json:"lng"`
	Description  string   `json:"description"`
	LogoURL      *string  `json:"logo_url"`
	Tier         Tier     `json:"tier"`
	ServiceNames []string `json:"services"`
}

// HasCoordinate reports whether the summary carries a usable coordinate.
func (l *ListingSummary) HasCoordinate() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// ListingDetail bundles a listing with its service associations and photos
// for the public listing page. Photos are populated only for pro listings.
type ListingDetail struct {
	Listing  *Listing              `json:"listing"`
	Services []*ListingServiceView `json:"services"`
	Photos   []*Photo              `json:"photos"`
}
