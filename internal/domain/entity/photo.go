package entity

import "time"

// Photo is a gallery image owned by a pro listing. Photos exist only while
// the listing stays on the pro tier; the downgrade cascade deletes them.
type Photo struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	PhotoURL  string    `json:"photo_url"` // Stable URL returned by the media store.
	CreatedAt time.Time `json:"created_at"`
}
