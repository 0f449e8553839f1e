package model

import "time"

// ListingPhotoModel mirrors the 'listing_photos' table. Photos are a pro-tier
// feature and are purged on downgrade.
type ListingPhotoModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ListingID int64  `gorm:"not null;index"`
	PhotoURL  string `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingPhotoModel) TableName() string {
	return "listing_photos"
}
