package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table. One row per contractor business;
// rows exist before any owner claims them.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ListingModel struct {
	ID                   int64      `gorm:"primaryKey;autoIncrement"`
	Name                 string     `gorm:"type:varchar(255);not null;index"`
	Phone                string     `gorm:"type:varchar(50)"`
	Address              string     `gorm:"type:varchar(255)"`
	City                 string     `gorm:"type:varchar(100);index"`
	State                string     `gorm:"type:varchar(50)"`
	Zip                  string     `gorm:"type:varchar(10)"`
	Latitude             *float64   `gorm:"type:decimal(10,7)"`
	Longitude            *float64   `gorm:"type:decimal(10,7)"`
	Description          *string    `gorm:"type:text"`
	LogoURL              *string    `gorm:"type:varchar(512)"`
	Claimed              bool       `gorm:"not null;default:false"`
	OwnerID              *uuid.UUID `gorm:"type:uuid;index"`
	SubscriptionStatus   string     `gorm:"type:varchar(20);not null;default:'basic'"`
	StripeCustomerID     *string    `gorm:"type:varchar(255)"`
	StripeSubscriptionID *string    `gorm:"type:varchar(255)"`
	SubscriptionEndDate  *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Services []ListingServiceModel `gorm:"foreignKey:ListingID"`
	Photos   []ListingPhotoModel   `gorm:"foreignKey:ListingID"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
