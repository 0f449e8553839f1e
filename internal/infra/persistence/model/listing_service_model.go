package model

// ListingServiceModel mirrors the 'listing_services' join table. At most one
// row per listing carries is_primary=true.
type ListingServiceModel struct {
	ListingID int64 `gorm:"primaryKey;autoIncrement:false"`
	ServiceID int64 `gorm:"primaryKey;autoIncrement:false"`
	IsPrimary bool  `gorm:"not null;default:false"`

	Service *ServiceCategoryModel `gorm:"foreignKey:ServiceID"`
}

// TableName explicitly sets the table name for GORM.
func (ListingServiceModel) TableName() string {
	return "listing_services"
}
