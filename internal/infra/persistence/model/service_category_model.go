package model

// ServiceCategoryModel mirrors the 'service_categories' table. Categories
// with no parent group under the catch-all bucket.
type ServiceCategoryModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"type:varchar(100);unique;not null"`
	ParentCategory *string `gorm:"type:varchar(100);index"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceCategoryModel) TableName() string {
	return "service_categories"
}
