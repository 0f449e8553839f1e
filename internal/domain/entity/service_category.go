package entity

// ServiceCategory is a globally shared service category (e.g. "Plumbing").
// Categories are not owned by any listing.
type ServiceCategory struct {
	ID             int64   `json:"id"`              // Identifier referenced by listing associations.
	Name           string  `json:"name"`            // Display name of the category.
	ParentCategory *string `json:"parent_category"` // Grouping label; nil parents are displayed under a catch-all group.
}

// CatchAllCategory is the display group for categories without a parent.
const CatchAllCategory = "Other"

// Group returns the display group for the category.
func (s *ServiceCategory) Group() string {
	if s.ParentCategory == nil || *s.ParentCategory == "" {
		return CatchAllCategory
	}

	return *s.ParentCategory
}

// ListingService is the association between a listing and a service category.
// At most one association per listing carries the primary flag.
type ListingService struct {
	ListingID int64 `json:"listing_id"`
	ServiceID int64 `json:"service_id"`
	IsPrimary bool  `json:"is_primary"`
}

// ListingServiceView is the read model for a listing's service associations,
// joined with the category name for display.
type ListingServiceView struct {
	ServiceID int64  `json:"id"`
	Name      string `json:"name"`
	IsPrimary bool   `json:"is_primary"`
}
