package dto

type ProductFilters struct {
	StoreID     string
	ProductType string
	CategoryID  string // Only products linked to this category
	Draft       *bool  // Nil lists both
	Search      string // Matches name, case-insensitive
	Page        int
	PageSize    int
}
