package dto

type CategoryFilters struct {
	StoreID  string
	Search   string // Matches name, case-insensitive
	Page     int
	PageSize int
}
