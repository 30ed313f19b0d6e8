package dto

type PageFilters struct {
	StoreID   string
	Search    string // Matches slug or title, case-insensitive
	Published *bool  // Nil lists both
	Page      int
	PageSize  int
}
