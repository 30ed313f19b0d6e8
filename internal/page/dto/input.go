package dto

type CreatePageInput struct {
	StoreID   string
	Slug      string
	Title     *string
	Published *bool // Defaults to false
}

type UpdatePageInput struct {
	ID        string
	StoreID   string
	Slug      string
	Title     *string
	Published *bool // Nil keeps the current value
}
