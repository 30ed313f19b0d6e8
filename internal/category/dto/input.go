package dto

type CreateCategoryInput struct {
	StoreID     string
	Name        string
	Description *string
}

type UpdateCategoryInput struct {
	ID          string
	StoreID     string
	Name        string
	Description *string
}
