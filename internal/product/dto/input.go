package dto

type CreateProductInput struct {
	StoreID     string
	Name        string
	ProductType string
	Draft       *bool // Defaults to true
}

type UpdateProductInput struct {
	ID      string
	StoreID string
	Name    string
	Draft   *bool // Nil keeps the current value
}

// CategoryLinkInput names a category by its display name. Linking creates the
// category when the store has none by that name.
type CategoryLinkInput struct {
	StoreID   string
	ProductID string
	Name      string
}
