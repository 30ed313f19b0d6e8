package dto

type CreateItemInput struct {
	StoreID     string
	ProductID   string
	ParentID    *string // Nil creates a top-level item
	ContentType string
	Title       string
}
