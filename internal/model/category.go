package model

type Category struct {
	BaseModel
	StoreID     string  `db:"store_id" json:"store_id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Order       int     `db:"sort_order" json:"order"`
}
