package model

import "github.com/fekuna/omnipos-storefront-service/internal/section"

const (
	ProductTypeCourse  = "course"
	ProductTypeDigital = "digital"
	ProductTypeBundle  = "bundle"
)

type Product struct {
	BaseModel
	StoreID     string         `db:"store_id" json:"store_id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	ProductType string         `db:"product_type" json:"product_type"`
	Draft       bool           `db:"draft" json:"draft"` // Draft products are skipped by publish
	Order       int            `db:"sort_order" json:"order"`
	Schema      section.Schema `db:"schema" json:"schema"`
	SchemaDraft section.Schema `db:"schema_draft" json:"schema_draft"`
}
