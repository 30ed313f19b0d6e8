package model

import "github.com/fekuna/omnipos-storefront-service/internal/section"

type Page struct {
	BaseModel
	StoreID     string         `db:"store_id" json:"store_id"`
	Slug        string         `db:"slug" json:"slug"`
	Title       *string        `db:"title" json:"title"`
	Schema      section.Schema `db:"schema" json:"schema"`
	SchemaDraft section.Schema `db:"schema_draft" json:"schema_draft"`
	Published   bool           `db:"published" json:"published"`
}
