package model

import "github.com/fekuna/omnipos-storefront-service/internal/section"

// Store is a tenant. Its own schema backs the home page.
type Store struct {
	BaseModel
	Name        string         `db:"name" json:"name"`
	Schema      section.Schema `db:"schema" json:"schema"`
	SchemaDraft section.Schema `db:"schema_draft" json:"schema_draft"`
}
