package model

const (
	ContentTypeSection = "section"
	ContentTypeText    = "text"
	ContentTypeFile    = "file"
	ContentTypeLink    = "link"
	ContentTypeVideo   = "video"
	ContentTypeProduct = "product"
)

var ContentTypes = []string{
	ContentTypeSection, ContentTypeText, ContentTypeFile,
	ContentTypeLink, ContentTypeVideo, ContentTypeProduct,
}

// ContentItem is one entry of a course outline. Items with a nil ParentID are
// top level; sections group the items pointing at them.
type ContentItem struct {
	BaseModel
	ProductID   string        `db:"product_id" json:"product_id"`
	ParentID    *string       `db:"parent_id" json:"parent_id"` // Nullable
	ContentType string        `db:"content_type" json:"content_type"`
	Title       string        `db:"title" json:"title"`
	Order       int           `db:"sort_order" json:"order"`
	Children    []ContentItem `db:"-" json:"children,omitempty"`
}

func (c *ContentItem) IsSection() bool {
	return c.ContentType == ContentTypeSection
}
