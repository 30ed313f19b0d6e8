package dto

import "github.com/fekuna/omnipos-storefront-service/internal/model"

// Neighbours holds the items played before and after a content item. Either
// may be nil at the edges of the course.
type Neighbours struct {
	Previous *model.ContentItem `json:"previous"`
	Next     *model.ContentItem `json:"next"`
}
