package content

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
)

type Repository interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	// FindProduct returns the product when it belongs to storeID.
	FindProduct(ctx context.Context, storeID, productID string) (*model.Product, error)
	FindItem(ctx context.Context, storeID, id string) (*model.ContentItem, error)
	ListByProduct(ctx context.Context, productID string) ([]model.ContentItem, error)
	// ListSiblings locks and returns the (product, parent) group.
	ListSiblings(ctx context.Context, productID string, parentID *string) ([]ordering.Item, error)
	Create(ctx context.Context, item *model.ContentItem) error
}
