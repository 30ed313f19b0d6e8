package content

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/content/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type UseCase interface {
	Navigate(ctx context.Context, storeID, itemID string) (*dto.Neighbours, error)
	Tree(ctx context.Context, storeID, productID string) ([]model.ContentItem, error)
	CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.ContentItem, error)
	DeleteItem(ctx context.Context, storeID, itemID string) error
}
