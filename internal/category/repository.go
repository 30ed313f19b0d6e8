package category

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/category/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
)

type Repository interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, storeID, id string) (*model.Category, error)
	// FindAll lists categories in display order with the unpaged total.
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	Update(ctx context.Context, category *model.Category) error
	// ListOrders locks the store's categories and returns their orders.
	ListOrders(ctx context.Context, storeID string) ([]ordering.Item, error)
}
