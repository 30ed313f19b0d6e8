package product

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/product/dto"
)

type Repository interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, storeID, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	// ListOrders locks the store's products and returns their orders.
	ListOrders(ctx context.Context, storeID string) ([]ordering.Item, error)

	IsSlugUnique(ctx context.Context, storeID, slug string) (bool, error)

	FindCategoryByName(ctx context.Context, storeID, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	// ListCategoryOrders locks the store's categories and returns their orders.
	ListCategoryOrders(ctx context.Context, storeID string) ([]ordering.Item, error)
	// LinkCategory is a no-op when the link already exists.
	LinkCategory(ctx context.Context, productID, categoryID string) error
	UnlinkCategory(ctx context.Context, productID, categoryID string) error
	// ListCategories returns the product's categories in display order.
	ListCategories(ctx context.Context, productID string) ([]model.Category, error)
}
