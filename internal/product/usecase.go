package product

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, storeID, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	// DeleteProduct removes the product with its course content and renumbers
	// the remaining products.
	DeleteProduct(ctx context.Context, storeID, id string) error

	// AddCategory links the product to the named category, creating the
	// category at the end of the store's order when it does not exist.
	AddCategory(ctx context.Context, input *dto.CategoryLinkInput) (*model.Category, error)
	RemoveCategory(ctx context.Context, input *dto.CategoryLinkInput) error
	ListCategories(ctx context.Context, storeID, productID string) ([]model.Category, error)
}
