package page

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/page/dto"
)

type Repository interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	Create(ctx context.Context, page *model.Page) error
	FindByID(ctx context.Context, storeID, id string) (*model.Page, error)
	// FindAll lists pages by title with the unpaged total.
	FindAll(ctx context.Context, filters *dto.PageFilters) ([]model.Page, int, error)
	// Update writes slug, title and the published flag. Schemas are saved
	// through the builder.
	Update(ctx context.Context, page *model.Page) error
	Delete(ctx context.Context, storeID, id string) error
}
