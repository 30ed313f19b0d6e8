package page

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/page/dto"
)

type UseCase interface {
	CreatePage(ctx context.Context, input *dto.CreatePageInput) (*model.Page, error)
	GetPage(ctx context.Context, storeID, id string) (*model.Page, error)
	ListPages(ctx context.Context, filters *dto.PageFilters) ([]model.Page, int, error)
	UpdatePage(ctx context.Context, input *dto.UpdatePageInput) (*model.Page, error)
	DeletePage(ctx context.Context, storeID, id string) error
}
