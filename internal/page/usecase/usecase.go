package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/page"
	"github.com/fekuna/omnipos-storefront-service/internal/page/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/product"
	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type pageUseCase struct {
	repo   page.Repository
	lock   *tenant.StoreLock
	logger logger.ZapLogger
}

func NewPageUseCase(repo page.Repository, lock *tenant.StoreLock, log logger.ZapLogger) page.UseCase {
	return &pageUseCase{
		repo:   repo,
		lock:   lock,
		logger: log,
	}
}

func normalizeSlug(raw string) (string, error) {
	slug := product.Slugify(raw)
	if slug == "" {
		return "", apperror.Validation("page slug is required")
	}
	return slug, nil
}

// normalizeTitle drops blank titles so they are stored as NULL.
func normalizeTitle(title *string) *string {
	if title == nil {
		return nil
	}
	t := strings.TrimSpace(*title)
	if t == "" {
		return nil
	}
	return &t
}

func (uc *pageUseCase) CreatePage(ctx context.Context, input *dto.CreatePageInput) (*model.Page, error) {
	slug, err := normalizeSlug(input.Slug)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Page{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		StoreID:     input.StoreID,
		Slug:        slug,
		Title:       normalizeTitle(input.Title),
		Schema:      section.Schema{},
		SchemaDraft: section.Schema{},
	}
	if input.Published != nil {
		p.Published = *input.Published
	}

	err = uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.Create(ctx, p)
	})
	if err != nil {
		uc.logger.Error("failed to create page", zap.String("store_id", input.StoreID), zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("page created", zap.String("id", p.ID), zap.String("slug", p.Slug))
	return p, nil
}

func (uc *pageUseCase) GetPage(ctx context.Context, storeID, id string) (*model.Page, error) {
	return uc.repo.FindByID(ctx, storeID, id)
}

func (uc *pageUseCase) ListPages(ctx context.Context, filters *dto.PageFilters) ([]model.Page, int, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *pageUseCase) UpdatePage(ctx context.Context, input *dto.UpdatePageInput) (*model.Page, error) {
	slug, err := normalizeSlug(input.Slug)
	if err != nil {
		return nil, err
	}

	var p *model.Page
	err = uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx page.Repository) error {
			found, err := tx.FindByID(ctx, input.StoreID, input.ID)
			if err != nil {
				return err
			}
			found.Slug = slug
			found.Title = normalizeTitle(input.Title)
			if input.Published != nil {
				found.Published = *input.Published
			}
			found.UpdatedAt = time.Now()
			if err := tx.Update(ctx, found); err != nil {
				return err
			}
			p = found
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *pageUseCase) DeletePage(ctx context.Context, storeID, id string) error {
	return uc.lock.Do(ctx, storeID, func(ctx context.Context) error {
		return uc.repo.Delete(ctx, storeID, id)
	})
}
