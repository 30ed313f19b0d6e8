package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/category"
	"github.com/fekuna/omnipos-storefront-service/internal/category/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo     category.Repository
	ordering ordering.UseCase
	lock     *tenant.StoreLock
	logger   logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, ord ordering.UseCase, lock *tenant.StoreLock, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		ordering: ord,
		lock:     lock,
		logger:   log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("category name is required")
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StoreID:     input.StoreID,
		Name:        name,
		Description: input.Description,
	}

	err := uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx category.Repository) error {
			orders, err := tx.ListOrders(ctx, input.StoreID)
			if err != nil {
				return err
			}
			cat.Order = ordering.NextOrder(orders)
			return tx.Create(ctx, cat)
		})
	})
	if err != nil {
		uc.logger.Error("failed to create category", zap.String("store_id", input.StoreID), zap.Error(err))
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, storeID, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, storeID, id)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("category name is required")
	}

	var cat *model.Category
	err := uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx category.Repository) error {
			found, err := tx.FindByID(ctx, input.StoreID, input.ID)
			if err != nil {
				return err
			}
			found.Name = name
			found.Description = input.Description
			found.UpdatedAt = time.Now()
			if err := tx.Update(ctx, found); err != nil {
				return err
			}
			cat = found
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory removes the category and renumbers the rest.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, storeID, id string) error {
	return uc.ordering.Remove(ctx, ordering.KindCategory, storeID, id)
}
