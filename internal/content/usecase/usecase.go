package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/content"
	"github.com/fekuna/omnipos-storefront-service/internal/content/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contentUseCase struct {
	repo     content.Repository
	ordering ordering.UseCase
	lock     *tenant.StoreLock
	logger   logger.ZapLogger
}

func NewContentUseCase(repo content.Repository, ord ordering.UseCase, lock *tenant.StoreLock, log logger.ZapLogger) content.UseCase {
	return &contentUseCase{
		repo:     repo,
		ordering: ord,
		lock:     lock,
		logger:   log,
	}
}

func (uc *contentUseCase) outline(ctx context.Context, productID string) (*content.Outline, error) {
	items, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return content.NewOutline(items), nil
}

func (uc *contentUseCase) Navigate(ctx context.Context, storeID, itemID string) (*dto.Neighbours, error) {
	item, err := uc.repo.FindItem(ctx, storeID, itemID)
	if err != nil {
		return nil, err
	}
	o, err := uc.outline(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	prev, err := o.Previous(item.ID)
	if err != nil {
		return nil, err
	}
	next, err := o.Next(item.ID)
	if err != nil {
		return nil, err
	}
	return &dto.Neighbours{Previous: prev, Next: next}, nil
}

func (uc *contentUseCase) Tree(ctx context.Context, storeID, productID string) ([]model.ContentItem, error) {
	if _, err := uc.repo.FindProduct(ctx, storeID, productID); err != nil {
		return nil, err
	}
	o, err := uc.outline(ctx, productID)
	if err != nil {
		return nil, err
	}
	return o.Tree(), nil
}

func (uc *contentUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.ContentItem, error) {
	if !slices.Contains(model.ContentTypes, input.ContentType) {
		return nil, apperror.Validation("unsupported content type %q", input.ContentType)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.Validation("title is required")
	}
	if input.ParentID != nil && input.ContentType == model.ContentTypeSection {
		return nil, apperror.Validation("sections cannot be nested")
	}

	now := time.Now()
	item := &model.ContentItem{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:   input.ProductID,
		ParentID:    input.ParentID,
		ContentType: input.ContentType,
		Title:       title,
	}

	err := uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx content.Repository) error {
			if _, err := tx.FindProduct(ctx, input.StoreID, input.ProductID); err != nil {
				return err
			}
			if input.ParentID != nil {
				parent, err := tx.FindItem(ctx, input.StoreID, *input.ParentID)
				if err != nil {
					return err
				}
				if parent.ProductID != input.ProductID {
					return apperror.NotFound("content item %s not found in product %s", *input.ParentID, input.ProductID)
				}
				if !parent.IsSection() || parent.ParentID != nil {
					return apperror.Validation("content item %s is not a top-level section", parent.ID)
				}
			}

			siblings, err := tx.ListSiblings(ctx, input.ProductID, input.ParentID)
			if err != nil {
				return err
			}
			item.Order = ordering.NextOrder(siblings)
			return tx.Create(ctx, item)
		})
	})
	if err != nil {
		uc.logger.Error("failed to create content item",
			zap.String("product_id", input.ProductID),
			zap.String("content_type", input.ContentType),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("content item created", zap.String("id", item.ID), zap.Int("order", item.Order))
	return item, nil
}

// DeleteItem removes the item and closes the gap it leaves. Children of a
// deleted section go with it.
func (uc *contentUseCase) DeleteItem(ctx context.Context, storeID, itemID string) error {
	return uc.ordering.Remove(ctx, ordering.KindContentItem, storeID, itemID)
}
