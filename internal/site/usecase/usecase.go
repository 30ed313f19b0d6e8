package usecase

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/fekuna/omnipos-storefront-service/internal/site"
	"github.com/fekuna/omnipos-storefront-service/internal/site/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type siteUseCase struct {
	repo   site.Repository
	lock   *tenant.StoreLock
	logger logger.ZapLogger
}

func NewSiteUseCase(repo site.Repository, lock *tenant.StoreLock, log logger.ZapLogger) site.UseCase {
	return &siteUseCase{
		repo:   repo,
		lock:   lock,
		logger: log,
	}
}

// edit loads the owner's draft under the store lock, applies fn and saves the
// result in the same transaction.
func (uc *siteUseCase) edit(ctx context.Context, storeID string, owner dto.Owner, op string, fn func(section.Schema) (section.Schema, error)) error {
	err := uc.lock.Do(ctx, storeID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx site.Repository) error {
			draft, err := tx.GetDraft(ctx, storeID, owner)
			if err != nil {
				return err
			}
			next, err := fn(draft)
			if err != nil {
				return err
			}
			return tx.SaveDraft(ctx, storeID, owner, next)
		})
	})
	if err != nil {
		uc.logger.Error("failed to edit draft schema",
			zap.String("op", op),
			zap.String("store_id", storeID),
			zap.String("owner_kind", string(owner.Kind)),
			zap.String("owner_id", owner.ID),
			zap.Error(err),
		)
		return err
	}
	uc.logger.Debug("draft schema edited",
		zap.String("op", op),
		zap.String("store_id", storeID),
		zap.String("owner_kind", string(owner.Kind)),
	)
	return nil
}

func (uc *siteUseCase) AddSection(ctx context.Context, input *dto.AddSectionInput) (section.Section, error) {
	sec, err := section.Build(section.SectionType(input.SectionType))
	if err != nil {
		return nil, err
	}

	err = uc.edit(ctx, input.StoreID, input.Owner, "add", func(draft section.Schema) (section.Schema, error) {
		return draft.Append(sec)
	})
	if err != nil {
		return nil, err
	}
	return sec, nil
}

func (uc *siteUseCase) UpdateSection(ctx context.Context, input *dto.UpdateSectionInput) (section.Section, error) {
	sec, err := section.Decode(input.Document)
	if err != nil {
		return nil, err
	}
	if err := section.Validate(sec); err != nil {
		return nil, err
	}

	err = uc.edit(ctx, input.StoreID, input.Owner, "update", func(draft section.Schema) (section.Schema, error) {
		return draft.Replace(sec)
	})
	if err != nil {
		return nil, err
	}
	return sec, nil
}

func (uc *siteUseCase) DeleteSection(ctx context.Context, input *dto.DeleteSectionInput) (section.Section, error) {
	var removed section.Section
	err := uc.edit(ctx, input.StoreID, input.Owner, "delete", func(draft section.Schema) (section.Schema, error) {
		next, sec, err := draft.Remove(input.SectionID)
		removed = sec
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (uc *siteUseCase) MoveSection(ctx context.Context, input *dto.MoveSectionInput) (section.Schema, error) {
	var moved section.Schema
	err := uc.edit(ctx, input.StoreID, input.Owner, "move", func(draft section.Schema) (section.Schema, error) {
		next, err := draft.Move(input.SourceIndex, input.DestinationIndex)
		moved = next
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

func (uc *siteUseCase) GetDraft(ctx context.Context, storeID string, owner dto.Owner) (section.Schema, error) {
	return uc.repo.GetDraft(ctx, storeID, owner)
}

func (uc *siteUseCase) Publish(ctx context.Context, storeID string) (*dto.PublishResult, error) {
	result := &dto.PublishResult{}
	err := uc.lock.Do(ctx, storeID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx site.Repository) error {
			if err := tx.PublishStore(ctx, storeID); err != nil {
				return err
			}
			pages, err := tx.PublishPages(ctx, storeID)
			if err != nil {
				return err
			}
			products, err := tx.PublishProducts(ctx, storeID)
			if err != nil {
				return err
			}
			result.Pages, result.Products = pages, products
			return nil
		})
	})
	if err != nil {
		uc.logger.Error("failed to publish store", zap.String("store_id", storeID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("store published",
		zap.String("store_id", storeID),
		zap.Int64("pages", result.Pages),
		zap.Int64("products", result.Products),
	)
	return result, nil
}
