package usecase

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type orderingUseCase struct {
	repo   ordering.Repository
	lock   *tenant.StoreLock
	logger logger.ZapLogger
}

func NewOrderingUseCase(repo ordering.Repository, lock *tenant.StoreLock, log logger.ZapLogger) ordering.UseCase {
	return &orderingUseCase{
		repo:   repo,
		lock:   lock,
		logger: log,
	}
}

func (uc *orderingUseCase) Move(ctx context.Context, input *dto.MoveInput) (*dto.MoveResult, error) {
	kind, err := ordering.ParseKind(input.Kind)
	if err != nil {
		return nil, err
	}
	if input.ParentSet && input.ParentID != nil && kind != ordering.KindContentItem {
		return nil, apperror.Validation("only content items can change parent")
	}

	var result *dto.MoveResult
	err = uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx ordering.Repository) error {
			res, err := uc.move(ctx, tx, kind, input)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})
	if err != nil {
		uc.logger.Error("failed to move orderable",
			zap.String("kind", input.Kind),
			zap.String("id", input.ID),
			zap.Int("position", input.Position),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("orderable moved",
		zap.String("kind", input.Kind),
		zap.String("id", input.ID),
		zap.Int("position", result.Position),
	)
	return result, nil
}

func (uc *orderingUseCase) move(ctx context.Context, tx ordering.Repository, kind ordering.Kind, input *dto.MoveInput) (*dto.MoveResult, error) {
	entity, err := tx.FindEntity(ctx, kind, input.StoreID, input.ID)
	if err != nil {
		return nil, err
	}

	origin := entity.Group
	dest := origin

	if input.ParentSet && kind == ordering.KindContentItem {
		dest.ParentID = input.ParentID
		if !dest.Equal(origin) {
			if err := uc.checkParent(ctx, tx, entity, input.StoreID, input.ParentID); err != nil {
				return nil, err
			}
			if err := tx.SetParent(ctx, entity.ID, input.ParentID); err != nil {
				return nil, err
			}
		}
	}

	siblings, err := tx.ListGroup(ctx, dest, entity.ID)
	if err != nil {
		return nil, err
	}

	position := ordering.ClampPosition(input.Position, len(siblings))
	list := ordering.Insert(siblings, ordering.Item{ID: entity.ID, Order: entity.Order}, position)
	renumbered, err := uc.renumber(ctx, tx, kind, list)
	if err != nil {
		return nil, err
	}

	if !dest.Equal(origin) {
		rest, err := tx.ListGroup(ctx, origin, entity.ID)
		if err != nil {
			return nil, err
		}
		if _, err := uc.renumber(ctx, tx, kind, rest); err != nil {
			return nil, err
		}
	}

	out := &dto.MoveResult{Position: position, Items: make([]dto.Position, len(renumbered))}
	for i, it := range renumbered {
		out.Items[i] = dto.Position{ID: it.ID, Order: it.Order}
	}
	return out, nil
}

// renumber writes 1..N over list, persisting only the rows that changed.
func (uc *orderingUseCase) renumber(ctx context.Context, tx ordering.Repository, kind ordering.Kind, list []ordering.Item) ([]ordering.Item, error) {
	renumbered, changed := ordering.Renumber(list)
	if len(changed) > 0 {
		if err := tx.UpdateOrders(ctx, kind, changed); err != nil {
			return nil, err
		}
	}
	return renumbered, nil
}

// checkParent keeps the outline two levels deep: a parent must be a top-level
// section of the same product, and sections themselves stay top level.
func (uc *orderingUseCase) checkParent(ctx context.Context, tx ordering.Repository, item *ordering.Entity, storeID string, parentID *string) error {
	if parentID == nil {
		return nil
	}
	if *parentID == item.ID {
		return apperror.Validation("content item %s cannot be its own parent", item.ID)
	}
	if item.ContentType == model.ContentTypeSection {
		return apperror.Validation("section %s cannot be nested", item.ID)
	}

	parent, err := tx.FindEntity(ctx, ordering.KindContentItem, storeID, *parentID)
	if err != nil {
		return err
	}
	if parent.Group.ProductID != item.Group.ProductID {
		return apperror.NotFound("content item %s not found in product %s", *parentID, item.Group.ProductID)
	}
	if parent.ContentType != model.ContentTypeSection || parent.Group.ParentID != nil {
		return apperror.Validation("content item %s is not a top-level section", *parentID)
	}
	return nil
}

func (uc *orderingUseCase) Remove(ctx context.Context, kind ordering.Kind, storeID, id string) error {
	err := uc.lock.Do(ctx, storeID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx ordering.Repository) error {
			entity, err := tx.FindEntity(ctx, kind, storeID, id)
			if err != nil {
				return err
			}
			if err := tx.Delete(ctx, kind, id); err != nil {
				return err
			}
			rest, err := tx.ListGroup(ctx, entity.Group, "")
			if err != nil {
				return err
			}
			_, err = uc.renumber(ctx, tx, kind, rest)
			return err
		})
	})
	if err != nil {
		uc.logger.Error("failed to remove orderable", zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (uc *orderingUseCase) Compact(ctx context.Context, g ordering.Group) error {
	return uc.lock.Do(ctx, g.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx ordering.Repository) error {
			items, err := tx.ListGroup(ctx, g, "")
			if err != nil {
				return err
			}
			if ordering.IsContiguous(items) {
				return nil
			}
			_, err = uc.renumber(ctx, tx, g.Kind, items)
			return err
		})
	})
}
