package site

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/fekuna/omnipos-storefront-service/internal/site/dto"
)

type Repository interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	// GetDraft reads and locks the owner's schema_draft.
	GetDraft(ctx context.Context, storeID string, owner dto.Owner) (section.Schema, error)
	SaveDraft(ctx context.Context, storeID string, owner dto.Owner, draft section.Schema) error

	PublishStore(ctx context.Context, storeID string) error
	PublishPages(ctx context.Context, storeID string) (int64, error)
	// PublishProducts skips draft products.
	PublishProducts(ctx context.Context, storeID string) (int64, error)
}
