package site

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/fekuna/omnipos-storefront-service/internal/site/dto"
)

type UseCase interface {
	AddSection(ctx context.Context, input *dto.AddSectionInput) (section.Section, error)
	UpdateSection(ctx context.Context, input *dto.UpdateSectionInput) (section.Section, error)
	DeleteSection(ctx context.Context, input *dto.DeleteSectionInput) (section.Section, error)
	MoveSection(ctx context.Context, input *dto.MoveSectionInput) (section.Schema, error)
	GetDraft(ctx context.Context, storeID string, owner dto.Owner) (section.Schema, error)

	// Publish copies schema_draft to schema for the store, its pages and its
	// non-draft products, all or nothing.
	Publish(ctx context.Context, storeID string) (*dto.PublishResult, error)
}
