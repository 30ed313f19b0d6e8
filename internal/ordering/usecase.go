package ordering

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/ordering/dto"
)

type UseCase interface {
	Move(ctx context.Context, input *dto.MoveInput) (*dto.MoveResult, error)
	// Remove deletes an orderable and closes the gap it leaves in its group.
	Remove(ctx context.Context, kind Kind, storeID, id string) error
	// Compact renumbers a group to 1..N, e.g. after rows were deleted elsewhere.
	Compact(ctx context.Context, g Group) error
}
