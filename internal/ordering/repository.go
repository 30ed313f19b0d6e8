package ordering

import "context"

type Repository interface {
	// RunInTx gives fn a repository bound to a single serializable transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error

	FindEntity(ctx context.Context, kind Kind, storeID, id string) (*Entity, error)
	// ListGroup returns the group ordered by sort_order, locking the rows.
	// An empty excludeID keeps every member.
	ListGroup(ctx context.Context, g Group, excludeID string) ([]Item, error)
	SetParent(ctx context.Context, id string, parentID *string) error
	UpdateOrders(ctx context.Context, kind Kind, items []Item) error
	Delete(ctx context.Context, kind Kind, id string) error
}
