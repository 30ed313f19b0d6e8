package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

var tables = map[ordering.Kind]string{
	ordering.KindProduct:     "products",
	ordering.KindCategory:    "product_categories",
	ordering.KindContentItem: "content_items",
}

type PGRepository struct {
	DB *sqlx.DB
	q  sqlx.ExtContext
}

var _ ordering.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, q: db}
}

func (r *PGRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx ordering.Repository) error) error {
	err := postgres.WithTx(ctx, r.DB, postgres.Serializable, func(tx *sqlx.Tx) error {
		return fn(ctx, &PGRepository{DB: r.DB, q: tx})
	})
	if postgres.IsSerializationFailure(err) {
		return apperror.Wrap(apperror.CodeConflict, err, "ordering changed concurrently, please retry")
	}
	return err
}

type entityRow struct {
	ID          string         `db:"id"`
	StoreID     string         `db:"store_id"`
	ProductID   sql.NullString `db:"product_id"`
	ParentID    sql.NullString `db:"parent_id"`
	ContentType sql.NullString `db:"content_type"`
	SortOrder   int            `db:"sort_order"`
}

func (r *PGRepository) FindEntity(ctx context.Context, kind ordering.Kind, storeID, id string) (*ordering.Entity, error) {
	var query string
	switch kind {
	case ordering.KindProduct, ordering.KindCategory:
		query = fmt.Sprintf(`SELECT id, store_id, sort_order FROM %s WHERE id = $1 AND store_id = $2`, tables[kind])
	case ordering.KindContentItem:
		query = `
            SELECT ci.id, p.store_id, ci.product_id, ci.parent_id, ci.content_type, ci.sort_order
            FROM content_items ci
            JOIN products p ON p.id = ci.product_id
            WHERE ci.id = $1 AND p.store_id = $2
        `
	default:
		return nil, apperror.Validation("unknown orderable kind %q", kind)
	}

	var row entityRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, id, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("%s %s not found", kind, id)
		}
		return nil, err
	}

	e := &ordering.Entity{
		ID:    row.ID,
		Order: row.SortOrder,
		Group: ordering.Group{Kind: kind, StoreID: row.StoreID},
	}
	if kind == ordering.KindContentItem {
		e.Group.ProductID = row.ProductID.String
		if row.ParentID.Valid {
			parent := row.ParentID.String
			e.Group.ParentID = &parent
		}
		e.ContentType = row.ContentType.String
	}
	return e, nil
}

func (r *PGRepository) ListGroup(ctx context.Context, g ordering.Group, excludeID string) ([]ordering.Item, error) {
	var (
		query string
		args  []interface{}
	)
	switch g.Kind {
	case ordering.KindProduct, ordering.KindCategory:
		query = fmt.Sprintf(`SELECT id, sort_order FROM %s WHERE store_id = $1`, tables[g.Kind])
		args = append(args, g.StoreID)
	case ordering.KindContentItem:
		if g.ParentID == nil {
			query = `SELECT id, sort_order FROM content_items WHERE product_id = $1 AND parent_id IS NULL`
			args = append(args, g.ProductID)
		} else {
			query = `SELECT id, sort_order FROM content_items WHERE product_id = $1 AND parent_id = $2`
			args = append(args, g.ProductID, *g.ParentID)
		}
	default:
		return nil, apperror.Validation("unknown orderable kind %q", g.Kind)
	}

	if excludeID != "" {
		args = append(args, excludeID)
		query += fmt.Sprintf(` AND id <> $%d`, len(args))
	}
	query += ` ORDER BY sort_order ASC, created_at ASC FOR UPDATE`

	items := []ordering.Item{}
	if err := sqlx.SelectContext(ctx, r.q, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) SetParent(ctx context.Context, id string, parentID *string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE content_items SET parent_id = $1, updated_at = NOW() WHERE id = $2`, parentID, id)
	return err
}

func (r *PGRepository) UpdateOrders(ctx context.Context, kind ordering.Kind, items []ordering.Item) error {
	table, ok := tables[kind]
	if !ok {
		return apperror.Validation("unknown orderable kind %q", kind)
	}
	query := fmt.Sprintf(`UPDATE %s SET sort_order = $1, updated_at = NOW() WHERE id = $2`, table)

	for _, it := range items {
		if _, err := r.q.ExecContext(ctx, query, it.Order, it.ID); err != nil {
			return fmt.Errorf("failed to update order of %s %s: %w", kind, it.ID, err)
		}
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, kind ordering.Kind, id string) error {
	table, ok := tables[kind]
	if !ok {
		return apperror.Validation("unknown orderable kind %q", kind)
	}
	_, err := r.q.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	return err
}
