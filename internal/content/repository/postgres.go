package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/content"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
	q  sqlx.ExtContext
}

var _ content.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, q: db}
}

func (r *PGRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx content.Repository) error) error {
	err := postgres.WithTx(ctx, r.DB, postgres.Serializable, func(tx *sqlx.Tx) error {
		return fn(ctx, &PGRepository{DB: r.DB, q: tx})
	})
	if postgres.IsSerializationFailure(err) {
		return apperror.Wrap(apperror.CodeConflict, err, "content changed concurrently, please retry")
	}
	return err
}

func (r *PGRepository) FindProduct(ctx context.Context, storeID, productID string) (*model.Product, error) {
	var p model.Product
	query := `
        SELECT id, store_id, name, product_type, draft, sort_order, schema, schema_draft, created_at, updated_at
        FROM products WHERE id = $1 AND store_id = $2
    `
	if err := sqlx.GetContext(ctx, r.q, &p, query, productID, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("product %s not found", productID)
		}
		return nil, err
	}
	return &p, nil
}

const itemColumns = `ci.id, ci.product_id, ci.parent_id, ci.content_type, ci.title, ci.sort_order, ci.created_at, ci.updated_at`

func (r *PGRepository) FindItem(ctx context.Context, storeID, id string) (*model.ContentItem, error) {
	var item model.ContentItem
	query := `SELECT ` + itemColumns + `
        FROM content_items ci
        JOIN products p ON p.id = ci.product_id
        WHERE ci.id = $1 AND p.store_id = $2
    `
	if err := sqlx.GetContext(ctx, r.q, &item, query, id, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("content item %s not found", id)
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) ListByProduct(ctx context.Context, productID string) ([]model.ContentItem, error) {
	items := []model.ContentItem{}
	query := `SELECT ` + itemColumns + `
        FROM content_items ci
        WHERE ci.product_id = $1
        ORDER BY ci.sort_order ASC, ci.created_at ASC
    `
	if err := sqlx.SelectContext(ctx, r.q, &items, query, productID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) ListSiblings(ctx context.Context, productID string, parentID *string) ([]ordering.Item, error) {
	items := []ordering.Item{}
	var err error
	if parentID == nil {
		err = sqlx.SelectContext(ctx, r.q, &items,
			`SELECT id, sort_order FROM content_items WHERE product_id = $1 AND parent_id IS NULL ORDER BY sort_order FOR UPDATE`,
			productID)
	} else {
		err = sqlx.SelectContext(ctx, r.q, &items,
			`SELECT id, sort_order FROM content_items WHERE product_id = $1 AND parent_id = $2 ORDER BY sort_order FOR UPDATE`,
			productID, *parentID)
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) Create(ctx context.Context, item *model.ContentItem) error {
	query := `
        INSERT INTO content_items (id, product_id, parent_id, content_type, title, sort_order, created_at, updated_at)
        VALUES (:id, :product_id, :parent_id, :content_type, :title, :sort_order, :created_at, :updated_at)
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, item)
	return err
}
