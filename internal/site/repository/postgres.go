package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/fekuna/omnipos-storefront-service/internal/site"
	"github.com/fekuna/omnipos-storefront-service/internal/site/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
	q  sqlx.ExtContext
}

var _ site.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, q: db}
}

func (r *PGRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx site.Repository) error) error {
	err := postgres.WithTx(ctx, r.DB, postgres.Serializable, func(tx *sqlx.Tx) error {
		return fn(ctx, &PGRepository{DB: r.DB, q: tx})
	})
	if postgres.IsSerializationFailure(err) {
		return apperror.Wrap(apperror.CodeConflict, err, "store changed concurrently, please retry")
	}
	return err
}

// ownerQuery returns the table and WHERE clause selecting owner within
// storeID, numbering placeholders from first.
func ownerQuery(storeID string, owner dto.Owner, first int) (table, where string, args []interface{}, err error) {
	switch owner.Kind {
	case dto.OwnerHome:
		return "stores", fmt.Sprintf("id = $%d", first), []interface{}{storeID}, nil
	case dto.OwnerPage, dto.OwnerProduct:
		table = "pages"
		if owner.Kind == dto.OwnerProduct {
			table = "products"
		}
		where = fmt.Sprintf("id = $%d AND store_id = $%d", first, first+1)
		return table, where, []interface{}{owner.ID, storeID}, nil
	}
	return "", "", nil, apperror.Validation("unknown owner kind %q", owner.Kind)
}

func notFound(owner dto.Owner) error {
	if owner.Kind == dto.OwnerHome {
		return apperror.NotFound("store not found")
	}
	return apperror.NotFound("%s %s not found", owner.Kind, owner.ID)
}

func (r *PGRepository) GetDraft(ctx context.Context, storeID string, owner dto.Owner) (section.Schema, error) {
	table, where, args, err := ownerQuery(storeID, owner, 1)
	if err != nil {
		return nil, err
	}

	var draft section.Schema
	query := `SELECT schema_draft FROM ` + table + ` WHERE ` + where + ` FOR UPDATE`
	if err := sqlx.GetContext(ctx, r.q, &draft, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(owner)
		}
		return nil, err
	}
	return draft, nil
}

func (r *PGRepository) SaveDraft(ctx context.Context, storeID string, owner dto.Owner, draft section.Schema) error {
	table, where, args, err := ownerQuery(storeID, owner, 2)
	if err != nil {
		return err
	}

	query := `UPDATE ` + table + ` SET schema_draft = $1, updated_at = NOW() WHERE ` + where
	res, err := r.q.ExecContext(ctx, query, append([]interface{}{draft}, args...)...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(owner)
	}
	return nil
}

func (r *PGRepository) PublishStore(ctx context.Context, storeID string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE stores SET schema = schema_draft, updated_at = NOW() WHERE id = $1`, storeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound("store %s not found", storeID)
	}
	return nil
}

func (r *PGRepository) PublishPages(ctx context.Context, storeID string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE pages SET schema = schema_draft, updated_at = NOW() WHERE store_id = $1`, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PGRepository) PublishProducts(ctx context.Context, storeID string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE products SET schema = schema_draft, updated_at = NOW() WHERE store_id = $1 AND draft = FALSE`, storeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
