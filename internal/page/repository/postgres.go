package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/page"
	"github.com/fekuna/omnipos-storefront-service/internal/page/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
	q  sqlx.ExtContext
}

var _ page.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, q: db}
}

func (r *PGRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx page.Repository) error) error {
	err := postgres.WithTx(ctx, r.DB, postgres.Serializable, func(tx *sqlx.Tx) error {
		return fn(ctx, &PGRepository{DB: r.DB, q: tx})
	})
	if postgres.IsSerializationFailure(err) {
		return apperror.Wrap(apperror.CodeConflict, err, "pages changed concurrently, please retry")
	}
	return err
}

func slugTaken(err error, slug string) error {
	if postgres.IsUniqueViolation(err) {
		return apperror.Conflict("page slug %q already exists", slug)
	}
	return err
}

const columns = `id, store_id, slug, title, schema, schema_draft, published, created_at, updated_at`

func (r *PGRepository) Create(ctx context.Context, p *model.Page) error {
	query := `
        INSERT INTO pages (id, store_id, slug, title, schema, schema_draft, published, created_at, updated_at)
        VALUES (:id, :store_id, :slug, :title, :schema, :schema_draft, :published, :created_at, :updated_at)
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, p)
	return slugTaken(err, p.Slug)
}

func (r *PGRepository) FindByID(ctx context.Context, storeID, id string) (*model.Page, error) {
	var p model.Page
	query := `SELECT ` + columns + ` FROM pages WHERE id = $1 AND store_id = $2`
	if err := sqlx.GetContext(ctx, r.q, &p, query, id, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("page %s not found", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.PageFilters) ([]model.Page, int, error) {
	conditions := []string{"store_id = :store_id"}
	args := map[string]interface{}{"store_id": f.StoreID}

	if f.Published != nil {
		conditions = append(conditions, "published = :published")
		args["published"] = *f.Published
	}
	if f.Search != "" {
		conditions = append(conditions, "(slug ILIKE :search OR title ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}
	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var count int
	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM pages"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.GetContext(ctx, r.q, &count, sqlx.Rebind(sqlx.DOLLAR, countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM pages" + whereClause + " ORDER BY title ASC NULLS LAST, created_at ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}
	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}

	pages := []model.Page{}
	if err := sqlx.SelectContext(ctx, r.q, &pages, sqlx.Rebind(sqlx.DOLLAR, listQuery), listArgs...); err != nil {
		return nil, 0, err
	}
	return pages, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Page) error {
	query := `
        UPDATE pages
        SET slug = :slug,
            title = :title,
            published = :published,
            updated_at = :updated_at
        WHERE id = :id AND store_id = :store_id
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, p)
	return slugTaken(err, p.Slug)
}

func (r *PGRepository) Delete(ctx context.Context, storeID, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM pages WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound("page %s not found", id)
	}
	return nil
}
