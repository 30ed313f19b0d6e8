package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/category"
	"github.com/fekuna/omnipos-storefront-service/internal/category/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
	q  sqlx.ExtContext
}

var _ category.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, q: db}
}

func (r *PGRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx category.Repository) error) error {
	err := postgres.WithTx(ctx, r.DB, postgres.Serializable, func(tx *sqlx.Tx) error {
		return fn(ctx, &PGRepository{DB: r.DB, q: tx})
	})
	if postgres.IsSerializationFailure(err) {
		return apperror.Wrap(apperror.CodeConflict, err, "categories changed concurrently, please retry")
	}
	return err
}

func nameTaken(err error, name string) error {
	if postgres.IsUniqueViolation(err) {
		return apperror.Conflict("category %q already exists", name)
	}
	return err
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO product_categories (id, store_id, name, description, sort_order, created_at, updated_at)
        VALUES (:id, :store_id, :name, :description, :sort_order, :created_at, :updated_at)
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, c)
	return nameTaken(err, c.Name)
}

const columns = `id, store_id, name, description, sort_order, created_at, updated_at`

func (r *PGRepository) FindByID(ctx context.Context, storeID, id string) (*model.Category, error) {
	var c model.Category
	query := `SELECT ` + columns + ` FROM product_categories WHERE id = $1 AND store_id = $2`
	if err := sqlx.GetContext(ctx, r.q, &c, query, id, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("category %s not found", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	conditions := []string{"store_id = :store_id"}
	args := map[string]interface{}{"store_id": f.StoreID}

	if f.Search != "" {
		conditions = append(conditions, "name ILIKE :search")
		args["search"] = "%" + f.Search + "%"
	}
	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var count int
	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM product_categories"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.GetContext(ctx, r.q, &count, sqlx.Rebind(sqlx.DOLLAR, countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM product_categories" + whereClause + " ORDER BY sort_order ASC, name ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}
	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}

	categories := []model.Category{}
	if err := sqlx.SelectContext(ctx, r.q, &categories, sqlx.Rebind(sqlx.DOLLAR, listQuery), listArgs...); err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE product_categories
        SET name = :name,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id AND store_id = :store_id
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, c)
	return nameTaken(err, c.Name)
}

func (r *PGRepository) ListOrders(ctx context.Context, storeID string) ([]ordering.Item, error) {
	items := []ordering.Item{}
	err := sqlx.SelectContext(ctx, r.q, &items,
		`SELECT id, sort_order FROM product_categories WHERE store_id = $1 ORDER BY sort_order FOR UPDATE`, storeID)
	return items, err
}
