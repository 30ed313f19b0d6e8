package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/product"
	"github.com/fekuna/omnipos-storefront-service/internal/product/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
	q  sqlx.ExtContext
}

var _ product.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, q: db}
}

func (r *PGRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx product.Repository) error) error {
	err := postgres.WithTx(ctx, r.DB, postgres.Serializable, func(tx *sqlx.Tx) error {
		return fn(ctx, &PGRepository{DB: r.DB, q: tx})
	})
	if postgres.IsSerializationFailure(err) {
		return apperror.Wrap(apperror.CodeConflict, err, "products changed concurrently, please retry")
	}
	return err
}

const columns = `id, store_id, name, slug, product_type, draft, sort_order, schema, schema_draft, created_at, updated_at`

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, store_id, name, slug, product_type, draft, sort_order,
            schema, schema_draft, created_at, updated_at
        )
        VALUES (
            :id, :store_id, :name, :slug, :product_type, :draft, :sort_order,
            :schema, :schema_draft, :created_at, :updated_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, p)
	if postgres.IsUniqueViolation(err) {
		return apperror.Conflict("product slug %q already exists", p.Slug)
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, storeID, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT ` + columns + ` FROM products WHERE id = $1 AND store_id = $2`
	if err := sqlx.GetContext(ctx, r.q, &p, query, id, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("product %s not found", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	conditions := []string{"store_id = :store_id"}
	args := map[string]interface{}{"store_id": f.StoreID}

	if f.ProductType != "" {
		conditions = append(conditions, "product_type = :product_type")
		args["product_type"] = f.ProductType
	}
	if f.CategoryID != "" {
		conditions = append(conditions, "id IN (SELECT product_id FROM product_categories_products WHERE category_id = :category_id)")
		args["category_id"] = f.CategoryID
	}
	if f.Draft != nil {
		conditions = append(conditions, "draft = :draft")
		args["draft"] = *f.Draft
	}
	if f.Search != "" {
		conditions = append(conditions, "name ILIKE :search")
		args["search"] = "%" + f.Search + "%"
	}
	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var count int
	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM products"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.GetContext(ctx, r.q, &count, sqlx.Rebind(sqlx.DOLLAR, countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columns + " FROM products" + whereClause + " ORDER BY sort_order ASC, created_at ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}
	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}

	products := []model.Product{}
	if err := sqlx.SelectContext(ctx, r.q, &products, sqlx.Rebind(sqlx.DOLLAR, listQuery), listArgs...); err != nil {
		return nil, 0, err
	}
	return products, count, nil
}

// Update writes name and draft. Schemas and order have their own writers.
func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            draft = :draft,
            updated_at = :updated_at
        WHERE id = :id AND store_id = :store_id
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, p)
	return err
}

func (r *PGRepository) ListOrders(ctx context.Context, storeID string) ([]ordering.Item, error) {
	items := []ordering.Item{}
	err := sqlx.SelectContext(ctx, r.q, &items,
		`SELECT id, sort_order FROM products WHERE store_id = $1 ORDER BY sort_order FOR UPDATE`, storeID)
	return items, err
}

func (r *PGRepository) IsSlugUnique(ctx context.Context, storeID, slug string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE store_id = $1 AND slug = $2`
	if err := sqlx.GetContext(ctx, r.q, &count, query, storeID, slug); err != nil {
		return false, err
	}
	return count == 0, nil
}

const categoryColumns = `id, store_id, name, description, sort_order, created_at, updated_at`

func (r *PGRepository) FindCategoryByName(ctx context.Context, storeID, name string) (*model.Category, error) {
	var c model.Category
	query := `SELECT ` + categoryColumns + ` FROM product_categories WHERE store_id = $1 AND name = $2`
	if err := sqlx.GetContext(ctx, r.q, &c, query, storeID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("category %q not found", name)
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO product_categories (id, store_id, name, description, sort_order, created_at, updated_at)
        VALUES (:id, :store_id, :name, :description, :sort_order, :created_at, :updated_at)
    `
	_, err := sqlx.NamedExecContext(ctx, r.q, query, c)
	if postgres.IsUniqueViolation(err) {
		return apperror.Conflict("category %q already exists", c.Name)
	}
	return err
}

func (r *PGRepository) ListCategoryOrders(ctx context.Context, storeID string) ([]ordering.Item, error) {
	items := []ordering.Item{}
	err := sqlx.SelectContext(ctx, r.q, &items,
		`SELECT id, sort_order FROM product_categories WHERE store_id = $1 ORDER BY sort_order FOR UPDATE`, storeID)
	return items, err
}

func (r *PGRepository) LinkCategory(ctx context.Context, productID, categoryID string) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO product_categories_products (product_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		productID, categoryID)
	return err
}

func (r *PGRepository) UnlinkCategory(ctx context.Context, productID, categoryID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM product_categories_products WHERE product_id = $1 AND category_id = $2`,
		productID, categoryID)
	return err
}

func (r *PGRepository) ListCategories(ctx context.Context, productID string) ([]model.Category, error) {
	categories := []model.Category{}
	query := `
        SELECT c.id, c.store_id, c.name, c.description, c.sort_order, c.created_at, c.updated_at
        FROM product_categories c
        JOIN product_categories_products pc ON pc.category_id = c.id
        WHERE pc.product_id = $1
        ORDER BY c.sort_order ASC, c.name ASC
    `
	err := sqlx.SelectContext(ctx, r.q, &categories, query, productID)
	return categories, err
}
