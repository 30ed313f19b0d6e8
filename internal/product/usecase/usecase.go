package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/product"
	"github.com/fekuna/omnipos-storefront-service/internal/product/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var productTypes = []string{model.ProductTypeCourse, model.ProductTypeDigital, model.ProductTypeBundle}

// maxSlugAttempts bounds the search for a free slug within a store.
const maxSlugAttempts = 100

type productUseCase struct {
	repo     product.Repository
	ordering ordering.UseCase
	lock     *tenant.StoreLock
	logger   logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, ord ordering.UseCase, lock *tenant.StoreLock, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		ordering: ord,
		lock:     lock,
		logger:   log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("product name is required")
	}
	if !slices.Contains(productTypes, input.ProductType) {
		return nil, apperror.Validation("unsupported product type %q", input.ProductType)
	}
	base := product.Slugify(name)
	if base == "" {
		base = "product"
	}

	draft := true
	if input.Draft != nil {
		draft = *input.Draft
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		StoreID:     input.StoreID,
		Name:        name,
		ProductType: input.ProductType,
		Draft:       draft,
		Schema:      section.Schema{},
		SchemaDraft: section.Schema{},
	}

	err := uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx product.Repository) error {
			slug, err := uc.freeSlug(ctx, tx, input.StoreID, base)
			if err != nil {
				return err
			}
			p.Slug = slug

			orders, err := tx.ListOrders(ctx, input.StoreID)
			if err != nil {
				return err
			}
			p.Order = ordering.NextOrder(orders)
			return tx.Create(ctx, p)
		})
	})
	if err != nil {
		uc.logger.Error("failed to create product", zap.String("store_id", input.StoreID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("product created", zap.String("id", p.ID), zap.String("slug", p.Slug), zap.Int("order", p.Order))
	return p, nil
}

func (uc *productUseCase) freeSlug(ctx context.Context, tx product.Repository, storeID, base string) (string, error) {
	for n := 0; n < maxSlugAttempts; n++ {
		candidate := product.SlugCandidate(base, n)
		unique, err := tx.IsSlugUnique(ctx, storeID, candidate)
		if err != nil {
			return "", err
		}
		if unique {
			return candidate, nil
		}
	}
	return "", apperror.Conflict("no free slug for %q", base)
}

func (uc *productUseCase) GetProduct(ctx context.Context, storeID, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, storeID, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("product name is required")
	}

	var p *model.Product
	err := uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx product.Repository) error {
			found, err := tx.FindByID(ctx, input.StoreID, input.ID)
			if err != nil {
				return err
			}
			found.Name = name
			if input.Draft != nil {
				found.Draft = *input.Draft
			}
			found.UpdatedAt = time.Now()
			if err := tx.Update(ctx, found); err != nil {
				return err
			}
			p = found
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, storeID, id string) error {
	return uc.ordering.Remove(ctx, ordering.KindProduct, storeID, id)
}

func (uc *productUseCase) AddCategory(ctx context.Context, input *dto.CategoryLinkInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("category name is required")
	}

	var cat *model.Category
	err := uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx product.Repository) error {
			if _, err := tx.FindByID(ctx, input.StoreID, input.ProductID); err != nil {
				return err
			}
			found, err := tx.FindCategoryByName(ctx, input.StoreID, name)
			switch {
			case apperror.IsNotFound(err):
				orders, err := tx.ListCategoryOrders(ctx, input.StoreID)
				if err != nil {
					return err
				}
				now := time.Now()
				found = &model.Category{
					BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
					StoreID:   input.StoreID,
					Name:      name,
					Order:     ordering.NextOrder(orders),
				}
				if err := tx.CreateCategory(ctx, found); err != nil {
					return err
				}
				uc.logger.Info("category created for product",
					zap.String("category_id", found.ID), zap.String("product_id", input.ProductID), zap.Int("order", found.Order))
			case err != nil:
				return err
			}
			cat = found
			return tx.LinkCategory(ctx, input.ProductID, found.ID)
		})
	})
	if err != nil {
		uc.logger.Error("failed to add product category", zap.String("product_id", input.ProductID), zap.Error(err))
		return nil, err
	}
	return cat, nil
}

// RemoveCategory unlinks the named category. The category itself is kept,
// and an unknown name is not an error.
func (uc *productUseCase) RemoveCategory(ctx context.Context, input *dto.CategoryLinkInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apperror.Validation("category name is required")
	}

	return uc.lock.Do(ctx, input.StoreID, func(ctx context.Context) error {
		return uc.repo.RunInTx(ctx, func(ctx context.Context, tx product.Repository) error {
			if _, err := tx.FindByID(ctx, input.StoreID, input.ProductID); err != nil {
				return err
			}
			cat, err := tx.FindCategoryByName(ctx, input.StoreID, name)
			if apperror.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			return tx.UnlinkCategory(ctx, input.ProductID, cat.ID)
		})
	})
}

func (uc *productUseCase) ListCategories(ctx context.Context, storeID, productID string) ([]model.Category, error) {
	if _, err := uc.repo.FindByID(ctx, storeID, productID); err != nil {
		return nil, err
	}
	return uc.repo.ListCategories(ctx, productID)
}
