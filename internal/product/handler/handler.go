package handler

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/product"
	"github.com/fekuna/omnipos-storefront-service/internal/product/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	pb "github.com/fekuna/omnipos-storefront-service/pkg/pb/builderv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}


func (h *ProductHandler) encode(v any) (*structpb.Struct, error) {
	out, err := pb.FromJSON(v)
	if err != nil {
		h.logger.Error("failed to encode product response", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := pb.String(req, "name")
	if err != nil {
		return nil, err
	}
	productType, err := pb.String(req, "product_type")
	if err != nil {
		return nil, err
	}
	draft, err := pb.OptionalBool(req, "draft")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.CreateProduct(ctx, &dto.CreateProductInput{
		StoreID:     store,
		Name:        name,
		ProductType: productType,
		Draft:       draft,
	})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(p)
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.GetProduct(ctx, store, id)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(p)
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	productType, _, err := pb.OptionalString(req, "product_type")
	if err != nil {
		return nil, err
	}
	search, _, err := pb.OptionalString(req, "search")
	if err != nil {
		return nil, err
	}
	draft, err := pb.OptionalBool(req, "draft")
	if err != nil {
		return nil, err
	}
	page, err := pb.OptionalInt(req, "page", 1)
	if err != nil {
		return nil, err
	}
	pageSize, err := pb.OptionalInt(req, "page_size", 0)
	if err != nil {
		return nil, err
	}

	categoryID, _, err := pb.OptionalID(req, "category_id")
	if err != nil {
		return nil, err
	}

	filters := &dto.ProductFilters{StoreID: store, Draft: draft, Page: page, PageSize: pageSize}
	if categoryID != nil {
		filters.CategoryID = *categoryID
	}
	if productType != nil {
		filters.ProductType = *productType
	}
	if search != nil {
		filters.Search = *search
	}

	products, total, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(map[string]any{"products": products, "total": total})
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}
	name, err := pb.String(req, "name")
	if err != nil {
		return nil, err
	}
	draft, err := pb.OptionalBool(req, "draft")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: id, StoreID: store, Name: name, Draft: draft})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(p)
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeleteProduct(ctx, store, id); err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *ProductHandler) categoryLink(ctx context.Context, req *structpb.Struct) (*dto.CategoryLinkInput, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}
	name, err := pb.String(req, "name")
	if err != nil {
		return nil, err
	}
	return &dto.CategoryLinkInput{StoreID: store, ProductID: id, Name: name}, nil
}

func (h *ProductHandler) AddProductCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := h.categoryLink(ctx, req)
	if err != nil {
		return nil, err
	}

	cat, err := h.uc.AddCategory(ctx, input)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(cat)
}

func (h *ProductHandler) RemoveProductCategory(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	input, err := h.categoryLink(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := h.uc.RemoveCategory(ctx, input); err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *ProductHandler) ListProductCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}

	categories, err := h.uc.ListCategories(ctx, store, id)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(map[string]any{"categories": categories})
}
