package handler

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/category"
	"github.com/fekuna/omnipos-storefront-service/internal/category/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	pb "github.com/fekuna/omnipos-storefront-service/pkg/pb/builderv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}


func (h *CategoryHandler) encode(v any) (*structpb.Struct, error) {
	out, err := pb.FromJSON(v)
	if err != nil {
		h.logger.Error("failed to encode category response", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := pb.String(req, "name")
	if err != nil {
		return nil, err
	}
	description, _, err := pb.OptionalString(req, "description")
	if err != nil {
		return nil, err
	}

	cat, err := h.uc.CreateCategory(ctx, &dto.CreateCategoryInput{StoreID: store, Name: name, Description: description})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(cat)
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}

	cat, err := h.uc.GetCategory(ctx, store, id)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(cat)
}

func (h *CategoryHandler) ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	search, _, err := pb.OptionalString(req, "search")
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

	filters := &dto.CategoryFilters{StoreID: store, Page: page, PageSize: pageSize}
	if search != nil {
		filters.Search = *search
	}

	categories, total, err := h.uc.ListCategories(ctx, filters)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(map[string]any{"categories": categories, "total": total})
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
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
	description, _, err := pb.OptionalString(req, "description")
	if err != nil {
		return nil, err
	}

	cat, err := h.uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: id, StoreID: store, Name: name, Description: description})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(cat)
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeleteCategory(ctx, store, id); err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return &emptypb.Empty{}, nil
}
