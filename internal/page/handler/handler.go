package handler

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/page"
	"github.com/fekuna/omnipos-storefront-service/internal/page/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	pb "github.com/fekuna/omnipos-storefront-service/pkg/pb/builderv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type PageHandler struct {
	uc     page.UseCase
	logger logger.ZapLogger
}

func NewPageHandler(uc page.UseCase, log logger.ZapLogger) *PageHandler {
	return &PageHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PageHandler) encode(v any) (*structpb.Struct, error) {
	out, err := pb.FromJSON(v)
	if err != nil {
		h.logger.Error("failed to encode page response", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *PageHandler) CreatePage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	slug, err := pb.String(req, "slug")
	if err != nil {
		return nil, err
	}
	title, _, err := pb.OptionalString(req, "title")
	if err != nil {
		return nil, err
	}
	published, err := pb.OptionalBool(req, "published")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.CreatePage(ctx, &dto.CreatePageInput{StoreID: store, Slug: slug, Title: title, Published: published})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(p)
}

func (h *PageHandler) GetPage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.GetPage(ctx, store, id)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(p)
}

func (h *PageHandler) ListPages(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	search, _, err := pb.OptionalString(req, "search")
	if err != nil {
		return nil, err
	}
	published, err := pb.OptionalBool(req, "published")
	if err != nil {
		return nil, err
	}
	pageNum, err := pb.OptionalInt(req, "page", 1)
	if err != nil {
		return nil, err
	}
	pageSize, err := pb.OptionalInt(req, "page_size", 0)
	if err != nil {
		return nil, err
	}

	filters := &dto.PageFilters{StoreID: store, Published: published, Page: pageNum, PageSize: pageSize}
	if search != nil {
		filters.Search = *search
	}

	pages, total, err := h.uc.ListPages(ctx, filters)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(map[string]any{"pages": pages, "total": total})
}

func (h *PageHandler) UpdatePage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}
	slug, err := pb.String(req, "slug")
	if err != nil {
		return nil, err
	}
	title, _, err := pb.OptionalString(req, "title")
	if err != nil {
		return nil, err
	}
	published, err := pb.OptionalBool(req, "published")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.UpdatePage(ctx, &dto.UpdatePageInput{ID: id, StoreID: store, Slug: slug, Title: title, Published: published})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(p)
}

func (h *PageHandler) DeletePage(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeletePage(ctx, store, id); err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return &emptypb.Empty{}, nil
}
