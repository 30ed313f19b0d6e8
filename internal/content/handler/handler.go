package handler

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/content"
	"github.com/fekuna/omnipos-storefront-service/internal/content/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	pb "github.com/fekuna/omnipos-storefront-service/pkg/pb/builderv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type ContentHandler struct {
	uc     content.UseCase
	logger logger.ZapLogger
}

func NewContentHandler(uc content.UseCase, log logger.ZapLogger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: log,
	}
}


func (h *ContentHandler) encode(v any) (*structpb.Struct, error) {
	out, err := pb.FromJSON(v)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *ContentHandler) Navigate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	itemID, err := pb.ID(req, "item_id")
	if err != nil {
		return nil, err
	}

	n, err := h.uc.Navigate(ctx, store, itemID)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(n)
}

func (h *ContentHandler) ContentTree(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	productID, err := pb.ID(req, "product_id")
	if err != nil {
		return nil, err
	}

	items, err := h.uc.Tree(ctx, store, productID)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(map[string]any{"items": items})
}

func (h *ContentHandler) CreateContentItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	productID, err := pb.ID(req, "product_id")
	if err != nil {
		return nil, err
	}
	contentType, err := pb.String(req, "content_type")
	if err != nil {
		return nil, err
	}
	title, err := pb.String(req, "title")
	if err != nil {
		return nil, err
	}
	parentID, _, err := pb.OptionalID(req, "parent_id")
	if err != nil {
		return nil, err
	}

	item, err := h.uc.CreateItem(ctx, &dto.CreateItemInput{
		StoreID:     store,
		ProductID:   productID,
		ParentID:    parentID,
		ContentType: contentType,
		Title:       title,
	})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(item)
}

func (h *ContentHandler) DeleteContentItem(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	store, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}
	itemID, err := pb.ID(req, "item_id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeleteItem(ctx, store, itemID); err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return &emptypb.Empty{}, nil
}
