package handler

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	pb "github.com/fekuna/omnipos-storefront-service/pkg/pb/builderv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type OrderingHandler struct {
	uc     ordering.UseCase
	logger logger.ZapLogger
}

func NewOrderingHandler(uc ordering.UseCase, log logger.ZapLogger) *OrderingHandler {
	return &OrderingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderingHandler) MoveOrderable(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	storeID, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}

	kind, err := pb.String(req, "kind")
	if err != nil {
		return nil, err
	}
	id, err := pb.ID(req, "id")
	if err != nil {
		return nil, err
	}
	position, err := pb.Int(req, "position")
	if err != nil {
		return nil, err
	}
	parentID, parentSet, err := pb.OptionalID(req, "parent_id")
	if err != nil {
		return nil, err
	}

	res, err := h.uc.Move(ctx, &dto.MoveInput{
		StoreID:   storeID,
		Kind:      kind,
		ID:        id,
		Position:  position,
		ParentSet: parentSet,
		ParentID:  parentID,
	})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}

	out, err := pb.FromJSON(map[string]any{"position": res.Position, "items": res.Items})
	if err != nil {
		h.logger.Error("failed to encode move result", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
