package handler

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/site"
	"github.com/fekuna/omnipos-storefront-service/internal/site/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	pb "github.com/fekuna/omnipos-storefront-service/pkg/pb/builderv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type SiteHandler struct {
	uc     site.UseCase
	logger logger.ZapLogger
}

func NewSiteHandler(uc site.UseCase, log logger.ZapLogger) *SiteHandler {
	return &SiteHandler{
		uc:     uc,
		logger: log,
	}
}

// target resolves the tenant and the owner named by owner_kind/owner_id.
func target(ctx context.Context, req *structpb.Struct) (string, dto.Owner, error) {
	storeID, err := auth.RequireStoreID(ctx)
	if err != nil {
		return "", dto.Owner{}, err
	}
	kind, err := pb.String(req, "owner_kind")
	if err != nil {
		return "", dto.Owner{}, err
	}
	id, _, err := pb.OptionalID(req, "owner_id")
	if err != nil {
		return "", dto.Owner{}, err
	}
	owner, err := dto.ParseOwner(kind, id)
	if err != nil {
		return "", dto.Owner{}, apperror.ToGRPC(err)
	}
	return storeID, owner, nil
}

func (h *SiteHandler) encode(v any) (*structpb.Struct, error) {
	out, err := pb.FromJSON(v)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *SiteHandler) AddSection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	storeID, owner, err := target(ctx, req)
	if err != nil {
		return nil, err
	}
	sectionType, err := pb.String(req, "section_type")
	if err != nil {
		return nil, err
	}

	sec, err := h.uc.AddSection(ctx, &dto.AddSectionInput{StoreID: storeID, Owner: owner, SectionType: sectionType})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(sec)
}

func (h *SiteHandler) UpdateSection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	storeID, owner, err := target(ctx, req)
	if err != nil {
		return nil, err
	}
	raw, err := pb.Object(req, "section")
	if err != nil {
		return nil, err
	}

	sec, err := h.uc.UpdateSection(ctx, &dto.UpdateSectionInput{StoreID: storeID, Owner: owner, Document: raw})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(sec)
}

func (h *SiteHandler) DeleteSection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	storeID, owner, err := target(ctx, req)
	if err != nil {
		return nil, err
	}
	sectionID, err := pb.String(req, "section_id")
	if err != nil {
		return nil, err
	}

	sec, err := h.uc.DeleteSection(ctx, &dto.DeleteSectionInput{StoreID: storeID, Owner: owner, SectionID: sectionID})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(sec)
}

func (h *SiteHandler) MoveSection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	storeID, owner, err := target(ctx, req)
	if err != nil {
		return nil, err
	}
	src, err := pb.Int(req, "source_index")
	if err != nil {
		return nil, err
	}
	dst, err := pb.Int(req, "destination_index")
	if err != nil {
		return nil, err
	}

	sections, err := h.uc.MoveSection(ctx, &dto.MoveSectionInput{
		StoreID:          storeID,
		Owner:            owner,
		SourceIndex:      src,
		DestinationIndex: dst,
	})
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(map[string]any{"sections": sections})
}

func (h *SiteHandler) GetDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	storeID, owner, err := target(ctx, req)
	if err != nil {
		return nil, err
	}

	sections, err := h.uc.GetDraft(ctx, storeID, owner)
	if err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return h.encode(map[string]any{"sections": sections})
}

func (h *SiteHandler) Publish(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	storeID, err := auth.RequireStoreID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := h.uc.Publish(ctx, storeID); err != nil {
		return nil, apperror.ToGRPC(err)
	}
	return &emptypb.Empty{}, nil
}
