// Package builderv1 describes the storefront.builder.v1.BuilderService gRPC
// service. Messages are google.protobuf.Struct documents, so the service needs
// no generated message types; the descriptor below takes the place of
// protoc-gen-go-grpc output.
package builderv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "storefront.builder.v1.BuilderService"

type BuilderServiceServer interface {
	MoveOrderable(context.Context, *structpb.Struct) (*structpb.Struct, error)

	AddSection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteSection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MoveSection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Publish(context.Context, *emptypb.Empty) (*emptypb.Empty, error)

	Navigate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ContentTree(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateContentItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteContentItem(context.Context, *structpb.Struct) (*emptypb.Empty, error)

	CreateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error)

	CreateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCategory(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	AddProductCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveProductCategory(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	ListProductCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreatePage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListPages(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdatePage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeletePage(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

// UnimplementedBuilderServiceServer can be embedded to stay forward compatible.
type UnimplementedBuilderServiceServer struct{}

func (UnimplementedBuilderServiceServer) MoveOrderable(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method MoveOrderable not implemented")
}
func (UnimplementedBuilderServiceServer) AddSection(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddSection not implemented")
}
func (UnimplementedBuilderServiceServer) UpdateSection(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSection not implemented")
}
func (UnimplementedBuilderServiceServer) DeleteSection(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSection not implemented")
}
func (UnimplementedBuilderServiceServer) MoveSection(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method MoveSection not implemented")
}
func (UnimplementedBuilderServiceServer) GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDraft not implemented")
}
func (UnimplementedBuilderServiceServer) Publish(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Publish not implemented")
}
func (UnimplementedBuilderServiceServer) Navigate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Navigate not implemented")
}
func (UnimplementedBuilderServiceServer) ContentTree(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ContentTree not implemented")
}
func (UnimplementedBuilderServiceServer) CreateContentItem(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateContentItem not implemented")
}
func (UnimplementedBuilderServiceServer) DeleteContentItem(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteContentItem not implemented")
}
func (UnimplementedBuilderServiceServer) CreateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}
func (UnimplementedBuilderServiceServer) GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedBuilderServiceServer) ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedBuilderServiceServer) UpdateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProduct not implemented")
}
func (UnimplementedBuilderServiceServer) DeleteProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}
func (UnimplementedBuilderServiceServer) CreateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCategory not implemented")
}
func (UnimplementedBuilderServiceServer) GetCategory(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCategory not implemented")
}
func (UnimplementedBuilderServiceServer) ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedBuilderServiceServer) UpdateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCategory not implemented")
}
func (UnimplementedBuilderServiceServer) DeleteCategory(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCategory not implemented")
}
func (UnimplementedBuilderServiceServer) AddProductCategory(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddProductCategory not implemented")
}
func (UnimplementedBuilderServiceServer) RemoveProductCategory(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveProductCategory not implemented")
}
func (UnimplementedBuilderServiceServer) ListProductCategories(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProductCategories not implemented")
}
func (UnimplementedBuilderServiceServer) CreatePage(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePage not implemented")
}
func (UnimplementedBuilderServiceServer) GetPage(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPage not implemented")
}
func (UnimplementedBuilderServiceServer) ListPages(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPages not implemented")
}
func (UnimplementedBuilderServiceServer) UpdatePage(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePage not implemented")
}
func (UnimplementedBuilderServiceServer) DeletePage(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePage not implemented")
}

func RegisterBuilderServiceServer(s grpc.ServiceRegistrar, srv BuilderServiceServer) {
	s.RegisterService(&BuilderService_ServiceDesc, srv)
}

// unary adapts a typed method into a grpc.MethodHandler.
func unary[Req any, Resp any](name string, newReq func() *Req, call func(BuilderServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BuilderServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BuilderServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func newStruct() *structpb.Struct { return &structpb.Struct{} }
func newEmpty() *emptypb.Empty    { return &emptypb.Empty{} }

var BuilderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BuilderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("MoveOrderable", newStruct, BuilderServiceServer.MoveOrderable),
		unary("AddSection", newStruct, BuilderServiceServer.AddSection),
		unary("UpdateSection", newStruct, BuilderServiceServer.UpdateSection),
		unary("DeleteSection", newStruct, BuilderServiceServer.DeleteSection),
		unary("MoveSection", newStruct, BuilderServiceServer.MoveSection),
		unary("GetDraft", newStruct, BuilderServiceServer.GetDraft),
		unary("Publish", newEmpty, BuilderServiceServer.Publish),
		unary("Navigate", newStruct, BuilderServiceServer.Navigate),
		unary("ContentTree", newStruct, BuilderServiceServer.ContentTree),
		unary("CreateContentItem", newStruct, BuilderServiceServer.CreateContentItem),
		unary("DeleteContentItem", newStruct, BuilderServiceServer.DeleteContentItem),
		unary("CreateProduct", newStruct, BuilderServiceServer.CreateProduct),
		unary("GetProduct", newStruct, BuilderServiceServer.GetProduct),
		unary("ListProducts", newStruct, BuilderServiceServer.ListProducts),
		unary("UpdateProduct", newStruct, BuilderServiceServer.UpdateProduct),
		unary("DeleteProduct", newStruct, BuilderServiceServer.DeleteProduct),
		unary("CreateCategory", newStruct, BuilderServiceServer.CreateCategory),
		unary("GetCategory", newStruct, BuilderServiceServer.GetCategory),
		unary("ListCategories", newStruct, BuilderServiceServer.ListCategories),
		unary("UpdateCategory", newStruct, BuilderServiceServer.UpdateCategory),
		unary("DeleteCategory", newStruct, BuilderServiceServer.DeleteCategory),
		unary("AddProductCategory", newStruct, BuilderServiceServer.AddProductCategory),
		unary("RemoveProductCategory", newStruct, BuilderServiceServer.RemoveProductCategory),
		unary("ListProductCategories", newStruct, BuilderServiceServer.ListProductCategories),
		unary("CreatePage", newStruct, BuilderServiceServer.CreatePage),
		unary("GetPage", newStruct, BuilderServiceServer.GetPage),
		unary("ListPages", newStruct, BuilderServiceServer.ListPages),
		unary("UpdatePage", newStruct, BuilderServiceServer.UpdatePage),
		unary("DeletePage", newStruct, BuilderServiceServer.DeletePage),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/builder/v1/builder.proto",
}
