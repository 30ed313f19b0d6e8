package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// ContextInterceptor copies the listed metadata headers into the request
// context through set, so handlers do not parse metadata themselves.
func ContextInterceptor(header string, set func(ctx context.Context, value string) context.Context) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(header); len(vals) > 0 && vals[0] != "" {
				ctx = set(ctx, vals[0])
			}
		}
		return handler(ctx, req)
	}
}
