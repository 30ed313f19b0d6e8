package middleware

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type key struct{}

func set(ctx context.Context, v string) context.Context { return context.WithValue(ctx, key{}, v) }

func TestContextInterceptor(t *testing.T) {
	icpt := ContextInterceptor("x-store-id", set)
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/M"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-store-id", "s1"))
	got, err := icpt(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		return ctx.Value(key{}), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", got)

	got, err = icpt(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		return ctx.Value(key{}), nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	icpt := LoggingInterceptor(logger.NewNop())
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/M"}

	resp, err := icpt(context.Background(), "req", info, func(context.Context, any) (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = icpt(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "gone")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
