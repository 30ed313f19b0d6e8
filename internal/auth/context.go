package auth

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const storeIDKey contextKey = "store_id"

// StoreIDHeader carries the tenant resolved by the gateway in front of this service.
const StoreIDHeader = "x-store-id"

func WithStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, storeIDKey, storeID)
}

// GetStoreID returns the current tenant, preferring the value placed by the
// interceptor and falling back to incoming metadata.
func GetStoreID(ctx context.Context) string {
	if val, ok := ctx.Value(storeIDKey).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(StoreIDHeader); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// RequireStoreID returns the current tenant or an Unauthenticated status when
// it is missing or is not a store id.
func RequireStoreID(ctx context.Context) (string, error) {
	id := GetStoreID(ctx)
	if id == "" {
		return "", status.Error(codes.Unauthenticated, "missing store context")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", status.Error(codes.Unauthenticated, "invalid store context")
	}
	return id, nil
}
