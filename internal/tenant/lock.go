package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/pkg/cache"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LockConfig struct {
	TTL     time.Duration
	Retries int
	Backoff time.Duration
}

var DefaultLockConfig = LockConfig{TTL: 10 * time.Second, Retries: 3, Backoff: 100 * time.Millisecond}

// StoreLock serializes mutating work per store. Different stores never share a key.
type StoreLock struct {
	locker cache.Locker
	cfg    LockConfig
	logger logger.ZapLogger
}

func NewStoreLock(locker cache.Locker, cfg LockConfig, log logger.ZapLogger) *StoreLock {
	if cfg.Retries <= 0 {
		cfg.Retries = 1
	}
	return &StoreLock{locker: locker, cfg: cfg, logger: log}
}

func LockKey(storeID string) string {
	return fmt.Sprintf("lock:store:%s", storeID)
}

// Do runs fn while holding the store lock. When the lock cannot be taken
// within the configured retries a Conflict error is returned.
func (l *StoreLock) Do(ctx context.Context, storeID string, fn func(ctx context.Context) error) error {
	key := LockKey(storeID)
	value := uuid.New().String()

	acquired := false
	for i := 0; i < l.cfg.Retries; i++ {
		ok, err := l.locker.AcquireLock(ctx, key, value, l.cfg.TTL)
		if err != nil {
			l.logger.Error("failed to acquire store lock", zap.String("store_id", storeID), zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		if i < l.cfg.Retries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(l.cfg.Backoff):
			}
		}
	}
	if !acquired {
		return apperror.Conflict("store %s is busy, please try again", storeID)
	}

	defer func() {
		if err := l.locker.ReleaseLock(context.WithoutCancel(ctx), key, value); err != nil {
			l.logger.Warn("failed to release store lock", zap.String("store_id", storeID), zap.Error(err))
		}
	}()

	return fn(ctx)
}
