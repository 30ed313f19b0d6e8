// Package tenanttest provides an in-memory store lock for tests.
package tenanttest

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
)

type MemLocker struct {
	mu   sync.Mutex
	Held map[string]string
}

func NewMemLocker() *MemLocker {
	return &MemLocker{Held: map[string]string{}}
}

func (m *MemLocker) AcquireLock(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Held[key]; ok {
		return false, nil
	}
	m.Held[key] = value
	return true, nil
}

func (m *MemLocker) ReleaseLock(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Held[key] == value {
		delete(m.Held, key)
	}
	return nil
}

// NewStoreLock returns a StoreLock over a fresh MemLocker with no backoff.
func NewStoreLock() *tenant.StoreLock {
	return tenant.NewStoreLock(NewMemLocker(), tenant.LockConfig{TTL: time.Second, Retries: 1}, logger.NewNop())
}
