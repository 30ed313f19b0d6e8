package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "catalog.events", cfg.Kafka.Topic)
	assert.Equal(t, 10*time.Second, cfg.Lock.TTL)
	assert.Equal(t, 3, cfg.Lock.Retries)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("STORE_LOCK_BACKOFF", "250ms")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 250*time.Millisecond, cfg.Lock.Backoff)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.Logger.DisableCaller)
}
