package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCacheService(t *testing.T) {
	t.Parallel()

	service := NewMemoryCacheService()
	ctx := context.Background()

	_, ok := service.Get(ctx, "v1:catalog:mew")
	require.False(t, ok)

	payload := []byte(`{"name":"mew"}`)
	service.Set(ctx, "v1:catalog:mew", payload, time.Hour)

	// Stored bytes are detached from the caller's buffer.
	payload[2] = 'X'

	value, ok := service.Get(ctx, "v1:catalog:mew")
	require.True(t, ok)
	require.Equal(t, `{"name":"mew"}`, string(value))

	require.NoError(t, service.HealthCheck(ctx))
	require.NoError(t, service.Close())
}

func TestMemoryCacheServiceExpiry(t *testing.T) {
	t.Parallel()

	service := NewMemoryCacheService()
	ctx := context.Background()

	service.Set(ctx, "v1:style:yoda:abc", []byte(`{"text":"hm"}`), 10*time.Millisecond)
	require.Eventually(t, func() bool {
		_, ok := service.Get(ctx, "v1:style:yoda:abc")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestNoOpCacheService(t *testing.T) {
	t.Parallel()

	service := NewNoOpCacheService()
	ctx := context.Background()

	service.Set(ctx, "k", []byte("v"), time.Hour)
	_, ok := service.Get(ctx, "k")
	require.False(t, ok)
	require.NoError(t, service.HealthCheck(ctx))
}
