package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlog.app/internal/config"
	"weatherlog.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()
	mockRedis := miniredis.RunT(t)

	t.Run("NilConfig", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(nil)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Nil(t, provider)
	})

	t.Run("None", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeNone})
		assert.NoError(t, err)
		assert.Nil(t, provider)
	})

	t.Run("MemoryCache", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCacheProvider{}, provider)
	})

	t.Run("RedisCache", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{
			Type: config.CacheTypeRedis,
			Redis: config.RedisConfig{
				Addr:         mockRedis.Addr(),
				DialTimeout:  5,
				ReadTimeout:  3,
				WriteTimeout: 3,
			},
		})
		require.NoError(t, err)
		assert.IsType(t, &RedisCacheProviderAdapter{}, provider)
	})

	t.Run("UnknownCacheType", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeUnknown})
		assert.True(t, errors.IsConfigurationError(err))
		assert.Nil(t, provider)
	})
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		value := []byte("test-value")
		require.NoError(t, provider.Set(ctx, "test-key", value, time.Minute))

		retrieved, err := provider.Get(ctx, "test-key")
		require.NoError(t, err)
		assert.Equal(t, value, retrieved)

		retrieved[0] = 'X'
		again, err := provider.Get(ctx, "test-key")
		require.NoError(t, err)
		assert.Equal(t, []byte("test-value"), again)
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := provider.Get(ctx, "non-existent-key")
		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "delete-key", []byte("v"), time.Minute))

		exists, err := provider.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, provider.Delete(ctx, "delete-key"))

		exists, err = provider.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		clocked := NewMemoryCacheProvider()
		clocked.now = func() time.Time { return now }

		require.NoError(t, clocked.Set(ctx, "ttl-key", []byte("v"), time.Minute))
		_, err := clocked.Get(ctx, "ttl-key")
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = clocked.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ClearKeepsForeignKeys", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "weatherlog:weather:2024-12-31", []byte("1"), time.Minute))
		require.NoError(t, provider.Set(ctx, "other-app:key", []byte("2"), time.Minute))
		require.NoError(t, provider.Clear(ctx))

		_, err := provider.Get(ctx, "weatherlog:weather:2024-12-31")
		assert.True(t, errors.IsNotFoundError(err))
		kept, err := provider.Get(ctx, "other-app:key")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), kept)
	})
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	_, err := provider.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("v"), 0)))
	assert.True(t, errors.IsValidationError(provider.Delete(ctx, "")))
	_, err = provider.Exists(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}
