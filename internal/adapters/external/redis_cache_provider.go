package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherlog.app/internal/config"
	"weatherlog.app/pkg/errors"
)

const (
	// cacheKeyNamespace prefixes every key the service writes; Clear only touches this namespace
	cacheKeyNamespace = "weatherlog:"
	redisScanBatch    = 100
	redisConnectLimit = 5 * time.Second
)

// RedisCacheProviderAdapter implements CacheProvider on a Redis database
type RedisCacheProviderAdapter struct {
	client *redis.Client
}

// NewRedisCacheProviderAdapter connects to Redis and pings it once.
// An unreachable server is a configuration error so startup fails fast.
func NewRedisCacheProviderAdapter(cfg *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectLimit)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewConfigurationError("failed to connect to Redis at "+cfg.Addr, err)
	}

	return &RedisCacheProviderAdapter{client: client}, nil
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if err := requireKey(key); err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, errors.NewNotFoundError("cache miss")
	}
	if err != nil {
		return nil, errors.NewDatabaseError("redis get failed", err)
	}
	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.NewDatabaseError("redis set failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if err := requireKey(key); err != nil {
		return err
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.NewDatabaseError("redis delete failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if err := requireKey(key); err != nil {
		return false, err
	}

	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.NewDatabaseError("redis exists failed", err)
	}
	return count > 0, nil
}

// Clear removes every key under the service namespace. Other keys in the
// same Redis database are left alone. The scan completes before anything is
// deleted so the cursor never walks a keyspace that is shrinking under it.
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	var keys []string
	iter := r.client.Scan(ctx, 0, cacheKeyNamespace+"*", redisScanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.NewDatabaseError("redis scan failed", err)
	}

	for start := 0; start < len(keys); start += redisScanBatch {
		end := start + redisScanBatch
		if end > len(keys) {
			end = len(keys)
		}
		if err := r.client.Del(ctx, keys[start:end]...).Err(); err != nil {
			return errors.NewDatabaseError("redis clear failed", err)
		}
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewDatabaseError("failed to close Redis connection", err)
	}
	return nil
}

// Ping is used by the cache health checker
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewDatabaseError("redis ping failed", err)
	}
	return nil
}

func requireKey(key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	return nil
}

func validateEntry(key string, value []byte, ttl time.Duration) error {
	if err := requireKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}
