package external

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

const weatherCacheKeyPrefix = cacheKeyNamespace + "weather:"

// CachedWeatherStore puts a CacheProvider in front of a WeatherStore.
// Reads go cache first, then the store, populating the cache on a store hit.
// Writes go to the store and then invalidate the cached day.
// Cache failures are logged and never fail the caller.
//
// Each day carries a generation bumped by Save. A read only populates the cache
// if no Save for that day completed while it was reading the store, so a slow
// reader cannot put a superseded row back after the invalidation.
type CachedWeatherStore struct {
	store   ports.WeatherStore
	cache   ports.CacheProvider
	metrics ports.CacheMetrics
	ttl     time.Duration
	logger  ports.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

type CachedWeatherStoreParams struct {
	Store   ports.WeatherStore
	Cache   ports.CacheProvider
	Metrics ports.CacheMetrics
	TTL     time.Duration
	Logger  ports.Logger
}

func NewCachedWeatherStore(params CachedWeatherStoreParams) *CachedWeatherStore {
	ttl := params.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedWeatherStore{
		store:   params.Store,
		cache:   params.Cache,
		metrics: params.Metrics,
		ttl:     ttl,
		logger:  params.Logger,

		generations: make(map[string]uint64),
	}
}

func weatherCacheKey(date time.Time) string {
	return weatherCacheKeyPrefix + calendar.Format(date)
}

func (s *CachedWeatherStore) FindByDate(ctx context.Context, date time.Time) (*ports.WeatherRecordData, error) {
	key := weatherCacheKey(date)

	if record, ok := s.fromCache(ctx, key); ok {
		s.recordHit()
		return record, nil
	}
	s.recordMiss()

	generation := s.generation(key)

	record, err := s.store.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, record, generation)
	return record, nil
}

func (s *CachedWeatherStore) Save(ctx context.Context, record *ports.WeatherRecordData) error {
	if err := s.store.Save(ctx, record); err != nil {
		return err
	}

	s.invalidate(ctx, weatherCacheKey(record.Date))
	return nil
}

func (s *CachedWeatherStore) generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key]
}

func (s *CachedWeatherStore) invalidate(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generations[key]++
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to invalidate cached weather",
			ports.F("key", key),
			ports.F("error", err))
	}
}

func (s *CachedWeatherStore) fromCache(ctx context.Context, key string) (*ports.WeatherRecordData, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			s.logger.Warn("Weather cache read failed, falling back to store",
				ports.F("key", key),
				ports.F("error", err))
		}
		return nil, false
	}

	var record ports.WeatherRecordData
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warn("Discarding undecodable cached weather", ports.F("key", key), ports.F("error", err))
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	return &record, true
}

// toCache stores record unless the day was saved after generation was read.
// The check and the write share the lock with invalidate.
func (s *CachedWeatherStore) toCache(ctx context.Context, key string, record *ports.WeatherRecordData, generation uint64) {
	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Warn("Failed to encode weather for cache", ports.F("key", key), ports.F("error", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generations[key] != generation {
		s.logger.Debug("Skipping cache fill for a day saved during the read", ports.F("key", key))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("Weather cache write failed", ports.F("key", key), ports.F("error", err))
	}
}

func (s *CachedWeatherStore) recordHit() {
	if s.metrics != nil {
		s.metrics.RecordHit()
	}
}

func (s *CachedWeatherStore) recordMiss() {
	if s.metrics != nil {
		s.metrics.RecordMiss()
	}
}
