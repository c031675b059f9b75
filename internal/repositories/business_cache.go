package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
)

// ErrCacheMiss is returned when a business is not cached.
var ErrCacheMiss = errors.New("business not found in cache")

// BusinessCacheRepository caches single business lookups in Redis
type BusinessCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached businesses
}

// NewBusinessCacheRepository creates a new cache repository with the given TTL
func NewBusinessCacheRepository(client *redis.Client, expiration time.Duration) *BusinessCacheRepository {
	return &BusinessCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func businessKey(businessID int64) string {
	return fmt.Sprintf("business:%d", businessID)
}

// Get returns the cached business or ErrCacheMiss.
func (r *BusinessCacheRepository) Get(ctx context.Context, businessID int64) (*models.BusinessDB, error) {
	key := businessKey(businessID)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.FromContext(ctx).Debugw("cache get", "key", key, "hit", err == nil, "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var business models.BusinessDB
	if err := json.Unmarshal(val, &business); err != nil {
		return nil, err
	}
	return &business, nil
}

// Set caches the business under its id.
func (r *BusinessCacheRepository) Set(ctx context.Context, business *models.BusinessDB) error {
	key := businessKey(business.BusinessID)

	data, err := json.Marshal(business)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.FromContext(ctx).Debugw("cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}

// Delete evicts the business from the cache.
func (r *BusinessCacheRepository) Delete(ctx context.Context, businessID int64) error {
	key := businessKey(businessID)

	err := r.client.Del(ctx, key).Err()
	logger.FromContext(ctx).Debugw("cache delete", "key", key, "error", err)
	return err
}
