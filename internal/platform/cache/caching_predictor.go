// Package cache provides caching implementations for repository and usecase interfaces.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"carprice_backend/internal/feature/pricing/domain/entity"
)

// Predictor is the prediction pipeline as seen by this decorator.
type Predictor interface {
	Predict(ctx context.Context, listing *entity.Listing) (*entity.Prediction, error)
}

// CachingPredictor decorates a Predictor with Redis caching.
// The pipeline is a pure function over (listing, loaded model), so identical
// listings can safely share a cached result. Caching is best effort: a nil or
// failing Redis client degrades to calling the inner predictor directly.
type CachingPredictor struct {
	inner     Predictor
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingPredictor decorates a Predictor with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "predictions".
func NewCachingPredictor(rdb *redis.Client, ttl time.Duration, inner Predictor, namespace string) *CachingPredictor {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "predictions"
	}
	return &CachingPredictor{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Predict returns a cached prediction when available, otherwise delegates to
// the inner pipeline and stores the result.
func (c *CachingPredictor) Predict(ctx context.Context, listing *entity.Listing) (*entity.Prediction, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Predict(ctx, listing)
	}

	key, err := c.cacheKey(listing)
	if err != nil {
		return c.inner.Predict(ctx, listing)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Prediction
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the pipeline
	out, err := c.inner.Predict(ctx, listing)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey hashes the full listing so any attribute change misses the cache.
func (c *CachingPredictor) cacheKey(listing *entity.Listing) (string, error) {
	b, err := json.Marshal(listing)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:%s", c.namespace, hex.EncodeToString(sum[:])), nil
}
