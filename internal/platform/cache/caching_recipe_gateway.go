// Package cache provides caching implementations for gateway interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"recipe_backend/internal/feature/recipes/domain/entity"
	"recipe_backend/internal/feature/recipes/usecase"
)

// CachingRecipeGateway decorates a RecipeGateway with Redis caching of detail
// lookups. It implements the decorator pattern, transparently adding caching
// without modifying the underlying gateway.
//
// Only GetDetails is cached: detail records for a given external id are
// stable over a short horizon, while Search must stay a live round-trip
// (the no-query path returns random recipes).
type CachingRecipeGateway struct {
	inner     usecase.RecipeGateway
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingRecipeGatewayがRecipeGatewayを実装していることをコンパイル時に検証します。
var _ usecase.RecipeGateway = (*CachingRecipeGateway)(nil)

// NewCachingRecipeGateway decorates a RecipeGateway with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "recipes".
func NewCachingRecipeGateway(rdb *redis.Client, ttl time.Duration, inner usecase.RecipeGateway, namespace string) *CachingRecipeGateway {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recipes"
	}
	return &CachingRecipeGateway{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search always delegates to the underlying gateway.
func (c *CachingRecipeGateway) Search(ctx context.Context, query string) ([]entity.RecipeSummary, error) {
	return c.inner.Search(ctx, query)
}

// GetDetails retrieves recipe details, checking cache first then falling back
// to the upstream API. Not-found results are never cached.
func (c *CachingRecipeGateway) GetDetails(ctx context.Context, externalID int64) (*entity.RecipeDetail, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetDetails(ctx, externalID)
	}

	key := c.cacheKey(externalID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.RecipeDetail
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to upstream
	out, err := c.inner.GetDetails(ctx, externalID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific external recipe id.
func (c *CachingRecipeGateway) cacheKey(externalID int64) string {
	return fmt.Sprintf("%s:details:%d", c.namespace, externalID)
}
