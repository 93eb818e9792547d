// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coffeeshop_backend/internal/feature/menu/domain/entity"
	"coffeeshop_backend/internal/feature/menu/usecase"
)

// CachingMenuRepository decorates a MenuRepository with Redis caching of
// per-owner menu lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
type CachingMenuRepository struct {
	inner     usecase.MenuRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMenuRepository decorates a MenuRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "menu".
func NewCachingMenuRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MenuRepository, namespace string) *CachingMenuRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "menu"
	}
	return &CachingMenuRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the item and invalidates the owner's cached list.
func (c *CachingMenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx, item.UserID)
	return nil
}

// ListByUser retrieves the owner's items, checking cache first then falling
// back to the database.
func (c *CachingMenuRepository) ListByUser(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByUser(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.MenuItem
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// DeleteByUserAndItem removes the rows and invalidates the owner's cached list.
func (c *CachingMenuRepository) DeleteByUserAndItem(ctx context.Context, userID uint, item string) (int64, error) {
	deleted, err := c.inner.DeleteByUserAndItem(ctx, userID, item)
	if err != nil {
		return deleted, err
	}
	if deleted > 0 {
		c.invalidate(ctx, userID)
	}
	return deleted, nil
}

// cacheKey generates the cache key for one owner's menu list.
func (c *CachingMenuRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, userID)
}

// invalidate drops the owner's cached list. Best effort: cache failures
// never fail the request.
func (c *CachingMenuRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}
