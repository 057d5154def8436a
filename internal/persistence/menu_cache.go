package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yumyum-spot/menu-service/internal/domain"
)

const (
	menuListKey = "menu:list"
	menuListTTL = 5 * time.Minute
)

// MenuListCache caches the menu listing in Redis. Cache failures degrade to
// store reads, never to request failures.
type MenuListCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewMenuListCache wraps the shared Redis connection.
func NewMenuListCache(r *Redis, logger *zap.Logger) *MenuListCache {
	if r == nil || r.Client == nil {
		return nil
	}
	return &MenuListCache{client: r.Client, logger: logger}
}

// GetList returns the cached listing when present.
func (c *MenuListCache) GetList(ctx context.Context) ([]domain.MenuItem, bool) {
	raw, err := c.client.Get(ctx, menuListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("menu cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("menu cache payload corrupt; dropping", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

// SetList stores the listing with a short TTL.
func (c *MenuListCache) SetList(ctx context.Context, items []domain.MenuItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("menu cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, menuListKey, raw, menuListTTL).Err(); err != nil {
		c.logger.Warn("menu cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing.
func (c *MenuListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, menuListKey).Err(); err != nil {
		c.logger.Warn("menu cache invalidate failed", zap.Error(err))
	}
}
