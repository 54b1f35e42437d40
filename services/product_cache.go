package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront-backend/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix = "product:detail:"
	productCacheTTL    = 5 * time.Minute
)

// ProductCache is a read-through cache for single products. A nil Redis
// client disables it: every method becomes a no-op miss, so the service code
// never has to branch on whether caching is configured.
type ProductCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{redis: client, ttl: productCacheTTL}
}

func (c *ProductCache) Get(ctx context.Context, productID string) (*models.Product, bool) {
	if c.redis == nil {
		return nil, false
	}
	cached, err := c.redis.Get(ctx, productCachePrefix+productID).Result()
	if err != nil {
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal([]byte(cached), &product); err != nil {
		zap.L().Warn("failed to unmarshal cached product", zap.String("product_id", productID), zap.Error(err))
		return nil, false
	}
	return &product, true
}

// SetAsync caches a product in the background so reads never wait on Redis.
func (c *ProductCache) SetAsync(productID string, product *models.Product) {
	if c.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(product)
		if err != nil {
			zap.L().Warn("failed to marshal product for cache", zap.String("product_id", productID), zap.Error(err))
			return
		}
		if err := c.redis.Set(bgCtx, productCachePrefix+productID, payload, c.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache product", zap.String("product_id", productID), zap.Error(err))
		}
	}()
}

func (c *ProductCache) Invalidate(ctx context.Context, productID string) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, productCachePrefix+productID).Err(); err != nil {
		zap.L().Warn("failed to delete product cache", zap.String("product_id", productID), zap.Error(err))
	}
}
