package feeds

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/railboard/railboard/pkg/redis_client"
)

// Cache holds raw upstream responses for a short TTL so repeated board
// requests don't hammer the feeds. Keyed by feed identity only -
// station and destination filters are applied after the fetch.
type Cache struct {
	cache *cache.Cache[string]
}

// NewCache builds the response cache over the shared redis client.
// Without redis the cache is inert and every request refetches.
func NewCache(ttl time.Duration) *Cache {
	if redis_client.Client == nil {
		return &Cache{}
	}

	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(ttl))

	return &Cache{
		cache: cache.New[string](redisStore),
	}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	value, err := c.cache.Get(ctx, key)
	if err != nil || value == "" {
		return nil, false
	}

	return []byte(value), true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c.cache == nil {
		return
	}

	c.cache.Set(ctx, key, string(value))
}
