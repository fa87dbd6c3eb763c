package seen

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shopfeed:seen:"

// Cache remembers source URLs already ingested so later runs skip them during
// discovery instead of burning a page load on a guaranteed duplicate insert.
// Entirely optional: the catalog's unique constraints stay the real backstop.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Cache{rdb: rdb, ttl: 7 * 24 * time.Hour}, nil
}

// Seen treats any cache error as "not seen"; a flaky cache must never lose a
// product, only cost a duplicate attempt.
func (c *Cache) Seen(ctx context.Context, url string) bool {
	n, err := c.rdb.Exists(ctx, keyPrefix+url).Result()
	return err == nil && n > 0
}

func (c *Cache) Mark(ctx context.Context, url string) {
	c.rdb.Set(ctx, keyPrefix+url, 1, c.ttl)
}

// Warm preloads URLs pulled from the catalog itself.
func (c *Cache) Warm(ctx context.Context, urls []string) {
	for _, u := range urls {
		c.Mark(ctx, u)
	}
}

func (c *Cache) Close() {
	_ = c.rdb.Close()
}
