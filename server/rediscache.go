package server

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/routelens/routelens/log"
)

const (
	reportCacheTTL   = 5 * time.Minute
	redisPingTimeout = 2 * time.Second
)

// reportCache is an optional Redis-backed cache of rendered report bodies.
// All methods are nil-safe so the server can run without Redis configured.
type reportCache struct {
	client *redis.Client
}

// newReportCache connects to redisURL, or returns nil when the URL is empty
// or the connection fails. Cache loss is never fatal to a query.
func newReportCache(redisURL string) *reportCache {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warnf("invalid Redis URL: %s", err)
		return nil
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("Redis connection failed, running without report cache: %s", err)
		return nil
	}

	log.Infof("report cache connected to Redis")
	return &reportCache{client: client}
}

func (c *reportCache) get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	body, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debugf("report cache get %q: %s", key, err)
		}
		return nil, false
	}
	return body, true
}

func (c *reportCache) set(ctx context.Context, key string, body []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, key, body, reportCacheTTL).Err(); err != nil {
		log.Debugf("report cache set %q: %s", key, err)
	}
}
