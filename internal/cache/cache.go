// Package cache keeps the latest crawl result in redis so the scheduled
// endpoint hits stay cheap between crawls. The cache is an opaque
// collaborator: every operation is best-effort and redis being down just
// means a miss.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"stormwatch/internal/config"
	"stormwatch/internal/crawl"
)

type Cache struct {
	rdb *redis.Client
	key string
	ttl time.Duration
	log *zap.SugaredLogger
}

// New returns a Cache, or nil when no redis address is configured. All
// methods are nil-safe, so callers never need to branch.
func New(cfg config.RedisConfig, log *zap.SugaredLogger) *Cache {
	if cfg.Addr == "" {
		return nil
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warnw("redis ping failed, cache will degrade to misses", "addr", cfg.Addr, "err", err)
	}

	key := cfg.Key
	if key == "" {
		key = "stormwatch:crawl:latest"
	}
	return &Cache{rdb: rdb, key: key, ttl: cfg.TTL(), log: log}
}

// Get returns the cached crawl result, if any.
func (c *Cache) Get(ctx context.Context) (*crawl.Result, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debugw("cache get failed", "err", err)
		}
		return nil, false
	}
	var res crawl.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		c.log.Warnw("cache entry corrupt, discarding", "err", err)
		return nil, false
	}
	return &res, true
}

// Set stores the crawl result with the configured TTL.
func (c *Cache) Set(ctx context.Context, res crawl.Result) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		c.log.Warnw("cache marshal failed", "err", err)
		return
	}
	if err := c.rdb.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		c.log.Debugw("cache set failed", "err", err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
