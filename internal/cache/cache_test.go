package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stormwatch/internal/config"
	"stormwatch/internal/crawl"
)

func TestNewWithoutAddrReturnsNil(t *testing.T) {
	assert.Nil(t, New(config.RedisConfig{}, nil))
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	res, ok := c.Get(ctx)
	assert.Nil(t, res)
	assert.False(t, ok)

	c.Set(ctx, crawl.Result{})
	assert.NoError(t, c.Close())
}
