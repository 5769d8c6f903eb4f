package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campushire/talent-hub/internal/application/usecase/directory"
	"github.com/campushire/talent-hub/internal/domain/talent"
)

const directoryCacheVersionKey = "directory:version"

type redisDirectoryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDirectoryCache caches public directory pages in Redis. Invalidation
// bumps a version counter instead of scanning for keys, so stale pages simply
// stop being addressable and age out via TTL.
func NewRedisDirectoryCache(rdb *redis.Client, ttl time.Duration) directory.Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisDirectoryCache{rdb: rdb, ttl: ttl}
}

func (c *redisDirectoryCache) listingKey(ctx context.Context, filter talent.DirectoryFilter) (string, error) {
	version, err := c.rdb.Get(ctx, directoryCacheVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("directory:v%d:sort=%s:limit=%d:offset=%d", version, filter.Sort, filter.Limit, filter.Offset), nil
}

func (c *redisDirectoryCache) GetListing(ctx context.Context, filter talent.DirectoryFilter) ([]*talent.Profile, error) {
	key, err := c.listingKey(ctx, filter)
	if err != nil {
		return nil, err
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profiles []*talent.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("corrupt directory cache entry: %w", err)
	}
	return profiles, nil
}

func (c *redisDirectoryCache) SetListing(ctx context.Context, filter talent.DirectoryFilter, profiles []*talent.Profile) error {
	key, err := c.listingKey(ctx, filter)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *redisDirectoryCache) InvalidateDirectory(ctx context.Context) error {
	return c.rdb.Incr(ctx, directoryCacheVersionKey).Err()
}
