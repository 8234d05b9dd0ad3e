package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"market-admin/internal/pkg/clock"
	"market-admin/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// storeScript writes an entry unless a root covering its path was invalidated after
// the caller's epoch. KEYS: invalidation hash, entry. ARGV: since, path, value, ttl ms.
var storeScript = redis.NewScript(`
local since = tonumber(ARGV[1])
local path = ARGV[2]
local roots = redis.call('HGETALL', KEYS[1])
for i = 1, #roots, 2 do
  local root = roots[i]
  if tonumber(roots[i + 1]) > since then
    if root == '' or path == root or string.sub(path, 1, #root + 1) == root .. '/' then
      return 0
    end
  end
end
redis.call('SET', KEYS[2], ARGV[3], 'PX', ARGV[4])
return 1
`)

// invalidateScript advances the epoch and records it against a root.
// KEYS: epoch counter, invalidation hash. ARGV: root.
var invalidateScript = redis.NewScript(`
local epoch = redis.call('INCR', KEYS[1])
redis.call('HSET', KEYS[2], ARGV[1], epoch)
return epoch
`)

// RedisCache shares cached reads between dashboard replicas. Redis expiry mirrors
// the entry TTL; freshness is still checked against the clock on read.
// Bookkeeping keys live under prefix + "~" and are never treated as entries.
type RedisCache struct {
	client *redis.Client
	prefix string
	clock  clock.Clock
}

func NewRedisCache(client *redis.Client, prefix string, clk clock.Clock) *RedisCache {
	return &RedisCache{client: client, prefix: prefix + ":", clock: clk}
}

// NewRedisClient parses a redis:// or rediss:// URL.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errs.Wrap(err, "parse redis url")
	}
	return redis.NewClient(opt), nil
}

func (r *RedisCache) Get(ctx context.Context, key CacheKey) (CacheEntry, bool, error) {
	raw, err := r.client.Get(ctx, r.prefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return CacheEntry{}, false, nil
	}
	if err != nil {
		return CacheEntry{}, false, errs.Wrap(err, "redis get")
	}

	var entry CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// unreadable entries are treated as misses and overwritten on the next store
		return CacheEntry{}, false, nil
	}
	if !entry.Fresh(r.clock.Now()) {
		return CacheEntry{}, false, nil
	}
	return entry, true, nil
}

func (r *RedisCache) epochKey() string       { return r.prefix + "~epoch" }
func (r *RedisCache) invalidationKey() string { return r.prefix + "~invalidated" }

func (r *RedisCache) Epoch(ctx context.Context) (uint64, error) {
	epoch, err := r.client.Get(ctx, r.epochKey()).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "redis get epoch")
	}
	return epoch, nil
}

func (r *RedisCache) SetIfCurrent(ctx context.Context, entry CacheEntry, since uint64) (bool, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return false, errs.Wrap(err, "encode cache entry")
	}
	ttl := max(entry.TTL.Milliseconds(), 1)
	stored, err := storeScript.Run(ctx, r.client,
		[]string{r.invalidationKey(), r.prefix + entry.Key.String()},
		since, entry.Key.Path, raw, ttl,
	).Int()
	if err != nil {
		return false, errs.Wrap(err, "redis conditional set")
	}
	return stored == 1, nil
}

func (r *RedisCache) InvalidateResource(ctx context.Context, root string) error {
	root = normalizeRoot(root)
	if err := invalidateScript.Run(ctx, r.client, []string{r.epochKey(), r.invalidationKey()}, root).Err(); err != nil {
		return errs.Wrap(err, "redis record invalidation")
	}

	var stale []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		name := iter.Val()
		if strings.HasPrefix(name, r.prefix+"~") {
			continue
		}
		key, ok := parseCacheKey(strings.TrimPrefix(name, r.prefix))
		if !ok || key.UnderResource(root) {
			stale = append(stale, name)
		}
	}
	if err := iter.Err(); err != nil {
		return errs.Wrap(err, "redis scan")
	}
	if len(stale) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, stale...).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
