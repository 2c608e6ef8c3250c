package repository

// permission_cache.go implements a read-through Redis cache in front of
// AccountRepo.Permissions.  Claims resolution is by far the hottest read
// path, and permission grants change rarely and only outside this
// service, so a short TTL keeps the database out of most requests while
// still picking up external changes quickly.  Every cache failure
// degrades to the database; Redis being down must never fail a request.

import (
    "context"
    "encoding/json"
    "fmt"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/auth-claims-service/internal/config"
)

// PermissionCache wraps an AccountRepo with a Redis-backed cache of
// permission-name sets keyed by account id.  A nil client or a disabled
// config turns the cache into a passthrough.
type PermissionCache struct {
    Repo *AccountRepo
    RDB  *redis.Client
    Cfg  config.PermCacheConfig
}

func NewPermissionCache(repo *AccountRepo, rdb *redis.Client, cfg config.PermCacheConfig) *PermissionCache {
    return &PermissionCache{Repo: repo, RDB: rdb, Cfg: cfg}
}

// key builds the Redis key for an account's permission set, honoring the
// configured prefix so several deployments can share one Redis instance.
func (c *PermissionCache) key(accountID uint64) string {
    return fmt.Sprintf("%s:account:%d", c.Cfg.Prefix, accountID)
}

// Permissions returns the permission names for an account, consulting the
// cache first.  Entries are stored as JSON arrays with the configured TTL.
func (c *PermissionCache) Permissions(ctx context.Context, accountID uint64) ([]string, error) {
    if !c.Cfg.Enabled || c.RDB == nil {
        return c.Repo.Permissions(ctx, accountID)
    }

    // Cache hit: decode and serve.  A corrupt entry falls through to the
    // database and gets overwritten below.
    if raw, err := c.RDB.Get(ctx, c.key(accountID)).Bytes(); err == nil {
        var names []string
        if err := json.Unmarshal(raw, &names); err == nil && names != nil {
            return names, nil
        }
    }

    names, err := c.Repo.Permissions(ctx, accountID)
    if err != nil {
        return nil, err
    }
    if body, err := json.Marshal(names); err == nil {
        // Best effort; ignore write failures.
        c.RDB.Set(ctx, c.key(accountID), body, c.Cfg.TTL)
    }
    return names, nil
}
