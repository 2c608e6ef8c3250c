package config

import (
    "os"
    "time"
)

// PermCacheConfig defines settings for the permission-set cache.  When
// Enabled is false or no Redis client is configured, claims resolution reads
// permissions directly from the database on every request.  TTL bounds how
// long a cached permission set may be served; permissions are managed
// outside this service, so a short TTL keeps external grants visible.
type PermCacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadPermCacheConfig reads environment variables to build a PermCacheConfig.
// Defaults are used when variables are not set.
func LoadPermCacheConfig() PermCacheConfig {
    return PermCacheConfig{
        Enabled: getenv("PERM_CACHE_ENABLED", "true") == "true",
        TTL:     parseDur(getenv("PERM_CACHE_TTL", "30s")),
        Prefix:  getenv("PERM_CACHE_PREFIX", "perm"),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
