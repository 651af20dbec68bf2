package cli

import (
	"fmt"
	"time"

	"robotreadme/config"
	"robotreadme/internal/adapter/cache"
	"robotreadme/internal/adapter/store"
	"robotreadme/internal/adapter/tokenizer"
	"robotreadme/internal/port"
)

// newResolver builds the tokenizer resolver for cfg. With the cache enabled
// counts go through the memory LRU and the bbolt store; the returned func
// closes the store.
func newResolver(cfg *config.Config) (port.TokenizerResolver, func(), error) {
	backend, err := tokenizer.ParseBackend(cfg.Tokenizer.Backend)
	if err != nil {
		return nil, nil, err
	}
	registry := tokenizer.NewRegistry(backend)
	if !cfg.Cache.Enabled {
		return registry, func() {}, nil
	}

	dbPath, err := cfg.CacheDBPath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to locate count cache: %w", err)
	}
	if err := config.EnsureDir(dbPath); err != nil {
		return nil, nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open count cache: %w", err)
	}
	migration, err := st.Migrate()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to migrate count cache: %w", err)
	}
	if migration.Cleared {
		logger.Info("count cache cleared after schema change")
	}

	mem := cache.NewCountCache(cfg.Cache.MemorySize, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	return cache.NewCachingResolver(registry, mem, st, logger), func() { st.Close() }, nil
}

// modelOrDefault prefers the flag value over the configured tokenizer.
func modelOrDefault(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.Tokenizer.Model != "" {
		return cfg.Tokenizer.Model
	}
	return tokenizer.DefaultModel
}
