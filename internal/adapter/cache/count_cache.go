package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"go.uber.org/zap"

	"robotreadme/internal/domain"
	"robotreadme/internal/port"
)

// CountCache is an in-memory LRU of token counts with a TTL.
type CountCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
}

type cacheEntry struct {
	tokens    int
	timestamp time.Time
}

func NewCountCache(maxSize int, ttl time.Duration) *CountCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CountCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Key identifies text under a given tokenizer.
func Key(tokenizer, text string) string {
	h := sha256.New()
	h.Write([]byte(tokenizer))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func (c *CountCache) Get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return 0, false
	}

	if time.Since(entry.timestamp) > c.ttl {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return 0, false
	}

	// order holds only live keys
	c.moveToEnd(key)
	return entry.tokens, true
}

func (c *CountCache) Put(key string, tokens int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{tokens: tokens, timestamp: time.Now()}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{tokens: tokens, timestamp: time.Now()}
	c.order = append(c.order, key)
}

func (c *CountCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
}

func (c *CountCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *CountCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *CountCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *CountCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// CachedTokenizer serves counts from memory, then from the optional store,
// and only tokenizes on a miss in both.
type CachedTokenizer struct {
	port.Tokenizer
	cache  *CountCache
	store  port.CountStore
	logger *zap.Logger
}

// NewCachedTokenizer wraps tok. store may be nil.
func NewCachedTokenizer(tok port.Tokenizer, cache *CountCache, store port.CountStore, logger *zap.Logger) *CachedTokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTokenizer{
		Tokenizer: tok,
		cache:     cache,
		store:     store,
		logger:    logger,
	}
}

func (t *CachedTokenizer) CountTokens(text string) (int, error) {
	key := Key(t.Name(), text)

	if n, hit := t.cache.Get(key); hit {
		return n, nil
	}

	if t.store != nil {
		entry, ok, err := t.store.GetCount(key)
		if err != nil {
			t.logger.Warn("count store read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			t.cache.Put(key, int(entry.Tokens))
			return int(entry.Tokens), nil
		}
	}

	n, err := t.Tokenizer.CountTokens(text)
	if err != nil {
		return 0, err
	}

	t.cache.Put(key, n)
	if t.store != nil {
		entry := domain.CountEntry{Tokens: domain.TokenCount(n), CreatedAt: time.Now()}
		if err := t.store.PutCount(key, entry); err != nil {
			t.logger.Warn("count store write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return n, nil
}

// CachingResolver wraps every resolved tokenizer in a CachedTokenizer.
type CachingResolver struct {
	inner  port.TokenizerResolver
	cache  *CountCache
	store  port.CountStore
	logger *zap.Logger
}

func NewCachingResolver(inner port.TokenizerResolver, cache *CountCache, store port.CountStore, logger *zap.Logger) *CachingResolver {
	return &CachingResolver{inner: inner, cache: cache, store: store, logger: logger}
}

func (r *CachingResolver) Resolve(name string) (port.Tokenizer, error) {
	tok, err := r.inner.Resolve(name)
	if err != nil {
		return nil, err
	}
	return NewCachedTokenizer(tok, r.cache, r.store, r.logger), nil
}
