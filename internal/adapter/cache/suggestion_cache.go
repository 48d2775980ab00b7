// Package cache memoizes per-keystroke suggestion batches. Suggestions
// are recomputed from scratch on every call, so hosts that revisit the
// same prefixes (backspacing, cursor edits) get the batch back for free.
package cache

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"scriptureref/internal/domain"
)

type SuggestionCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
	gen     uint64
}

type cacheEntry struct {
	suggestions []domain.Suggestion
	timestamp   time.Time
	gen         uint64
}

func NewSuggestionCache(maxSize int, ttl time.Duration) *SuggestionCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SuggestionCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func cacheKey(input string, limit int) string {
	return strings.ToLower(strings.TrimSpace(input)) + "|" + strconv.Itoa(limit)
}

func (c *SuggestionCache) Get(input string, limit int) ([]domain.Suggestion, bool) {
	c.mu.RLock()
	key := cacheKey(input, limit)
	entry, exists := c.entries[key]
	currentGen := c.gen
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.gen != currentGen {
		c.mu.Lock()
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.moveToEnd(key)
	c.mu.Unlock()

	return entry.suggestions, true
}

func (c *SuggestionCache) Put(input string, limit int, suggestions []domain.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(input, limit)

	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{
			suggestions: suggestions,
			timestamp:   time.Now(),
			gen:         c.gen,
		}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{
		suggestions: suggestions,
		timestamp:   time.Now(),
		gen:         c.gen,
	}
	c.order = append(c.order, key)
}

// Invalidate drops every entry. Call it when the book catalog changes;
// stored suggestions would otherwise outlive the books they point at.
func (c *SuggestionCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.gen++
}

func (c *SuggestionCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *SuggestionCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *SuggestionCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *SuggestionCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Suggester is the slice of the suggest use case the cache wraps.
type Suggester interface {
	Suggest(input string, limit int) []domain.Suggestion
}

// CachedSuggester memoizes a Suggester behind a SuggestionCache.
type CachedSuggester struct {
	suggester Suggester
	cache     *SuggestionCache
}

func NewCachedSuggester(suggester Suggester, cache *SuggestionCache) *CachedSuggester {
	return &CachedSuggester{
		suggester: suggester,
		cache:     cache,
	}
}

func (s *CachedSuggester) Suggest(input string, limit int) []domain.Suggestion {
	if suggestions, hit := s.cache.Get(input, limit); hit {
		return suggestions
	}

	suggestions := s.suggester.Suggest(input, limit)
	s.cache.Put(input, limit, suggestions)
	return suggestions
}
