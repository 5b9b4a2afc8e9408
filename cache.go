package readability

import (
	"container/list"
	"hash/maphash"
	"sync"
)

const defaultCacheMinTextBytes = 512

var cacheSeed = maphash.MakeSeed()

// TextAnalyzer is the cacheable analysis surface. *Analyzer implements it,
// as does the decorator returned by WithCache.
type TextAnalyzer interface {
	Analyze(text string) Report
}

type cacheEntry struct {
	key   uint64
	value Report
}

type lruCache struct {
	mu    sync.Mutex
	cap   int
	ll    *list.List
	items map[uint64]*list.Element
}

func newLRU(size int) *lruCache {
	if size <= 0 {
		return nil
	}
	return &lruCache{
		cap:   size,
		ll:    list.New(),
		items: make(map[uint64]*list.Element, size),
	}
}

func (c *lruCache) Get(key uint64) (Report, bool) {
	if c == nil {
		return Report{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.ll.MoveToFront(elem)
		return elem.Value.(cacheEntry).value, true
	}
	return Report{}, false
}

func (c *lruCache) Add(key uint64, value Report) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value = cacheEntry{key: key, value: value}
		c.ll.MoveToFront(elem)
		return
	}

	elem := c.ll.PushFront(cacheEntry{key: key, value: value})
	c.items[key] = elem

	if c.ll.Len() > c.cap {
		back := c.ll.Back()
		if back != nil {
			c.ll.Remove(back)
			entry := back.Value.(cacheEntry)
			delete(c.items, entry.key)
		}
	}
}

// WithCache wraps an analyzer with an LRU cache over full-text reports.
// Caching is opt-in; short texts bypass the cache since re-analyzing them is
// cheaper than hashing.
func WithCache(inner TextAnalyzer, size int) TextAnalyzer {
	if inner == nil {
		inner = New(Options{})
	}
	cache := newLRU(size)
	if cache == nil {
		return inner
	}
	return &cachedAnalyzer{
		inner:       inner,
		cache:       cache,
		minTextSize: defaultCacheMinTextBytes,
	}
}

type cachedAnalyzer struct {
	inner       TextAnalyzer
	cache       *lruCache
	minTextSize int
}

func (c *cachedAnalyzer) Analyze(text string) Report {
	if len(text) < c.minTextSize {
		return c.inner.Analyze(text)
	}
	key := maphash.String(cacheSeed, text)
	if val, ok := c.cache.Get(key); ok {
		return val
	}
	val := c.inner.Analyze(text)
	c.cache.Add(key, val)
	return val
}
