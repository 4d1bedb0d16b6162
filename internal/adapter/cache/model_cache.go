package cache

import (
	"sync"
	"time"

	"ngram/internal/domain"
	"ngram/internal/port"
)

// ModelCache keeps recently loaded models in front of a ModelStore. Cached
// models are shared between callers and must be treated as read-only.
// Writes through the cache invalidate every entry.
type ModelCache struct {
	store port.ModelStore

	mu       sync.RWMutex
	entries  map[string]*cacheEntry
	order    []string
	maxSize  int
	ttl      time.Duration
	storeGen uint64
}

type cacheEntry struct {
	model     domain.Model
	timestamp time.Time
	storeGen  uint64
}

func NewModelCache(store port.ModelStore, maxSize int, ttl time.Duration) *ModelCache {
	if maxSize <= 0 {
		maxSize = 8
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ModelCache{
		store:   store,
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func (c *ModelCache) GetModel(name string) (domain.Model, error) {
	if model, hit := c.lookup(name); hit {
		return model, nil
	}

	model, err := c.store.GetModel(name)
	if err != nil {
		return domain.Model{}, err
	}
	c.put(name, model)
	return model, nil
}

func (c *ModelCache) PutModel(model domain.Model) error {
	if err := c.store.PutModel(model); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

func (c *ModelCache) DeleteModel(name string) error {
	if err := c.store.DeleteModel(name); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

func (c *ModelCache) ListModels() ([]domain.ModelInfo, error) {
	return c.store.ListModels()
}

func (c *ModelCache) Close() error {
	c.Invalidate()
	return c.store.Close()
}

// Invalidate drops every entry.
func (c *ModelCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.storeGen++
}

func (c *ModelCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ModelCache) lookup(name string) (domain.Model, bool) {
	c.mu.RLock()
	entry, exists := c.entries[name]
	currentGen := c.storeGen
	c.mu.RUnlock()

	if !exists {
		return domain.Model{}, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.storeGen != currentGen {
		c.mu.Lock()
		delete(c.entries, name)
		c.removeFromOrder(name)
		c.mu.Unlock()
		return domain.Model{}, false
	}

	c.mu.Lock()
	c.moveToEnd(name)
	c.mu.Unlock()

	return entry.model, true
}

func (c *ModelCache) put(name string, model domain.Model) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry{
		model:     model,
		timestamp: time.Now(),
		storeGen:  c.storeGen,
	}

	if _, exists := c.entries[name]; exists {
		c.entries[name] = entry
		c.moveToEnd(name)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[name] = entry
	c.order = append(c.order, name)
}

func (c *ModelCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ModelCache) moveToEnd(name string) {
	c.removeFromOrder(name)
	c.order = append(c.order, name)
}

func (c *ModelCache) removeFromOrder(name string) {
	for i, k := range c.order {
		if k == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

var _ port.ModelStore = (*ModelCache)(nil)
