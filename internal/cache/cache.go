// Пакет cache - ограниченный кэш в памяти с политикой ёмкости и срока
// жизни, задаваемой явно через конфигурацию. Значения - чистые функции от
// ключа, поэтому при конкурентной записи допустим last-writer-wins.
package cache

import (
	"sync"
	"time"
)

// Config - явная политика ёмкости и устаревания
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

type entry struct {
	value     interface{}
	createdAt time.Time
	expiresAt time.Time
}

// Cache - потокобезопасный кэш с вытеснением по размеру и TTL
type Cache struct {
	mu      sync.RWMutex
	cfg     Config
	entries map[string]entry
}

// New создаёт кэш с заданной политикой
func New(cfg Config) *Cache {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 128
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &Cache{
		cfg:     cfg,
		entries: make(map[string]entry, cfg.MaxEntries),
	}
}

// Get возвращает значение по ключу, если оно есть и не устарело
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set вставляет значение; при переполнении вытесняется самая старая запись
func (c *Cache) Set(key string, value interface{}) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Ленивая чистка устаревших записей перед вытеснением
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.cfg.MaxEntries {
		c.evictOldest()
	}

	c.entries[key] = entry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(c.cfg.TTL),
	}
}

// Len возвращает текущее число записей
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for k, e := range c.entries {
		if first || e.createdAt.Before(oldestAt) {
			oldestKey, oldestAt = k, e.createdAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
