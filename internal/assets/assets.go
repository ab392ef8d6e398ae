// Package assets reads game data files from the game directory and the mod
// directories layered over it.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when no root holds the requested file.
var ErrNotFound = errors.New("file not found")

// Manager resolves data paths against a stack of root directories.
// Roots are searched in reverse order (last added = highest priority), so a
// mod file shadows the game file with the same relative path.
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager over the game directory and optional mods.
func NewManager(root string, mods ...string) *Manager {
	m := &Manager{cache: NewCache()}
	m.AddRoot(root)
	for _, mod := range mods {
		m.AddRoot(mod)
	}
	return m
}

// AddRoot adds a directory with higher priority than all existing ones.
func (m *Manager) AddRoot(dir string) {
	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()
	m.cache.Clear()
}

// Candidates returns every path rel could be read from, highest priority
// first. An absolute rel is its own only candidate.
func (m *Manager) Candidates(rel string) []string {
	if filepath.IsAbs(rel) {
		return []string{rel}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.roots))
	for i := len(m.roots) - 1; i >= 0; i-- {
		out = append(out, filepath.Join(m.roots[i], rel))
	}
	return out
}

// Locate returns the path rel currently resolves to.
func (m *Manager) Locate(rel string) (string, error) {
	for _, path := range m.Candidates(rel) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, rel)
}

// Load reads the file rel resolves to. Contents are cached until
// Invalidate or Clear.
func (m *Manager) Load(rel string) ([]byte, error) {
	if data, ok := m.cache.Get(rel); ok {
		return data, nil
	}

	path, err := m.Locate(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m.cache.Set(rel, data)
	return data, nil
}

// Invalidate drops the cached contents of rel.
func (m *Manager) Invalidate(rel string) {
	m.cache.Delete(rel)
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache of file contents.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Delete removes an item from cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
