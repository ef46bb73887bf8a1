package watcher

import (
	"sync"
	"unique"

	"go.trai.ch/routelens/internal/core/ports"
)

var _ ports.ChangeDetector = (*ChangeCache)(nil)

// ChangeCache tracks the last seen fingerprint of each file.
type ChangeCache struct {
	mu      sync.Mutex
	entries map[unique.Handle[string]]string
	hasher  ports.Fingerprinter
}

// NewChangeCache creates a new change cache.
func NewChangeCache(hasher ports.Fingerprinter) *ChangeCache {
	return &ChangeCache{
		entries: make(map[unique.Handle[string]]string),
		hasher:  hasher,
	}
}

// Changed fingerprints path and compares it with the recorded value.
func (c *ChangeCache) Changed(path string) (bool, error) {
	sum, err := c.hasher.Fingerprint(path)
	if err != nil {
		return false, err
	}

	key := unique.Make(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, seen := c.entries[key]
	c.entries[key] = sum
	return !seen || prev != sum, nil
}

// Forget drops the recorded fingerprint of path.
func (c *ChangeCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, unique.Make(path))
}

// Len returns the number of tracked files.
func (c *ChangeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
