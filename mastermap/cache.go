package mastermap

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Fingerprint identifies one (curriculum, offering, difficulty) row source
// triple by file path and modification time, the cache key described in
// spec.md §5 ("Shared resources").
type Fingerprint struct {
	CurriculumFile  string
	CurriculumMTime int64
	OfferingFile    string
	OfferingMTime   int64
	DifficultyFile  string
	DifficultyMTime int64
}

func (f Fingerprint) key() string {
	return fmt.Sprintf("%s@%d|%s@%d|%s@%d",
		f.CurriculumFile, f.CurriculumMTime,
		f.OfferingFile, f.OfferingMTime,
		f.DifficultyFile, f.DifficultyMTime)
}

// Cache is a process-wide, read-mostly cache of built MasterMaps keyed by
// Fingerprint. Concurrent calls for the same fingerprint are coalesced via
// singleflight so that a cache miss under concurrent plan calls builds the
// Master Map once, not once per caller. Cached entries are shared, not
// copied: every caller receives the same *MasterMap pointer. MasterMap has
// no mutating methods, but the *CourseSkeleton values it hands out are the
// cached ones themselves, so a caller that writes to them changes the entry
// every other caller sees.
type Cache struct {
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]*MasterMap
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*MasterMap)}
}

// GetOrBuild returns the cached MasterMap for fp if present, otherwise
// builds it via build (typically a closure around Build with the rows
// already loaded), stores it, and returns it. Concurrent callers with the
// same fp share a single in-flight build.
func (c *Cache) GetOrBuild(fp Fingerprint, build func() (*MasterMap, error)) (*MasterMap, error) {
	k := fp.key()

	c.mu.RLock()
	if m, ok := c.entries[k]; ok {
		c.mu.RUnlock()
		return m, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(k, func() (interface{}, error) {
		m, err := build()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[k] = m
		c.mu.Unlock()
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*MasterMap), nil
}

// Invalidate drops the cached entry for fp, if any. Invalidation is
// serialized by mu; reads proceed lock-free relative to each other.
func (c *Cache) Invalidate(fp Fingerprint) {
	c.mu.Lock()
	delete(c.entries, fp.key())
	c.mu.Unlock()
}
