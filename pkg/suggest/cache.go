package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
)

// HotCache keeps the unfiltered candidate lists of recent requests so a
// client narrowing the prefix does not re-run the estimation.
type HotCache struct {
	entries     map[string][]Suggestion
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.Mutex
}

func NewHotCache(maxEntries int) *HotCache {
	return &HotCache{
		entries:    make(map[string][]Suggestion, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached candidates for key.
func (hc *HotCache) Get(key string) ([]Suggestion, bool) {
	if hc == nil {
		return nil, false
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	candidates, ok := hc.entries[key]
	if !ok {
		return nil, false
	}
	hc.hits++
	hc.accessTime[key] = hc.getNextAccessTime()
	return candidates, true
}

// Put stores candidates for key, evicting the least recently used entry when full.
func (hc *HotCache) Put(key string, candidates []Suggestion) {
	if hc == nil || hc.maxEntries <= 0 {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if _, ok := hc.entries[key]; !ok && len(hc.entries) >= hc.maxEntries {
		hc.evictLRU()
	}
	hc.entries[key] = candidates
	hc.accessTime[key] = hc.getNextAccessTime()
}

// Clear drops every entry.
func (hc *HotCache) Clear() {
	if hc == nil {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()
	n := len(hc.entries)
	hc.entries = make(map[string][]Suggestion, hc.maxEntries)
	hc.accessTime = make(map[string]int64, hc.maxEntries)
	log.Debugf("Cleared %d cached estimations", n)
}

func (hc *HotCache) Stats() map[string]int {
	if hc == nil {
		return map[string]int{}
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	return map[string]int{
		"hotCacheEntries": len(hc.entries),
		"maxHotEntries":   hc.maxEntries,
		"hotCacheHits":    int(hc.hits),
	}
}

func (hc *HotCache) getNextAccessTime() int64 {
	hc.accessCount++
	return hc.accessCount
}

func (hc *HotCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = 9223372036854775807

	for key, accessTime := range hc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(hc.entries, oldestKey)
		delete(hc.accessTime, oldestKey)
		log.Debugf("Evicted cached estimation %.16x", oldestKey)
	}
}
