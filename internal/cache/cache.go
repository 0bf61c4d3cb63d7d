// Package cache memoizes sampled gradient ramps.
package cache

import (
	"sync"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// hashSeed is folded into every gradient hash used as a key.
const hashSeed uint64 = 0x9e3779b97f4a7c15

type key struct {
	hash  uint64
	width int
}

type entry struct {
	gradient gradient.Gradient
	colors   []rgb.Color
}

// RampCache stores sampled color ramps by gradient and width. Gradients that
// collide on hash are told apart with Equal.
type RampCache struct {
	mu      sync.RWMutex
	buckets map[key][]entry
	size    int
}

// NewRampCache creates an empty cache.
func NewRampCache() *RampCache {
	return &RampCache{buckets: make(map[key][]entry)}
}

// Get returns a copy of the ramp cached for g at width.
func (c *RampCache) Get(g gradient.Gradient, width int) ([]rgb.Color, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.buckets[key{hash: g.Hash(hashSeed), width: width}] {
		if e.gradient.Equal(g) {
			return append([]rgb.Color(nil), e.colors...), true
		}
	}
	return nil, false
}

// Put stores colors as the ramp of g at width, replacing an existing one.
func (c *RampCache) Put(g gradient.Gradient, width int, colors []rgb.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key{hash: g.Hash(hashSeed), width: width}
	stored := append([]rgb.Color(nil), colors...)

	bucket := c.buckets[k]
	for i := range bucket {
		if bucket[i].gradient.Equal(g) {
			bucket[i].colors = stored
			return
		}
	}
	c.buckets[k] = append(bucket, entry{gradient: g, colors: stored})
	c.size++
}

// Invalidate drops every ramp cached for g and returns how many were removed.
func (c *RampCache) Invalidate(g gradient.Gradient) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	hash := g.Hash(hashSeed)
	removed := 0
	for k, bucket := range c.buckets {
		if k.hash != hash {
			continue
		}
		kept := bucket[:0]
		for _, e := range bucket {
			if e.gradient.Equal(g) {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(c.buckets, k)
		} else {
			c.buckets[k] = kept
		}
	}
	c.size -= removed
	return removed
}

// Len reports the number of cached ramps.
func (c *RampCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Purge removes all cached ramps.
func (c *RampCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buckets = make(map[key][]entry)
	c.size = 0
}
