// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuprep

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gogpu/gpuprep/internal/ring"
)

// DefaultRingCacheSize is the capacity used when NewRingCache gets a
// non-positive size.
const DefaultRingCacheSize = 32

type ringKey struct {
	indexed bool
	params  ring.Params
}

// RingCache memoizes ring geometry by its parameters. Geometry is
// immutable, so one instance is shared by every caller asking for the
// same ring. Failed builds are not cached.
//
// RingCache is safe for concurrent use.
type RingCache struct {
	cache *lru.Cache[ringKey, *RingGeometry]
}

// NewRingCache creates a cache holding up to size geometries, evicting the
// least recently used.
func NewRingCache(size int) *RingCache {
	if size <= 0 {
		size = DefaultRingCacheSize
	}
	// lru.New only fails for a non-positive size.
	c, _ := lru.New[ringKey, *RingGeometry](size)
	return &RingCache{cache: c}
}

// Get returns the geometry for opts, building it on a miss.
// indexed selects BuildIndexedRing over BuildRing.
func (c *RingCache) Get(indexed bool, opts ...RingOption) (*RingGeometry, error) {
	key := ringKey{indexed: indexed, params: ringParams(opts)}
	if g, ok := c.cache.Get(key); ok {
		return g, nil
	}

	var (
		g   *RingGeometry
		err error
	)
	if indexed {
		g, err = BuildIndexedRing(opts...)
	} else {
		g, err = BuildRing(opts...)
	}
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, g)
	return g, nil
}

// Len returns the number of cached geometries.
func (c *RingCache) Len() int {
	return c.cache.Len()
}

// Purge drops every cached geometry.
func (c *RingCache) Purge() {
	c.cache.Purge()
}
