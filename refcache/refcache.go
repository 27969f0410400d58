// Package refcache implements the same simulation contract as package
// cache on top of the Akita cache directory. It exists to cross-check
// the native model: both caches implement LRU replacement, so replaying
// one trace through both must produce identical statistics.
package refcache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/Xinyue-Yang/Cache-Simulator/cache"
)

// Cache mirrors the behavior of cache.Cache using an Akita LRU
// directory for tag and recency management.
type Cache struct {
	config    cache.Config
	directory *akitacache.DirectoryImpl

	hits      uint64
	misses    uint64
	evictions uint64
	// Line counts; Stats scales them by the block size.
	dirtyResident uint64
	dirtyEvicted  uint64
}

// New builds a reference cache from the given geometry.
func New(config cache.Config) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			config.NumSets(),
			config.Associativity,
			config.BlockSize(),
			akitacache.NewLRUVictimFinder(),
		),
	}, nil
}

// Config returns the geometry the cache was built with.
func (c *Cache) Config() cache.Config {
	return c.config
}

// Access processes one load or store. The directory is keyed by
// block-aligned addresses, which carry the same information as a
// (tag, set index) pair under this geometry.
func (c *Cache) Access(op cache.Op, addr uint64) cache.AccessResult {
	var result cache.AccessResult
	isStore := op == cache.OpStore

	blockSize := uint64(c.config.BlockSize())
	blockAddr := addr / blockSize * blockSize

	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.hits++
		result.Hit = true
		c.directory.Visit(block)

		if isStore {
			if block.IsDirty {
				result.LineWasAlreadyDirty = true
			} else {
				block.IsDirty = true
				result.LineBecameDirty = true
				c.dirtyResident++
			}
		}
		return result
	}

	c.misses++

	victim := c.directory.FindVictim(blockAddr)
	if victim.IsValid {
		c.evictions++
		result.Evicted = true
		if victim.IsDirty {
			result.EvictedWasDirty = true
			c.dirtyResident--
			c.dirtyEvicted++
		}
	}

	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = isStore
	if isStore {
		result.LineBecameDirty = true
		c.dirtyResident++
	}
	c.directory.Visit(victim)

	return result
}

// Stats returns a snapshot in the same shape as the native model.
func (c *Cache) Stats() cache.Statistics {
	blockSize := uint64(c.config.BlockSize())
	return cache.Statistics{
		Hits:              c.hits,
		Misses:            c.misses,
		Evictions:         c.evictions,
		DirtyBytes:        c.dirtyResident * blockSize,
		DirtyBytesEvicted: c.dirtyEvicted * blockSize,
	}
}

// Reset invalidates every line and clears all counters.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
	c.dirtyResident = 0
	c.dirtyEvicted = 0
}
