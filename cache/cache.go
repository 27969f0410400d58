package cache

// Op identifies the kind of memory access in a trace record.
type Op byte

const (
	// OpLoad is a memory read.
	OpLoad Op = 'L'
	// OpStore is a memory write.
	OpStore Op = 'S'
)

// String returns the single-letter trace spelling of the operation.
func (o Op) String() string {
	return string(byte(o))
}

// AccessEvent describes one processed access. It is delivered to the
// observer registered with WithObserver and has no effect on the
// simulation state.
type AccessEvent struct {
	Op              Op
	Addr            uint64
	Hit             bool
	Evicted         bool
	EvictedWasDirty bool
}

// Statistics is a snapshot of the aggregate counters of a replay.
type Statistics struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// DirtyBytes is the number of bytes currently resident in dirty
	// lines.
	DirtyBytes uint64
	// DirtyBytesEvicted is the number of bytes evicted from lines that
	// were dirty at eviction time.
	DirtyBytesEvicted uint64
}

// Cache models one set-associative write-back cache. It owns the
// logical clock and all aggregate counters; there is exactly one
// writer, so no locking is needed.
type Cache struct {
	config Config
	sets   []set

	// clock increments once per processed access and orders lines for
	// LRU replacement.
	clock uint64

	hits      uint64
	misses    uint64
	evictions uint64
	// dirtyResident and dirtyEvicted count lines, not bytes; Stats
	// scales them by the block size.
	dirtyResident uint64
	dirtyEvicted  uint64

	observer func(AccessEvent)
}

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithObserver registers a callback invoked once per processed access.
// The callback is purely observational.
func WithObserver(fn func(AccessEvent)) Option {
	return func(c *Cache) {
		c.observer = fn
	}
}

// New builds a cache from the given geometry. The memory footprint is
// fixed here and never resized.
func New(config Config, opts ...Option) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Cache{
		config: config,
		sets:   make([]set, config.NumSets()),
	}
	for i := range c.sets {
		c.sets[i] = newSet(config.Associativity)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Config returns the geometry the cache was built with.
func (c *Cache) Config() Config {
	return c.config
}

// Access processes one load or store and updates the aggregate
// counters. It cannot fail: geometry is validated at construction and
// decode, lookup, and eviction are total over valid addresses.
func (c *Cache) Access(op Op, addr uint64) AccessResult {
	c.clock++

	tag, setIndex := c.config.Decode(addr)
	result := c.sets[setIndex].access(tag, c.clock, op == OpStore)

	if result.Hit {
		c.hits++
	} else {
		c.misses++
	}
	if result.Evicted {
		c.evictions++
		if result.EvictedWasDirty {
			c.dirtyResident--
			c.dirtyEvicted++
		}
	}
	if result.LineBecameDirty {
		c.dirtyResident++
	}

	if c.observer != nil {
		c.observer(AccessEvent{
			Op:              op,
			Addr:            addr,
			Hit:             result.Hit,
			Evicted:         result.Evicted,
			EvictedWasDirty: result.EvictedWasDirty,
		})
	}

	return result
}

// Stats returns a snapshot of the aggregate counters.
func (c *Cache) Stats() Statistics {
	blockSize := uint64(c.config.BlockSize())
	return Statistics{
		Hits:              c.hits,
		Misses:            c.misses,
		Evictions:         c.evictions,
		DirtyBytes:        c.dirtyResident * blockSize,
		DirtyBytesEvicted: c.dirtyEvicted * blockSize,
	}
}

// Reset invalidates every line and clears the clock and all counters.
func (c *Cache) Reset() {
	for i := range c.sets {
		c.sets[i] = newSet(c.config.Associativity)
	}
	c.clock = 0
	c.hits = 0
	c.misses = 0
	c.evictions = 0
	c.dirtyResident = 0
	c.dirtyEvicted = 0
}
