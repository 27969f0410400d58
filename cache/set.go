package cache

// AccessResult reports the effect of a single access on its target set.
type AccessResult struct {
	// Hit is true when the tag was already resident.
	Hit bool
	// Evicted is true when a valid line was replaced to make room.
	Evicted bool
	// EvictedWasDirty is true when the replaced line was dirty at
	// eviction time.
	EvictedWasDirty bool
	// LineBecameDirty is true when this access transitioned a line from
	// clean to dirty, either by a store hit or by a store allocating a
	// fresh line.
	LineBecameDirty bool
	// LineWasAlreadyDirty is true when a store hit a line that was
	// dirty before the access.
	LineWasAlreadyDirty bool
}

// line holds the bookkeeping for one cache line. When valid is false,
// the remaining fields are meaningless.
type line struct {
	valid      bool
	tag        uint64
	dirty      bool
	lastAccess uint64
}

// set is a fixed-capacity collection of lines sharing one set index.
// At most one valid line in a set holds a given tag.
type set struct {
	lines []line
}

func newSet(associativity int) set {
	return set{lines: make([]line, associativity)}
}

// access looks tag up in the set, allocating into a free line or
// evicting the LRU line on a miss. now is the cache's logical clock
// value for this access.
func (s *set) access(tag uint64, now uint64, isStore bool) AccessResult {
	var result AccessResult

	if ln := s.match(tag); ln != nil {
		ln.lastAccess = now
		result.Hit = true
		if isStore {
			if ln.dirty {
				result.LineWasAlreadyDirty = true
			} else {
				ln.dirty = true
				result.LineBecameDirty = true
			}
		}
		return result
	}

	victim := s.freeLine()
	if victim == nil {
		victim = s.leastRecentlyUsed()
		result.Evicted = true
		result.EvictedWasDirty = victim.dirty
	}

	victim.valid = true
	victim.tag = tag
	victim.dirty = isStore
	victim.lastAccess = now
	result.LineBecameDirty = isStore

	return result
}

// match returns the valid line holding tag, or nil on a miss.
func (s *set) match(tag uint64) *line {
	for i := range s.lines {
		if s.lines[i].valid && s.lines[i].tag == tag {
			return &s.lines[i]
		}
	}
	return nil
}

// freeLine returns the lowest-index invalid line, or nil when the set
// is full.
func (s *set) freeLine() *line {
	for i := range s.lines {
		if !s.lines[i].valid {
			return &s.lines[i]
		}
	}
	return nil
}

// leastRecentlyUsed returns the line with the oldest timestamp. Ties
// break toward the lowest slot index. Timestamps come from one global
// clock, so a linear scan is exactly LRU without maintaining an order
// list.
func (s *set) leastRecentlyUsed() *line {
	victim := &s.lines[0]
	for i := 1; i < len(s.lines); i++ {
		if s.lines[i].lastAccess < victim.lastAccess {
			victim = &s.lines[i]
		}
	}
	return victim
}
