// Package cache implements a functional model of a set-associative
// write-back cache with LRU replacement.
//
// The model tracks hits, misses, evictions, and dirty-line accounting
// for a replayed memory trace. It does not model timing or data
// contents; only the tag state a real cache would hold.
package cache

import "fmt"

// addressBits is the width of simulated addresses.
const addressBits = 64

// maxFieldBits bounds SetBits and BlockBits individually so that the
// derived set count and block size fit in a positive int.
const maxFieldBits = 62

// Config describes the cache geometry.
type Config struct {
	// SetBits is the number of set-index bits; there are 1<<SetBits sets.
	SetBits int
	// BlockBits is the number of block-offset bits; blocks are
	// 1<<BlockBits bytes.
	BlockBits int
	// Associativity is the number of lines per set.
	Associativity int
}

// Validate checks that the geometry describes a realizable cache.
// It is called once at construction; decode and lookup cannot fail
// afterwards.
func (c Config) Validate() error {
	if c.SetBits < 0 {
		return fmt.Errorf("set-index bits must be >= 0, got %d", c.SetBits)
	}
	if c.BlockBits < 0 {
		return fmt.Errorf("block-offset bits must be >= 0, got %d", c.BlockBits)
	}
	if c.Associativity < 1 {
		return fmt.Errorf("associativity must be >= 1, got %d", c.Associativity)
	}
	if c.SetBits > maxFieldBits {
		return fmt.Errorf("set count 2**%d does not fit in an int, set-index bits must be <= %d",
			c.SetBits, maxFieldBits)
	}
	if c.BlockBits > maxFieldBits {
		return fmt.Errorf("block size 2**%d does not fit in an int, block-offset bits must be <= %d",
			c.BlockBits, maxFieldBits)
	}
	if c.SetBits+c.BlockBits > addressBits {
		return fmt.Errorf("set-index bits + block-offset bits must not exceed %d, got %d",
			addressBits, c.SetBits+c.BlockBits)
	}
	return nil
}

// NumSets returns the number of sets in the cache.
func (c Config) NumSets() int {
	return 1 << c.SetBits
}

// BlockSize returns the number of bytes per cache line.
func (c Config) BlockSize() int {
	return 1 << c.BlockBits
}

// Decode splits an address into its tag and set index. The set index is
// the SetBits bits immediately above the block offset; the tag is all
// remaining high-order bits.
func (c Config) Decode(addr uint64) (tag uint64, setIndex int) {
	setIndex = int((addr >> c.BlockBits) & (uint64(c.NumSets()) - 1))
	tag = addr >> (c.SetBits + c.BlockBits)
	return tag, setIndex
}
