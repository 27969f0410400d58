// Package main provides a synthetic memory-trace generator.
//
// Usage:
//
//	tracegen [-n count] [-seed seed] [-addr-bits bits] [-stores ratio] [-max-size size] > trace.txt
//
// Traces are emitted in the format consumed by csim and crosscheck.
// The generator is seeded, so a given flag combination always produces
// the same trace.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/Xinyue-Yang/Cache-Simulator/trace"
)

var (
	count    = flag.Int("n", 1000, "Number of records to generate")
	seed     = flag.Int64("seed", 1, "Random seed")
	addrBits = flag.Int("addr-bits", 16, "Addresses are drawn from [0, 2**addr-bits)")
	stores   = flag.Float64("stores", 0.5, "Fraction of records that are stores")
	maxSize  = flag.Int("max-size", trace.MaxSize-1, "Largest record size to generate")
)

// params collects the generator knobs after flag validation.
type params struct {
	count    int
	seed     int64
	addrBits int
	stores   float64
	maxSize  int
}

func (p params) validate() error {
	if p.count < 0 {
		return fmt.Errorf("record count must be >= 0, got %d", p.count)
	}
	if p.addrBits < 1 || p.addrBits > 64 {
		return fmt.Errorf("addr-bits must be in [1, 64], got %d", p.addrBits)
	}
	if p.stores < 0 || p.stores > 1 {
		return fmt.Errorf("store fraction must be in [0, 1], got %g", p.stores)
	}
	if p.maxSize < 1 || p.maxSize >= trace.MaxSize {
		return fmt.Errorf("max-size must be in [1, %d], got %d", trace.MaxSize-1, p.maxSize)
	}
	return nil
}

// generate writes p.count records to w, seeded by p.seed.
func generate(w io.Writer, p params) {
	rng := rand.New(rand.NewSource(p.seed))
	mask := ^uint64(0) >> (64 - p.addrBits)

	for i := 0; i < p.count; i++ {
		op := "L"
		if rng.Float64() < p.stores {
			op = "S"
		}
		addr := rng.Uint64() & mask
		size := 1 + rng.Intn(p.maxSize)
		fmt.Fprintf(w, "%s %x,%d\n", op, addr, size)
	}
}

func main() {
	flag.Parse()

	p := params{
		count:    *count,
		seed:     *seed,
		addrBits: *addrBits,
		stores:   *stores,
		maxSize:  *maxSize,
	}
	if err := p.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid generator parameters: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer func() { _ = w.Flush() }()

	generate(w, p)
}
