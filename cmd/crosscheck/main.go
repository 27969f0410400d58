// Package main provides a validation tool that replays one trace
// through both the native cache model and the Akita-directory reference
// model, comparing every access and the final statistics.
//
// Usage:
//
//	crosscheck -s <s> -b <b> -E <E> -t <trace>
//
// Exit status is 0 when the models agree on every access, 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Xinyue-Yang/Cache-Simulator/cache"
	"github.com/Xinyue-Yang/Cache-Simulator/refcache"
	"github.com/Xinyue-Yang/Cache-Simulator/trace"
)

var (
	setBits       = flag.Int("s", -1, "Number of set index bits (there are 2**s sets)")
	blockBits     = flag.Int("b", -1, "Number of block offset bits (blocks are 2**b bytes)")
	associativity = flag.Int("E", 0, "Number of lines per set (associativity)")
	traceFile     = flag.String("t", "", "File name of the memory trace to process")
)

func main() {
	flag.Parse()

	if *setBits < 0 || *blockBits < 0 || *associativity <= 0 || *traceFile == "" {
		fmt.Fprintf(os.Stderr, "The -s, -b, -E and -t options must be supplied.\n")
		flag.Usage()
		os.Exit(1)
	}

	config := cache.Config{
		SetBits:       *setBits,
		BlockBits:     *blockBits,
		Associativity: *associativity,
	}

	native, err := cache.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid cache geometry: %v\n", err)
		os.Exit(1)
	}
	reference, err := refcache.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid cache geometry: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(*traceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	accesses := 0
	scanner := trace.NewScanner(f)
	for scanner.Scan() {
		record := scanner.Record()
		accesses++

		nativeResult := native.Access(record.Op, record.Addr)
		referenceResult := reference.Access(record.Op, record.Addr)
		if nativeResult != referenceResult {
			fmt.Fprintf(os.Stderr,
				"Divergence at access %d (%s %x,%d): native %+v, reference %+v\n",
				accesses, record.Op, record.Addr, record.Size,
				nativeResult, referenceResult)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error processing trace: %v\n", err)
		os.Exit(1)
	}

	nativeStats := native.Stats()
	referenceStats := reference.Stats()
	if nativeStats != referenceStats {
		fmt.Fprintf(os.Stderr, "Final statistics diverge: native %+v, reference %+v\n",
			nativeStats, referenceStats)
		os.Exit(1)
	}

	fmt.Printf("%d accesses: models agree\n", accesses)
	fmt.Printf("hits:%d misses:%d evictions:%d dirty_bytes:%d dirty_evicted_bytes:%d\n",
		nativeStats.Hits, nativeStats.Misses, nativeStats.Evictions,
		nativeStats.DirtyBytes, nativeStats.DirtyBytesEvicted)
}
