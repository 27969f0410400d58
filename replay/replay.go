// Package replay drives a cache model from a stream of trace records.
package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/Xinyue-Yang/Cache-Simulator/cache"
	"github.com/Xinyue-Yang/Cache-Simulator/trace"
)

// Options control optional reporting during a replay.
type Options struct {
	// Verbose enables one report line per processed access.
	Verbose bool
	// Output receives verbose report lines. Defaults to io.Discard.
	Output io.Writer
}

// Run replays every record from s through c in file order. It stops on
// the first malformed line and returns the scanner's error; statistics
// for a partial replay are not meaningful and must not be reported.
func Run(c *cache.Cache, s *trace.Scanner, opts Options) error {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	for s.Scan() {
		record := s.Record()
		result := c.Access(record.Op, record.Addr)

		if opts.Verbose {
			fmt.Fprintln(out, Describe(record, result))
		}
	}

	return s.Err()
}

// Describe formats one verbose report line, e.g.
// "S 10,4 miss eviction dirty-evicted".
func Describe(record trace.Record, result cache.AccessResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %x,%d", record.Op, record.Addr, record.Size)

	if result.Hit {
		b.WriteString(" hit")
	} else {
		b.WriteString(" miss")
	}
	if result.Evicted {
		b.WriteString(" eviction")
		if result.EvictedWasDirty {
			b.WriteString(" dirty-evicted")
		}
	}

	return b.String()
}

// PrintSummary writes the final statistics in the reference summary
// format.
func PrintSummary(w io.Writer, stats cache.Statistics) {
	fmt.Fprintf(w, "hits:%d misses:%d evictions:%d dirty_bytes:%d dirty_evicted_bytes:%d\n",
		stats.Hits, stats.Misses, stats.Evictions,
		stats.DirtyBytes, stats.DirtyBytesEvicted)
}
