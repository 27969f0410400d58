// Package main provides the csim command, a trace-driven simulator of a
// set-associative write-back cache.
//
// Usage:
//
//	csim [-v] -s <s> -b <b> -E <E> -t <trace>
//
// The -s, -b, -E and -t options must be supplied for all simulations.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Xinyue-Yang/Cache-Simulator/cache"
	"github.com/Xinyue-Yang/Cache-Simulator/replay"
	"github.com/Xinyue-Yang/Cache-Simulator/trace"
)

var (
	setBits       = flag.Int("s", -1, "Number of set index bits (there are 2**s sets)")
	blockBits     = flag.Int("b", -1, "Number of block offset bits (blocks are 2**b bytes)")
	associativity = flag.Int("E", 0, "Number of lines per set (associativity)")
	traceFile     = flag.String("t", "", "File name of the memory trace to process")
	verbose       = flag.Bool("v", false, "Verbose mode: report the effect of each memory operation")
)

func main() {
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}

	if *setBits < 0 || *blockBits < 0 || *associativity <= 0 || *traceFile == "" {
		fmt.Fprintf(os.Stderr, "The -s, -b, -E and -t options must be supplied for all simulations.\n")
		flag.Usage()
		os.Exit(1)
	}

	config := cache.Config{
		SetBits:       *setBits,
		BlockBits:     *blockBits,
		Associativity: *associativity,
	}

	c, err := cache.New(config)
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

	fmt.Printf("s=%d, E=%d, b=%d\n", *setBits, *associativity, *blockBits)

	opts := replay.Options{
		Verbose: *verbose,
		Output:  os.Stdout,
	}
	if err := replay.Run(c, trace.NewScanner(f), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error processing trace: %v\n", err)
		os.Exit(1)
	}

	replay.PrintSummary(os.Stdout, c.Stats())
}
