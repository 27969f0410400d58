// Package trace parses memory-access trace files.
//
// A trace is a text file with one record per line:
//
//	L 7ff0,8
//	S 10,4
//
// The first field is the operation (L for load, S for store), followed
// by an unprefixed hexadecimal address and a decimal size separated by
// a comma. Parsing is fail-fast: the first malformed line aborts the
// whole replay.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Xinyue-Yang/Cache-Simulator/cache"
)

// MaxSize bounds the size field of a record. Sizes must be in
// [0, MaxSize).
const MaxSize = 16

// Record is one parsed memory operation.
type Record struct {
	Op   cache.Op
	Addr uint64
	// Size is the number of bytes touched. It is validated during
	// parsing but does not affect hit/miss accounting.
	Size int
}

// Scanner reads trace records from an input stream in file order.
type Scanner struct {
	scanner *bufio.Scanner
	lineNum int
	record  Record
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next record, skipping blank lines. It returns
// false at end of input or on a malformed line; Err distinguishes the
// two.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.scanner.Scan() {
		s.lineNum++
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}

		record, err := parseLine(text)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.lineNum, err)
			return false
		}
		s.record = record
		return true
	}

	s.err = s.scanner.Err()
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the first error encountered, or nil after a clean end of
// input.
func (s *Scanner) Err() error {
	return s.err
}

func parseLine(text string) (Record, error) {
	// Fields are separated by any run of whitespace, tabs included.
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("malformed record %q", text)
	}

	var op cache.Op
	switch fields[0] {
	case "L":
		op = cache.OpLoad
	case "S":
		op = cache.OpStore
	default:
		return Record{}, fmt.Errorf("unknown operation %q", fields[0])
	}

	addrField, sizeField, ok := strings.Cut(fields[1], ",")
	if !ok {
		return Record{}, fmt.Errorf("malformed record %q: missing size", text)
	}

	addr, err := strconv.ParseUint(addrField, 16, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad address %q: %w", addrField, err)
	}

	size, err := strconv.Atoi(sizeField)
	if err != nil {
		return Record{}, fmt.Errorf("bad size %q: %w", sizeField, err)
	}
	if size < 0 || size >= MaxSize {
		return Record{}, fmt.Errorf("size %d out of range [0, %d)", size, MaxSize)
	}

	return Record{Op: op, Addr: addr, Size: size}, nil
}
