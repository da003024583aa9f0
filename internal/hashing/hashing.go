// Package hashing detects puzzles that share a starting position.
package hashing

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// PositionKey hashes the placement and side-to-move fields of a FEN
// string. Castling, en passant and the move counters are ignored, so
// the same diagram reached at different moves gets the same key.
func PositionKey(position string) uint64 {
	fields := strings.Fields(position)
	switch len(fields) {
	case 0:
		return xxhash.Sum64String("")
	case 1:
		return xxhash.Sum64String(fields[0] + " w")
	}
	return xxhash.Sum64String(fields[0] + " " + fields[1])
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use.
type DuplicateDetector struct {
	// seen maps a position key to the ID of the first puzzle with it.
	seen           map[uint64]string
	duplicateCount int
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{seen: make(map[uint64]string)}
}

// CheckAndAdd records the position of puzzle id. If the position was seen
// before it returns the ID of the first puzzle that had it and true.
func (d *DuplicateDetector) CheckAndAdd(id, position string) (string, bool) {
	key := PositionKey(position)
	if first, ok := d.seen[key]; ok {
		d.duplicateCount++
		return first, true
	}
	d.seen[key] = id
	return "", false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions seen.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[uint64]string)
	d.duplicateCount = 0
}
