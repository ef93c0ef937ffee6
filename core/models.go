package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MatchResult records every occurrence of one phrase within the body of a
// searched text. A result is only produced for phrases with at least one
// occurrence; phrases that never match yield no result at all.
type MatchResult struct {
	Id        ID    // Content-based ID of the phrase
	WorkerID  int64 // Pool worker that evaluated the phrase, 0 when it ran on the caller. Diagnostic only.
	Phrase    string
	Title     string // First line of the searched text, excluded from matching
	Positions []int  // Ascending byte offsets into the body where the phrase starts
}

// Count returns the number of occurrences found.
func (r *MatchResult) Count() int {
	return len(r.Positions)
}

// String renders the result for display.
func (r *MatchResult) String() string {
	positions := make([]string, len(r.Positions))
	for i, p := range r.Positions {
		positions[i] = fmt.Sprintf("%d", p)
	}
	return fmt.Sprintf("%q matched %d time(s) at [%s]", r.Phrase, len(r.Positions), strings.Join(positions, ", "))
}
