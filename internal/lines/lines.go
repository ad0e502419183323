// Package lines turns a raw UTF-8 byte buffer into the sorted array of
// byte offsets at which each line begins. It is the Line-Start Extractor
// collaborator described by the balanced-offset-tree design: trivial
// preprocessing that the tree itself never has to reason about.
package lines

import "unicode/utf8"

// Starts scans b and returns the ascending byte offsets at which each line
// begins: offset 0, plus one entry immediately following every 0x0A byte.
// Only '\n' is treated as a line break; '\r' is ordinary content.
//
// An empty buffer yields an empty slice, not []int64{0} — callers that need
// at least one line must reject empty input themselves, as bot.Init does
// with ErrEmptyBuffer.
//
// Starts fails with ErrInvalidUTF8 if b is not valid UTF-8.
func Starts(b []byte) ([]int64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}

	starts := make([]int64, 0, estimateLines(b))
	starts = append(starts, 0)
	for i, c := range b {
		if c == '\n' {
			starts = append(starts, int64(i+1))
		}
	}
	return starts, nil
}

// estimateLines gives io-free pre-allocation sizing for the common case.
func estimateLines(b []byte) int {
	n := 1
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}
