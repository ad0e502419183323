package bot

import (
	"fmt"

	"github.com/xiaoshihou514/bot/internal/arena"
	"github.com/xiaoshihou514/bot/internal/lines"
)

// Init builds a fresh Tree from buf, which must be non-empty and valid
// UTF-8. max is set to one plus the number of '\n' bytes in buf.
//
// Construction uses recursive median splitting of the line-start array, not
// repeated InsertAfter calls, so the result is perfectly balanced and built
// in O(N) rather than O(N log N) — see Design Notes §9, "Bulk construction
// bypass".
func Init(buf []byte) (*Tree, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyBuffer
	}

	starts, err := lines.Starts(buf)
	if err != nil {
		return nil, fmt.Errorf("bot: init: %w", err)
	}
	if len(starts) == 0 {
		return nil, ErrEmptyBuffer
	}

	a := arena.New()
	root := buildBalanced(a, starts, 0, len(starts), 0, 0, nil)
	return &Tree{root: root, max: uint32(len(starts)), a: a}, nil
}

// buildBalanced recursively builds a perfectly balanced subtree over
// starts[lo:hi], where parentOff/parentLnum are the absolute offset and
// line number of the (not-yet-linked) parent this subtree will hang off of.
func buildBalanced(a *arena.Arena, starts []int64, lo, hi int, parentOff, parentLnum int64, parent *arena.Node) *arena.Node {
	if lo >= hi {
		return nil
	}
	mid := (lo + hi) / 2

	n := a.NewNode(starts[mid]-parentOff, int64(mid)-parentLnum, parent)
	n.Left = buildBalanced(a, starts, lo, mid, starts[mid], int64(mid), n)
	n.Right = buildBalanced(a, starts, mid+1, hi, starts[mid], int64(mid), n)
	arena.UpdateHeight(n)
	return n
}
