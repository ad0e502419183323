package bot

import "github.com/xiaoshihou514/bot/internal/arena"

// side identifies which child slot a node occupies relative to its parent,
// used by the §4.3 upward walk and by BST-insertion descent alike.
const (
	sideLeft = iota
	sideRight
)

// Tree is a Balanced Offset Tree: max lines indexed by line number 0..max-1,
// each resolving to the absolute byte offset at which that line begins.
type Tree struct {
	root *arena.Node
	max  uint32
	a    *arena.Arena
}

// Len reports the number of lines currently indexed.
func (t *Tree) Len() int {
	return int(t.max)
}

// Deinit releases every node owned by t. The tree must not be used
// afterward. Deinit performs the post-order release the design's resource
// model requires; it is idempotent on an already-released tree only in the
// trivial sense that a second call walks a nil root and does nothing.
func (t *Tree) Deinit() {
	if t.root == nil {
		return
	}
	t.a.Teardown(t.root)
	t.root = nil
	t.max = 0
}

// locateLnum descends from the root accumulating ROff/RLnum, returning the
// node whose cumulative line number equals lnum, and that node's absolute
// (offset, line number). ok is false if no such node exists in the tree,
// which for any lnum in [0, max) is unreachable in a correctly built tree
// and signals a corrupted invariant (see §4.4).
func locateLnum(root *arena.Node, lnum int64) (n *arena.Node, off, ln int64, ok bool) {
	cur := root
	for cur != nil {
		off += cur.ROff
		ln += cur.RLnum
		switch {
		case lnum == ln:
			return cur, off, ln, true
		case lnum < ln:
			cur = cur.Left
		default:
			cur = cur.Right
		}
	}
	return nil, 0, 0, false
}

// absoluteOf returns n's absolute (offset, line number) by summing ROff and
// RLnum along the path to the root. Used where we already hold a node
// pointer (e.g. from locateLnum) and need its absolute value again after
// some other part of the tree has mutated.
func absoluteOf(n *arena.Node) (off, ln int64) {
	for c := n; c != nil; c = c.Parent {
		off += c.ROff
		ln += c.RLnum
	}
	return off, ln
}
