package bot

import "github.com/xiaoshihou514/bot/internal/arena"

// Lines returns a range-over-func iterator over every (line number, byte
// offset) pair in t, in ascending line order. It walks the tree in-order,
// accumulating absolute offsets and line numbers on the way down rather than
// calling Get per line, so the whole traversal stays O(N) instead of
// O(N log N).
//
// The iterator must not be used to mutate t; doing so invalidates the
// accumulators carried down the stack.
func (t *Tree) Lines() func(yield func(lnum int, off int64) bool) {
	return func(yield func(lnum int, off int64) bool) {
		inorder(t.root, 0, 0, yield)
	}
}

// inorder walks n's subtree, given the absolute offset and line number of
// n's parent (0, 0 for the root), invoking yield for every node in ascending
// order. It returns false once yield asks to stop, so callers can short
// circuit the walk.
func inorder(n *arena.Node, parentOff, parentLnum int64, yield func(lnum int, off int64) bool) bool {
	if n == nil {
		return true
	}
	off := parentOff + n.ROff
	ln := parentLnum + n.RLnum
	if !inorder(n.Left, off, ln, yield) {
		return false
	}
	if !yield(int(ln), off) {
		return false
	}
	return inorder(n.Right, off, ln, yield)
}
