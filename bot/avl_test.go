package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiaoshihou514/bot/internal/arena"
)

// assertBalanced walks root checking |height(left)-height(right)| <= 1 at
// every node, failing t if any node violates AVL balance.
func assertBalanced(t *testing.T, root *arena.Node) {
	t.Helper()
	var walk func(n *arena.Node) int8
	walk = func(n *arena.Node) int8 {
		if n == nil {
			return -1
		}
		l := walk(n.Left)
		r := walk(n.Right)
		bf := int(l) - int(r)
		assert.LessOrEqualf(t, bf, 1, "node unbalanced: bf=%d", bf)
		assert.GreaterOrEqualf(t, bf, -1, "node unbalanced: bf=%d", bf)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	walk(root)
}

// assertParentConsistent checks every non-nil child's Parent pointer refers
// back to its actual parent.
func assertParentConsistent(t *testing.T, root *arena.Node) {
	t.Helper()
	var walk func(n, parent *arena.Node)
	walk = func(n, parent *arena.Node) {
		if n == nil {
			return
		}
		assert.Same(t, parent, n.Parent)
		walk(n.Left, n)
		walk(n.Right, n)
	}
	walk(root, nil)
}

// assertDenseLineNumbers checks the tree's line numbers form exactly
// {0, ..., max-1} with no gaps or duplicates.
func assertDenseLineNumbers(t *testing.T, tr *Tree) {
	t.Helper()
	seen := make(map[int64]bool, tr.Len())
	tr.Lines()(func(lnum int, off int64) bool {
		seen[int64(lnum)] = true
		return true
	})
	assert.Len(t, seen, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		assert.Truef(t, seen[int64(i)], "line number %d missing", i)
	}
}

func assertTreeInvariants(t *testing.T, tr *Tree) {
	t.Helper()
	assertBalanced(t, tr.root)
	assertParentConsistent(t, tr.root)
	assertDenseLineNumbers(t, tr)
	off, err := tr.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), off)
}
