// Package arena owns tree node storage and the two primitive AVL rotations,
// including the relative-offset/line-number fix-up that must accompany every
// rotation. Nothing above this package is allowed to touch a Node's Left,
// Right, or Parent fields directly during a rotation; everything else
// (bulk construction, path walks, balancing decisions) lives in the bot
// package and treats Node as a plain linked structure.
package arena

import (
	"fmt"
	"os"
	"sync"
)

// debugArena is a compile-time toggle for verbose allocator invariant
// logging, mirroring hive/alloc's debugAlloc const.
const debugArena = false

// arenaTrace is a runtime toggle for per-allocation tracing, controlled by
// the BOT_TRACE_ARENA environment variable, mirroring hive/alloc's
// logAlloc/HIVE_LOG_ALLOC pair.
var arenaTrace = os.Getenv("BOT_TRACE_ARENA") != ""

// Node is one line start in a Balanced Offset Tree.
//
// ROff and RLnum are relative to the node's parent: the absolute offset or
// line number of a node is the sum of ROff/RLnum along the root-to-node
// path. The root's own ROff and RLnum are relative to an implicit zero
// parent, so they equal the root's absolute values.
//
// The spec calls for a signed 128-bit ROff on the grounds that rotation
// arithmetic transiently sums two absolute offsets. Any buffer that fits in
// process memory has offsets well under 2^62, and the rotation fix-up below
// only ever adds two already-relative deltas (never two absolutes), so a
// signed 64-bit field cannot overflow for any realistic input. DESIGN.md
// records this narrowing decision.
type Node struct {
	ROff  int64
	RLnum int64

	Left   *Node
	Right  *Node
	Parent *Node

	height int8
}

// Height returns the cached subtree height of n (0 for a leaf, -1 for nil).
func Height(n *Node) int8 {
	if n == nil {
		return -1
	}
	return n.height
}

// UpdateHeight recomputes n's cached height from its children. Callers must
// call this bottom-up after any structural change below n.
func UpdateHeight(n *Node) {
	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		n.height = l + 1
	} else {
		n.height = r + 1
	}
}

// BalanceFactor returns height(left) - height(right). AVL requires this to
// stay in [-1, 1] at every node.
func BalanceFactor(n *Node) int {
	return int(Height(n.Left)) - int(Height(n.Right))
}

// Arena allocates and recycles Nodes. It exists to give node storage a
// single owner for the tree's teardown pass and to avoid round-tripping
// through the garbage collector on every insert/remove pair, in the
// free-list-of-structs style.
type Arena struct {
	pool sync.Pool
	live int
}

// New returns an empty Arena ready to allocate Nodes.
func New() *Arena {
	a := &Arena{}
	a.pool.New = func() any { return new(Node) }
	return a
}

// NewNode allocates a Node with the given relative fields and parent link,
// reusing a released Node's storage when one is available.
func (a *Arena) NewNode(roff, rlnum int64, parent *Node) *Node {
	n := a.pool.Get().(*Node)
	*n = Node{ROff: roff, RLnum: rlnum, Parent: parent}
	a.live++
	traceLogf("alloc node roff=%d rlnum=%d live=%d", roff, rlnum, a.live)
	if a.live%10000 == 0 {
		debugLogf("live node count reached %d", a.live)
	}
	return n
}

// Release returns n's storage to the arena. The caller must have already
// unlinked n from the tree (no remaining Left/Right/Parent references into
// it from live nodes).
func (a *Arena) Release(n *Node) {
	n.Left, n.Right, n.Parent = nil, nil, nil
	a.pool.Put(n)
	a.live--
	traceLogf("release node live=%d", a.live)
	if a.live < 0 {
		debugLogf("live count went negative: double release?")
	}
}

// Len reports the number of Nodes currently allocated and not yet released.
func (a *Arena) Len() int {
	return a.live
}

// Teardown releases every node in the subtree rooted at n via a post-order
// traversal, per the resource-discipline contract: node memory is scoped to
// the tree, and teardown must walk children before releasing their parent.
func (a *Arena) Teardown(n *Node) {
	if n == nil {
		return
	}
	a.Teardown(n.Left)
	a.Teardown(n.Right)
	a.Release(n)
}

// traceLogf prints a trace message if arenaTrace is enabled.
func traceLogf(format string, args ...any) {
	if arenaTrace {
		fmt.Fprintf(os.Stderr, "arena: "+format+"\n", args...)
	}
}

// debugLogf prints a debug message if debugArena is enabled.
func debugLogf(format string, args ...any) {
	if debugArena {
		fmt.Fprintf(os.Stderr, "arena[debug]: "+format+"\n", args...)
	}
}
