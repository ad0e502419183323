package bot

import "github.com/xiaoshihou514/bot/internal/arena"

// Remove deletes line lnum, renumbering and reoffsetting every later line
// down by one, and AVL-rebalances the tree.
//
// This completes the behavior the design describes in §4.7 but the
// reference implementation leaves unreachable/TODO (see Design Notes §9 and
// DESIGN.md).
//
// Preconditions: 0 < lnum < t.Len().
func (t *Tree) Remove(lnum int) error {
	victim, victimOff, _, ok := t.locateMutable(lnum)
	if !ok {
		return ErrIndexOutOfBound
	}

	var succNode *arena.Node
	if lnum+1 < int(t.max) {
		succ, succOff, _, ok := locateLnum(t.root, int64(lnum)+1)
		if !ok {
			panic("bot: tree search exhausted without match for a valid line number")
		}
		width := succOff - victimOff
		t.applyDelta(succ, -width, -1)
		succNode = succ
	}

	if victim.Right == nil {
		t.removeWithAtMostOneChild(victim)
	} else {
		t.removeWithTwoChildren(victim, succNode)
	}
	t.max--
	return nil
}

// removeWithAtMostOneChild handles the BST-delete case where victim has no
// right child (so at most a left child): victim's left child, if any, is
// promoted into victim's slot.
func (t *Tree) removeWithAtMostOneChild(victim *arena.Node) {
	child := victim.Left
	if child != nil {
		child.ROff += victim.ROff
		child.RLnum += victim.RLnum
		child.Parent = victim.Parent
	}
	t.setParentChild(victim, child)

	rebalanceFrom := victim.Parent
	t.a.Release(victim)
	t.rebalancePath(rebalanceFrom)
}

// removeWithTwoChildren handles the BST-delete case where victim has a right
// child (its left child may be nil). succNode is victim's in-order successor — the leftmost node of
// victim.Right, which by the tree's dense BST-on-line-number invariant is
// exactly the node holding line L(victim)+1, the same node Remove already
// ran the §4.3 shift against. Because that shift leaves succNode's new
// absolute value exactly equal to victim's OLD absolute value (removing a
// line and shifting every later line down by one means the former lnum+1
// line becomes the new lnum), succNode can take over victim's structural
// slot — parent link, left subtree, right subtree — by reusing victim's own
// relative fields verbatim; no other node's relative encoding needs to
// change.
func (t *Tree) removeWithTwoChildren(victim, succNode *arena.Node) {
	succParent := succNode.Parent
	succRight := succNode.Right // succNode has no left child: it is leftmost.

	if succParent != victim {
		succParent.Left = succRight
		if succRight != nil {
			succRight.ROff += succNode.ROff
			succRight.RLnum += succNode.RLnum
			succRight.Parent = succParent
		}
		succNode.Right = victim.Right
		victim.Right.Parent = succNode
	}
	// else: succNode == victim.Right already, so succNode.Right == succRight
	// and no right-subtree relinking is needed.

	succNode.Left = victim.Left
	if victim.Left != nil {
		victim.Left.Parent = succNode
	}

	succNode.ROff, succNode.RLnum = victim.ROff, victim.RLnum
	succNode.Parent = victim.Parent
	t.setParentChild(victim, succNode)

	rebalanceFrom := succParent
	if succParent == victim {
		rebalanceFrom = succNode
	}
	t.a.Release(victim)
	t.rebalancePath(rebalanceFrom)
}

// setParentChild relinks old's parent's child slot (or the tree root) to
// point at replacement, which may be nil.
func (t *Tree) setParentChild(old, replacement *arena.Node) {
	p := old.Parent
	if p == nil {
		t.root = replacement
		return
	}
	if p.Left == old {
		p.Left = replacement
	} else {
		p.Right = replacement
	}
}
