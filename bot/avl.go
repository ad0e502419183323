package bot

import "github.com/xiaoshihou514/bot/internal/arena"

// rebalancePath recomputes heights and fixes any AVL violation along the
// path from start up to the root, one node at a time. It is used after
// both InsertAfter (where at most one rotation is ever needed) and Remove
// (where, unlike insertion, a rotation at one level can still leave an
// ancestor unbalanced, so every ancestor must be checked).
func (t *Tree) rebalancePath(start *arena.Node) {
	for n := start; n != nil; {
		next := n.Parent
		t.rebalance(n)
		n = next
	}
}

// rebalance recomputes n's height and, if n is out of AVL balance, performs
// the appropriate single or double rotation (LL/RR/LR/RL) and relinks the
// resulting subtree root into whatever held n — n's parent's child slot, or
// t.root. n's children must already be balanced and have correct heights.
func (t *Tree) rebalance(n *arena.Node) {
	arena.UpdateHeight(n)
	bf := arena.BalanceFactor(n)

	switch {
	case bf > 1:
		if arena.BalanceFactor(n.Left) < 0 {
			n.Left = arena.RotateLeft(n.Left) // LR: convert to LL first
		}
		t.relink(n, arena.RotateRight(n))
	case bf < -1:
		if arena.BalanceFactor(n.Right) > 0 {
			n.Right = arena.RotateRight(n.Right) // RL: convert to RR first
		}
		t.relink(n, arena.RotateLeft(n))
	}
}

// relink attaches newRoot (the result of rotating the subtree formerly
// rooted at old) into old's former slot: the root pointer if old had no
// parent, or the matching child field of old's former parent otherwise.
// The rotation functions already set newRoot.Parent to old's former parent;
// relink only needs to know which side to write.
func (t *Tree) relink(old, newRoot *arena.Node) {
	p := newRoot.Parent
	if p == nil {
		t.root = newRoot
		return
	}
	if p.Left == old {
		p.Left = newRoot
	} else {
		p.Right = newRoot
	}
}
