package bot

import "github.com/xiaoshihou514/bot/internal/arena"

// InsertAfter inserts a new line immediately after lnum. Its start byte is
// the current start of line lnum+1 (which is then pushed down to lnum+2),
// or one past line lnum's own start if lnum is the last line (append).
// Every line number > lnum shifts up by one; the tree is AVL-rebalanced
// afterward.
//
// Preconditions: 0 <= lnum < t.Len().
func (t *Tree) InsertAfter(lnum int) error {
	if lnum < 0 || lnum >= int(t.max) {
		return ErrIndexOutOfBound
	}

	newLnum := int64(lnum) + 1
	appending := lnum == int(t.max)-1

	var newOff int64
	if appending {
		_, off, _, ok := locateLnum(t.root, int64(lnum))
		if !ok {
			panic("bot: tree search exhausted without match for a valid line number")
		}
		newOff = off + 1
	} else {
		target, off, _, ok := locateLnum(t.root, newLnum)
		if !ok {
			panic("bot: tree search exhausted without match for a valid line number")
		}
		newOff = off
		t.applyDelta(target, 1, 1)
	}

	parent, side := t.findInsertionSlot(newLnum)
	var parentOff, parentLnum int64
	if parent != nil {
		parentOff, parentLnum = absoluteOf(parent)
	}
	n := t.a.NewNode(newOff-parentOff, newLnum-parentLnum, parent)
	if parent == nil {
		t.root = n
	} else if side == sideLeft {
		parent.Left = n
	} else {
		parent.Right = n
	}
	t.max++

	t.rebalancePath(n)
	return nil
}

// findInsertionSlot descends the tree (after any shift from applyDelta has
// already been applied) looking for the nil child where a node keyed by
// lnum belongs, returning that child's would-be parent and which side it
// occupies. lnum must not already be present in the tree.
func (t *Tree) findInsertionSlot(lnum int64) (parent *arena.Node, side int) {
	var ln int64
	cur := t.root
	for cur != nil {
		ln += cur.RLnum
		parent = cur
		if lnum < ln {
			side = sideLeft
			cur = cur.Left
		} else {
			side = sideRight
			cur = cur.Right
		}
	}
	return parent, side
}
