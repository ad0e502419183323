package bot

import "github.com/xiaoshihou514/bot/internal/arena"

// applyDelta implements the relative-encoding update rule (§4.3): it adjusts
// exactly the O(log N) nodes needed so that every node with absolute line
// number >= L(target) has both its absolute offset and its absolute line
// number shifted by (deltaOff, deltaLnum), and every other node is left
// untouched.
//
// target must already be linked into t (it is read via its Parent chain).
func (t *Tree) applyDelta(target *arena.Node, deltaOff, deltaLnum int64) {
	if deltaOff == 0 && deltaLnum == 0 {
		return
	}

	if target.Left != nil {
		target.Left.ROff -= deltaOff
		target.Left.RLnum -= deltaLnum
	}

	prevSide := sideLeft
	c := target
	for c.Parent != nil {
		p := c.Parent
		if c == p.Left {
			if prevSide == sideRight {
				c.ROff -= deltaOff
				c.RLnum -= deltaLnum
			}
			prevSide = sideLeft
		} else {
			if prevSide == sideLeft {
				c.ROff += deltaOff
				c.RLnum += deltaLnum
			}
			prevSide = sideRight
		}
		c = p
	}
	// c is now the root.
	if prevSide == sideLeft {
		c.ROff += deltaOff
		c.RLnum += deltaLnum
	}
}

// Set repositions line lnum to absolute byte offset off and shifts every
// later line by the same delta (off - old offset of lnum). This is the
// spec's documented behavior, not a "move only this line" primitive — see
// SetAbsolute/ShiftFrom for the split version, and Design Notes §9 for why
// the combined behavior is kept as the default.
//
// Preconditions: 0 < lnum < t.Len(). Line 0 is pinned to offset 0 and is
// never a valid target.
func (t *Tree) Set(lnum int, off int64) error {
	n, curOff, _, ok := t.locateMutable(lnum)
	if !ok {
		return ErrIndexOutOfBound
	}
	delta := off - curOff
	if delta == 0 {
		return nil
	}
	t.applyDelta(n, delta, 0)
	debugCheckMonotonic(t, lnum, off)
	return nil
}

// Incr shifts line lnum's absolute offset by delta (positive or negative),
// propagating the same delta to every later line. Equivalent to
// Set(lnum, old+delta).
//
// Preconditions: 0 < lnum < t.Len().
func (t *Tree) Incr(lnum int, delta int64) error {
	n, curOff, _, ok := t.locateMutable(lnum)
	if !ok {
		return ErrIndexOutOfBound
	}
	if delta == 0 {
		return nil
	}
	t.applyDelta(n, delta, 0)
	debugCheckMonotonic(t, lnum, curOff+delta)
	return nil
}

// Decr is Incr with the delta negated.
//
// Preconditions: 0 < lnum < t.Len().
func (t *Tree) Decr(lnum int, delta int64) error {
	return t.Incr(lnum, -delta)
}

// SetAbsolute repositions line lnum to absolute byte offset off WITHOUT
// shifting any other line — the split-out primitive the spec's Design
// Notes §9 flags as a future redesign of Set's surprising combined
// behavior. Because later lines are left untouched, callers can violate
// monotonicity far more easily than with Set; no validation is performed.
//
// Preconditions: 0 < lnum < t.Len().
func (t *Tree) SetAbsolute(lnum int, off int64) error {
	n, curOff, _, ok := t.locateMutable(lnum)
	if !ok {
		return ErrIndexOutOfBound
	}
	d := off - curOff
	n.ROff += d
	if n.Left != nil {
		n.Left.ROff -= d
	}
	if n.Right != nil {
		n.Right.ROff -= d
	}
	return nil
}

// ShiftFrom adds delta to the absolute offset of every line >= lnum,
// including lnum itself — the other half of Set's split, per Design Notes
// §9. Like Set, it never changes line numbers; unlike Set, it takes the
// delta directly rather than computing it from a new offset for lnum.
//
// Preconditions: 0 < lnum < t.Len().
func (t *Tree) ShiftFrom(lnum int, delta int64) error {
	n, _, _, ok := t.locateMutable(lnum)
	if !ok {
		return ErrIndexOutOfBound
	}
	if delta == 0 {
		return nil
	}
	t.applyDelta(n, delta, 0)
	return nil
}

// locateMutable locates lnum and rejects line 0, which every mutator except
// Get refuses to touch.
func (t *Tree) locateMutable(lnum int) (*arena.Node, int64, int64, bool) {
	if lnum <= 0 || lnum >= int(t.max) {
		return nil, 0, 0, false
	}
	return locateLnum(t.root, int64(lnum))
}
