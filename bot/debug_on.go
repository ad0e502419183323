//go:build bot_debug

package bot

import "fmt"

// debugCheckMonotonic panics if lnum's new offset no longer falls strictly
// between its predecessor's and successor's absolute offsets, per the
// debug-mode invariant check Design Notes §9 recommends adding. It is only
// compiled in with -tags bot_debug; release builds never pay for it and
// never enforce it.
func debugCheckMonotonic(t *Tree, lnum int, newOff int64) {
	if lnum > 0 {
		if prev, err := t.Get(lnum - 1); err == nil && newOff <= prev {
			panic(fmt.Sprintf("bot: line %d offset %d not after predecessor offset %d", lnum, newOff, prev))
		}
	}
	if lnum < t.Len()-1 {
		if next, err := t.Get(lnum + 1); err == nil && newOff >= next {
			panic(fmt.Sprintf("bot: line %d offset %d not before successor offset %d", lnum, newOff, next))
		}
	}
}
