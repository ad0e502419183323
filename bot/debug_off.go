//go:build !bot_debug

package bot

// debugCheckMonotonic is a no-op in release builds. The design permits
// set/incr to drive a line's start below its predecessor's or above its
// successor's; it is the caller's responsibility to avoid that. Build with
// -tags bot_debug to enable the check instead of silently allowing it.
func debugCheckMonotonic(t *Tree, lnum int, newOff int64) {}
