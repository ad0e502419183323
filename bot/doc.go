// Package bot implements the Balanced Offset Tree: a self-balancing binary
// search tree that maps line numbers to byte offsets for a UTF-8 text
// buffer and keeps that mapping correct, in O(log N), as lines are shifted,
// inserted, and removed.
//
// A Tree is built once from a buffer via Init and then mutated through Get,
// Set, Incr, Decr, InsertAfter, and Remove. Every node stores its offset and
// line number as deltas from its parent (see internal/arena), which is what
// lets a single-line edit or a rotation touch only the O(log N) nodes on a
// root-to-target path instead of an entire subtree.
//
// Tree is not safe for concurrent use; callers must serialize their own
// access, per the design's single-threaded resource model.
package bot
