package bot

import "errors"

var (
	// ErrIndexOutOfBound indicates lnum violated the permitted range for the
	// operation being called (see each operation's doc comment for its
	// range). No state is mutated when this error is returned.
	ErrIndexOutOfBound = errors.New("bot: index out of bound")

	// ErrEmptyBuffer indicates Init was called with a zero-length buffer.
	// The tree always has at least one line (line 0 at offset 0), so there
	// is no valid tree to build from nothing.
	ErrEmptyBuffer = errors.New("bot: buffer must be non-empty")
)
