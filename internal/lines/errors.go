package lines

import "errors"

// ErrInvalidUTF8 indicates the scanned buffer was not valid UTF-8.
var ErrInvalidUTF8 = errors.New("lines: invalid utf-8")
