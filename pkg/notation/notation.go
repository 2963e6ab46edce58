// Package notation reads and writes chess moves as terse four-or-five
// character strings and as Standard Algebraic Notation, resolving both
// against a position's legal move list for the context a bare move record
// lacks (which piece moved, whether it was a capture, whether it needs
// disambiguation).
package notation

import "errors"

// ErrNoSuchMove means the text did not match any legal move in the position.
var ErrNoSuchMove = errors.New("notation: no matching legal move")

// ErrAmbiguousMove means the text matched more than one legal move; SAN
// disambiguation (file, rank, or both) is required to tell them apart.
var ErrAmbiguousMove = errors.New("notation: move is ambiguous")
