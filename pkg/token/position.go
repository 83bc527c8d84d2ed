// Package token holds the small set of source-location types shared by the
// reader and the error formatters. It intentionally carries no token-type
// enumeration: the reader classifies a token the moment it reads it and
// never hands a token value back to a caller.
package token

import "fmt"

// Position identifies a single location in source text by line and column,
// both 1-based. Column counts Unicode code points, not bytes.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}
