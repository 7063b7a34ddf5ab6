// Released under an MIT license. See LICENSE.

// Package literal defines the interface for jsi values that can be displayed as literals.
package literal

import (
	"strings"

	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	if c == nil {
		return "<nil>"
	}

	l, ok := c.(I)
	if !ok {
		// Not all cell types can be expressed as literals.
		return "[" + c.Name() + "]"
	}

	return l.Literal()
}

// Nester is implemented by containers whose literal includes their members.
type Nester interface {
	Nest(depth int) string
}

// MaxDepth is how deeply nested containers are displayed.
const MaxDepth = 2

// Nested returns the literal representation for c as a member of a
// container at the given depth. Containers nested too deeply are elided.
func Nested(c cell.I, depth int) string {
	n, ok := c.(Nester)
	if !ok {
		return String(c)
	}

	if depth > MaxDepth {
		s := c.Name()

		return "[" + strings.ToUpper(s[:1]) + s[1:] + "]"
	}

	return n.Nest(depth)
}
