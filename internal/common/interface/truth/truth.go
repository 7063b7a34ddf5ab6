// Released under an MIT license. See LICENSE.

// Package truth defines the interface for jsi values that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Values without an explicit
// truth value, objects and functions, are true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
