// Released under an MIT license. See LICENSE.

// Package null provides jsi's null value.
package null

import (
	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
)

const name = "null"

// T (null) is the type of the intentionally absent value.
type T struct{}

type null = T

// Value is the only null value.
//
//nolint:gochecknoglobals
var Value = &null{}

// Is returns true if c is null.
func Is(c cell.I) bool {
	return c == Value
}

// Bool returns false.
func (n *null) Bool() bool {
	return false
}

// Equal returns true if c is also null.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of null.
func (n *null) Literal() string {
	return name
}

// Name returns the type name for null.
func (n *null) Name() string {
	return name
}

// Number returns 0.
func (n *null) Number() float64 {
	return 0
}

// Primitive marks null as a primitive value.
func (n *null) Primitive() {}

// String returns the text of null.
func (n *null) String() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is numeric.
	_ = common.Numeric(&t)

	// The null type is a primitive.
	_ = common.Primitive(&t)

	// The null type has a truth value.
	_ = truth.I(&t)
}
