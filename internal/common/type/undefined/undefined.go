// Released under an MIT license. See LICENSE.

// Package undefined provides jsi's undefined value.
package undefined

import (
	"math"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
)

const name = "undefined"

// T (undefined) is the type of the value of a missing argument, an
// uninitialized variable, or a function that does not return a value.
type T struct{}

type undefined = T

// Value is the only undefined value.
//
//nolint:gochecknoglobals
var Value = &undefined{}

// Is returns true if c is undefined.
func Is(c cell.I) bool {
	return c == Value
}

// Bool returns false.
func (u *undefined) Bool() bool {
	return false
}

// Equal returns true if c is also undefined.
func (u *undefined) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of undefined.
func (u *undefined) Literal() string {
	return name
}

// Name returns the type name for undefined.
func (u *undefined) Name() string {
	return name
}

// Number returns NaN.
func (u *undefined) Number() float64 {
	return math.NaN()
}

// Primitive marks undefined as a primitive value.
func (u *undefined) Primitive() {}

// String returns the text of undefined.
func (u *undefined) String() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t undefined

	// The undefined type is a cell.
	_ = cell.I(&t)

	// The undefined type has a literal representation.
	_ = literal.I(&t)

	// The undefined type is numeric.
	_ = common.Numeric(&t)

	// The undefined type is a primitive.
	_ = common.Primitive(&t)

	// The undefined type is a stringer.
	_ = common.Stringer(&t)

	// The undefined type has a truth value.
	_ = truth.I(&t)
}
