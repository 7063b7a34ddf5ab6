// Released under an MIT license. See LICENSE.

// Package num provides jsi's number type.
package num

import (
	"math"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from the float64 f.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return New(float64(i))
}

// NaN creates a num that is not a number.
func NaN() cell.I {
	return New(math.NaN())
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic(c.Name() + " is not a number")
}

// Bool returns false for zero and NaN and true otherwise.
func (n *num) Bool() bool {
	f := n.Number()

	return f != 0 && !math.IsNaN(f)
}

// Equal returns true if c is the same number as the num n. NaN is not
// equal to anything, including itself.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Number() == To(c).Number()
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Number returns the value of the num n as a float64.
func (n *num) Number() float64 {
	return float64(*n)
}

// Primitive marks numbers as primitive values.
func (n *num) Primitive() {}

// String returns the text of the num n.
func (n *num) String() string {
	return common.FormatNumber(n.Number())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is numeric.
	_ = common.Numeric(&t)

	// The num type is a primitive.
	_ = common.Primitive(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
