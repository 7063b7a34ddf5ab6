// Released under an MIT license. See LICENSE.

// Package args provides the type of the arguments collection that every
// function activation receives.
package args

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/struct/hash"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/obj"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

const name = "arguments"

// T (args) holds every actual argument of one invocation, including
// those beyond the declared parameters, keyed by position.
type T struct {
	values []cell.I
	props  *hash.T
}

type args = T

// New creates an arguments collection holding a copy of v.
func New(v []cell.I) *args {
	return &args{values: append([]cell.I(nil), v...), props: hash.New()}
}

// Is returns true if c is an arguments collection.
func Is(c cell.I) bool {
	_, ok := c.(*args)

	return ok
}

// Delete removes the property k.
func (a *args) Delete(k string) bool {
	if i, ok := common.Index(k); ok && i < len(a.values) {
		a.values[i] = undefined.Value

		return true
	}

	return a.props.Del(k)
}

// Equal returns true if c is the same arguments collection as a.
func (a *args) Equal(c cell.I) bool {
	return Is(c) && a == c.(*args)
}

// Get returns the property k or nil if a has no such property.
func (a *args) Get(k string) cell.I {
	if k == "length" {
		if r := a.props.Get(k); r != nil {
			return r.Get()
		}

		return num.Int(len(a.values))
	}

	if i, ok := common.Index(k); ok && i < len(a.values) {
		return a.values[i]
	}

	r := a.props.Get(k)
	if r == nil {
		return nil
	}

	return r.Get()
}

// Keys returns the positions of a's values followed by any other
// property names.
func (a *args) Keys() []string {
	keys := make([]string, 0, len(a.values)+a.props.Size())

	for i := range a.values {
		keys = append(keys, strconv.Itoa(i))
	}

	for _, k := range a.props.Keys() {
		if k != "length" {
			keys = append(keys, k)
		}
	}

	return keys
}

// Literal returns the literal representation of the arguments a.
func (a *args) Literal() string {
	return a.Nest(0)
}

// Name returns the type name for the arguments a.
func (a *args) Name() string {
	return name
}

// Nest returns the literal representation of the arguments a at depth d.
func (a *args) Nest(d int) string {
	return obj.Properties(a, "[Arguments] ", d)
}

// Number returns NaN.
func (a *args) Number() float64 {
	return math.NaN()
}

// Set sets the property k of the arguments a to v.
func (a *args) Set(k string, v cell.I) {
	if i, ok := common.Index(k); ok && i < len(a.values) {
		a.values[i] = v

		return
	}

	a.props.Set(k, v)
}

// String returns the string value of the arguments a.
func (a *args) String() string {
	return "[object Arguments]"
}

// Values returns the values in the arguments collection a.
func (a *args) Values() []cell.I {
	return append([]cell.I(nil), a.values...)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t args

	// The args type is a cell.
	_ = cell.I(&t)

	// The args type has a literal representation.
	_ = literal.I(&t)

	// The args type nests its members.
	_ = literal.Nester(&t)

	// The args type is numeric.
	_ = common.Numeric(&t)

	// The args type is an object.
	_ = object.I(&t)

	// The args type is a stringer.
	_ = common.Stringer(&t)
}
