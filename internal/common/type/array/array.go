// Released under an MIT license. See LICENSE.

// Package array provides jsi's array type.
package array

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/struct/hash"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/obj"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

const name = "array"

// T (array) is an ordered sequence of values. Properties that are not
// indexes are kept separately.
type T struct {
	elements []cell.I
	props    *hash.T
}

type array = T

// New creates a new array holding the values v.
func New(v ...cell.I) *array {
	return &array{elements: append([]cell.I(nil), v...), props: hash.New()}
}

// Is returns true if c is an array.
func Is(c cell.I) bool {
	_, ok := c.(*array)

	return ok
}

// To returns an *array if c is an array; Otherwise it panics.
func To(c cell.I) *array {
	if t, ok := c.(*array); ok {
		return t
	}

	panic(c.Name() + " is not an array")
}

// Delete removes the property k. Deleting an element leaves a hole.
func (a *array) Delete(k string) bool {
	if i, ok := common.Index(k); ok {
		if i < len(a.elements) {
			a.elements[i] = undefined.Value
		}

		return true
	}

	return a.props.Del(k)
}

// Elements returns the elements of the array a.
func (a *array) Elements() []cell.I {
	return append([]cell.I(nil), a.elements...)
}

// Equal returns true if c is the same array as a.
func (a *array) Equal(c cell.I) bool {
	return Is(c) && a == To(c)
}

// Get returns the property k or nil if a has no such property.
func (a *array) Get(k string) cell.I {
	if k == "length" {
		return num.Int(len(a.elements))
	}

	if i, ok := common.Index(k); ok {
		if i < len(a.elements) {
			return a.elements[i]
		}

		return nil
	}

	r := a.props.Get(k)
	if r == nil {
		return nil
	}

	return r.Get()
}

// Join returns the string values of a's elements separated by sep.
// Null and undefined elements are empty.
func (a *array) Join(sep string) string {
	s := make([]string, len(a.elements))

	for i, e := range a.elements {
		if e == undefined.Value || e == null.Value {
			continue
		}

		s[i] = common.String(e)
	}

	return strings.Join(s, sep)
}

// Keys returns the indexes of a followed by its other property names.
func (a *array) Keys() []string {
	keys := make([]string, 0, len(a.elements)+a.props.Size())

	for i := range a.elements {
		keys = append(keys, strconv.Itoa(i))
	}

	return append(keys, a.props.Keys()...)
}

// Len returns the number of elements in the array a.
func (a *array) Len() int {
	return len(a.elements)
}

// Literal returns the literal representation of the array a.
func (a *array) Literal() string {
	return a.Nest(0)
}

// Name returns the type name for the array a.
func (a *array) Name() string {
	return name
}

// Nest returns the literal representation of the array a at depth d.
func (a *array) Nest(d int) string {
	if len(a.elements) == 0 && a.props.Size() == 0 {
		return "[]"
	}

	members := make([]string, 0, len(a.elements)+a.props.Size())
	for _, e := range a.elements {
		members = append(members, literal.Nested(e, d+1))
	}

	for _, k := range a.props.Keys() {
		members = append(members, obj.Key(k)+": "+literal.Nested(a.Get(k), d+1))
	}

	return "[ " + strings.Join(members, ", ") + " ]"
}

// Number returns the numeric value of a's string value.
func (a *array) Number() float64 {
	return common.ParseNumber(a.String())
}

// Push appends the values v to the array a.
func (a *array) Push(v ...cell.I) int {
	a.elements = append(a.elements, v...)

	return len(a.elements)
}

// Set sets the property k of the array a to v. Setting an index past the
// end, or a larger length, pads the array with undefined.
func (a *array) Set(k string, v cell.I) {
	if k == "length" {
		a.resize(common.Integer(v))

		return
	}

	if i, ok := common.Index(k); ok {
		if i >= len(a.elements) {
			a.resize(i + 1)
		}

		a.elements[i] = v

		return
	}

	a.props.Set(k, v)
}

// String returns the elements of the array a separated by commas.
func (a *array) String() string {
	return a.Join(",")
}

func (a *array) resize(n int) {
	if n < 0 {
		n = 0
	}

	if n <= len(a.elements) {
		a.elements = a.elements[:n]

		return
	}

	for len(a.elements) < n {
		a.elements = append(a.elements, undefined.Value)
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t array

	// The array type is a cell.
	_ = cell.I(&t)

	// The array type has a literal representation.
	_ = literal.I(&t)

	// The array type nests its members.
	_ = literal.Nester(&t)

	// The array type is numeric.
	_ = common.Numeric(&t)

	// The array type is an object.
	_ = object.I(&t)

	// The array type is a stringer.
	_ = common.Stringer(&t)
}
