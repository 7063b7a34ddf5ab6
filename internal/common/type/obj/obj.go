// Released under an MIT license. See LICENSE.

// Package obj provides jsi's ordinary object type.
package obj

import (
	"math"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/struct/hash"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

const name = "object"

// T (obj) is a bag of named properties. There is no prototype chain.
type T struct {
	props *hash.T
}

type obj = T

// New creates a new, empty obj.
func New() *obj {
	return &obj{props: hash.New()}
}

// Is returns true if c is an obj.
func Is(c cell.I) bool {
	_, ok := c.(*obj)

	return ok
}

// Delete removes the property k from the obj o.
func (o *obj) Delete(k string) bool {
	return o.props.Del(k)
}

// Equal returns true if c is the same obj as o.
func (o *obj) Equal(c cell.I) bool {
	return Is(c) && o == c.(*obj)
}

// Get returns the value of the property k or nil if o has no such property.
func (o *obj) Get(k string) cell.I {
	r := o.props.Get(k)
	if r == nil {
		return nil
	}

	return r.Get()
}

// Keys returns o's property names in the order they were added.
func (o *obj) Keys() []string {
	return o.props.Keys()
}

// Literal returns the literal representation of the obj o.
func (o *obj) Literal() string {
	return o.Nest(0)
}

// Name returns the type name for the obj o.
func (o *obj) Name() string {
	return name
}

// Nest returns the literal representation of the obj o at depth d.
func (o *obj) Nest(d int) string {
	return Properties(o, "", d)
}

// Number returns NaN.
func (o *obj) Number() float64 {
	return math.NaN()
}

// Set sets the property k of the obj o to v.
func (o *obj) Set(k string, v cell.I) {
	o.props.Set(k, v)
}

// String returns the string value of the obj o.
func (o *obj) String() string {
	return "[object Object]"
}

// Key returns the literal representation of a property name.
func Key(k string) string {
	if k == "" || strings.IndexFunc(k, notIdentifier) >= 0 || unicode.IsDigit(rune(k[0])) {
		return str.To(str.New(k)).Literal()
	}

	return k
}

// Properties returns the literal representation of the properties of o,
// preceded by prefix, for an object displayed at depth d.
func Properties(o object.I, prefix string, d int) string {
	keys := o.Keys()
	if len(keys) == 0 {
		return prefix + "{}"
	}

	members := make([]string, 0, len(keys))
	for _, k := range keys {
		members = append(members, Key(k)+": "+literal.Nested(o.Get(k), d+1))
	}

	return prefix + "{ " + strings.Join(members, ", ") + " }"
}

func notIdentifier(r rune) bool {
	return !(r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t obj

	// The obj type is a cell.
	_ = cell.I(&t)

	// The obj type has a literal representation.
	_ = literal.I(&t)

	// The obj type nests its members.
	_ = literal.Nester(&t)

	// The obj type is numeric.
	_ = common.Numeric(&t)

	// The obj type is an object.
	_ = object.I(&t)

	// The obj type is a stringer.
	_ = common.Stringer(&t)
}
