// Released under an MIT license. See LICENSE.

// Package export converts jsi values to plain Go values for the host.
package export

import (
	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/type/array"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

// Function stands in for an exported function value.
type Function struct {
	Name string
}

// Value converts c to a Go value. Undefined and null are nil; booleans,
// numbers and strings are bool, float64 and string; arrays are slices;
// every other object, including an arguments collection, is a map keyed
// by property name. A container reached again while it is being
// converted is nil.
func Value(c cell.I) interface{} {
	return convert(c, map[cell.I]bool{})
}

func convert(c cell.I, active map[cell.I]bool) interface{} {
	switch {
	case c == nil || undefined.Is(c) || null.Is(c):
		return nil
	case boolean.Is(c):
		return boolean.To(c).Bool()
	case num.Is(c):
		return num.To(c).Number()
	case str.Is(c):
		return str.To(c).String()
	case c.Name() == "function":
		name := ""
		if o, ok := c.(object.I); ok {
			if n := o.Get("name"); n != nil {
				name = common.String(n)
			}
		}

		return Function{Name: name}
	}

	if active[c] {
		return nil
	}

	active[c] = true
	defer delete(active, c)

	if array.Is(c) {
		elements := array.To(c).Elements()

		s := make([]interface{}, len(elements))
		for i, e := range elements {
			s[i] = convert(e, active)
		}

		return s
	}

	o, ok := c.(object.I)
	if !ok {
		return nil
	}

	m := map[string]interface{}{}
	for _, k := range o.Keys() {
		m[k] = convert(o.Get(k), active)
	}

	return m
}
