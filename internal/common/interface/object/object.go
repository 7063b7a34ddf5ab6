// Released under an MIT license. See LICENSE.

// Package object defines the interface for jsi values with properties.
package object

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
)

// I (object) is anything with named, mutable properties.
type I interface {
	cell.I

	Delete(k string) bool
	Get(k string) cell.I
	Keys() []string
	Set(k string, v cell.I)
}

type object = I

// Is returns true if c is an object.
func Is(c cell.I) bool {
	_, ok := c.(object)

	return ok
}

// To returns an object if c is an object; Otherwise it panics.
func To(c cell.I) object {
	if t, ok := c.(object); ok {
		return t
	}

	panic(c.Name() + " cannot be used in an object context")
}
