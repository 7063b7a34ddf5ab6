// Released under an MIT license. See LICENSE.

// Package scope defines the interface for jsi's lexical environments.
package scope

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/reference"
)

// I (scope) is the interface for an environment in the chain of
// environments that resolves identifiers.
type I interface {
	cell.I

	Enclosing() I

	Declare(k string)
	Define(k string, v cell.I)
	Get(k string) cell.I
	Lookup(k string) reference.I
	Set(k string, v cell.I)
}

type scope = I

// Global returns the outermost scope in the chain that starts at s.
func Global(s scope) scope {
	for p := s.Enclosing(); p != nil; p = s.Enclosing() {
		s = p
	}

	return s
}
