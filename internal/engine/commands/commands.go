// Released under an MIT license. See LICENSE.

// Package commands implements jsi's operators and global functions.
package commands

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
)

// Function is a global function implemented in Go.
type Function struct {
	Arity int
	Fn    func(args []cell.I) cell.I
}

// Functions returns a mapping of names to global functions.
func Functions() map[string]Function {
	return map[string]Function{
		"Boolean":    {1, makeBoolean},
		"Number":     {1, makeNumber},
		"String":     {1, makeString},
		"isFinite":   {1, isFinite},
		"isNaN":      {1, isNaN},
		"parseFloat": {1, parseFloat},
		"parseInt":   {2, parseInt},
	}
}

// Math returns a mapping of names to the functions of the Math object.
func Math() map[string]Function {
	return map[string]Function{
		"abs":   {1, unary(abs)},
		"ceil":  {1, unary(ceil)},
		"floor": {1, unary(floor)},
		"max":   {2, maximum},
		"min":   {2, minimum},
		"pow":   {2, pow},
		"round": {1, unary(round)},
		"sqrt":  {1, unary(sqrt)},
	}
}
