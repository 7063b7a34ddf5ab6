// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to native functions.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

// Variadic returns the first max arguments, padded with undefined, and
// the rest. It panics if fewer than min arguments were passed.
func Variadic(name string, actual []cell.I, min, max int) ([]cell.I, []cell.I) {
	if len(actual) < min {
		s := Count(min, "argument", "s")
		panic(fault.Typef("%s: expected %s, passed %d", name, s, len(actual)))
	}

	expected := make([]cell.I, max)
	for i := range expected {
		if i < len(actual) {
			expected[i] = actual[i]
		} else {
			expected[i] = undefined.Value
		}
	}

	if len(actual) > max {
		return expected, actual[max:]
	}

	return expected, nil
}

// Fixed is like Variadic but panics if more than max arguments were passed.
func Fixed(name string, actual []cell.I, min, max int) []cell.I {
	expected, rest := Variadic(name, actual, min, max)
	if len(rest) > 0 {
		s := Count(max, "argument", "s")
		panic(fault.Typef("%s: expected %s, passed %d", name, s, len(actual)))
	}

	return expected
}

// Count returns a phrase like "1 argument" or "2 arguments".
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
