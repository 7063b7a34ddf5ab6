// Released under an MIT license. See LICENSE.

// Package common defines the conversions shared by all jsi values.
package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// Numeric is implemented by values that have a numeric value.
type Numeric interface {
	Number() float64
}

// Primitive is implemented by values that are not objects.
type Primitive interface {
	Primitive()
}

// String returns the string value for a cell.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		panic(c.Name() + " cannot be used in a string context")
	}

	return b.String()
}

// Number returns the numeric value for a cell. Values without a
// numeric value are NaN.
func Number(c cell.I) float64 {
	if n, ok := c.(Numeric); ok {
		return n.Number()
	}

	return math.NaN()
}

// Integer truncates the numeric value of c towards zero. NaN is 0.
func Integer(c cell.I) int {
	f := Number(c)
	if math.IsNaN(f) {
		return 0
	}

	if math.IsInf(f, 0) {
		if f > 0 {
			return math.MaxInt32
		}

		return math.MinInt32
	}

	return int(f)
}

// IsPrimitive returns true if c is not an object.
func IsPrimitive(c cell.I) bool {
	_, ok := c.(Primitive)

	return ok
}

// TypeOf returns the name reported by the typeof operator for c.
func TypeOf(c cell.I) string {
	switch n := c.Name(); n {
	case "boolean", "function", "number", "string", "undefined":
		return n
	default:
		return "object"
	}
}

// FormatNumber returns the canonical string form of the number f.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	a := math.Abs(f)
	if a >= 1e21 || a < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)

		// Go writes 1e+06 style exponents; drop the leading zero.
		s = strings.Replace(s, "e+0", "e+", 1)

		return strings.Replace(s, "e-0", "e-", 1)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseNumber converts the string s to a number the way the Number
// function does. Strings that are not numbers are NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		i, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return math.NaN()
		}

		return float64(i)
	}

	if strings.IndexFunc(s, notDecimal) >= 0 {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

// Equal implements the == operator.
func Equal(a, b cell.I) bool {
	an, bn := a.Name(), b.Name()

	switch {
	case an == bn:
		return a.Equal(b)
	case nullish(an) && nullish(bn):
		return true
	case nullish(an) || nullish(bn):
		return false
	case IsPrimitive(a) && IsPrimitive(b):
		return Number(a) == Number(b)
	case IsPrimitive(a):
		return primitiveEqual(a, b)
	case IsPrimitive(b):
		return primitiveEqual(b, a)
	}

	return false
}

// Less implements the < operator. The second result is false if the
// comparison is undefined because one side is NaN.
func Less(a, b cell.I) (bool, bool) {
	if a.Name() == "string" && b.Name() == "string" {
		return String(a) < String(b), true
	}

	x, y := Number(a), Number(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return false, false
	}

	return x < y, true
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789.eE+-", r)
}

func nullish(n string) bool {
	return n == "null" || n == "undefined"
}

func primitiveEqual(p, o cell.I) bool {
	if p.Name() == "string" {
		return String(p) == String(o)
	}

	return Number(p) == Number(o)
}

// Index returns the array index named by the property k, if any.
func Index(k string) (int, bool) {
	if k == "" || len(k) > 9 || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}

	i, err := strconv.Atoi(k)
	if err != nil || i < 0 {
		return 0, false
	}

	return i, true
}
