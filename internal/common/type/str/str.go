// Released under an MIT license. See LICENSE.

// Package str provides jsi's string type.
package str

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// At returns the character at index i or nil if i is out of range.
// Indexes count UTF-16 code units.
func (s *str) At(i int) cell.I {
	u := s.units()
	if i < 0 || i >= len(u) {
		return nil
	}

	return New(string(utf16.Decode(u[i : i+1])))
}

// Bool returns the boolean value of the str s.
func (s *str) Bool() bool {
	return s.String() != ""
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Len returns the length of the str s in UTF-16 code units.
func (s *str) Len() int {
	return len(s.units())
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	q := strconv.Quote(string(*s))
	q = strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`)

	return "'" + strings.ReplaceAll(q, "'", `\'`) + "'"
}

// Name returns the type name for the str s.
func (s *str) Name() string {
	return name
}

// Number returns the numeric value of the str s.
func (s *str) Number() float64 {
	return common.ParseNumber(string(*s))
}

// Primitive marks strings as primitive values.
func (s *str) Primitive() {}

// String returns the value of the str s as a string.
func (s *str) String() string {
	return string(*s)
}

func (s *str) units() []uint16 {
	return utf16.Encode([]rune(string(*s)))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is numeric.
	_ = common.Numeric(&t)

	// The str type is a primitive.
	_ = common.Primitive(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)

	// The str type has a truth value.
	_ = truth.I(&t)
}
