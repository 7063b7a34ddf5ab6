// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/validate"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func isFinite(args []cell.I) cell.I {
	v, _ := validate.Variadic("isFinite", args, 0, 1)

	f := common.Number(primitive(v[0]))

	return boolean.Bool(!math.IsNaN(f) && !math.IsInf(f, 0))
}

func isNaN(args []cell.I) cell.I {
	v, _ := validate.Variadic("isNaN", args, 0, 1)

	return boolean.Bool(math.IsNaN(common.Number(primitive(v[0]))))
}

func makeNumber(args []cell.I) cell.I {
	if len(args) == 0 {
		return num.Int(0)
	}

	return num.New(common.Number(primitive(args[0])))
}

// parseFloat converts the longest prefix of a string that is a decimal
// literal.
func parseFloat(args []cell.I) cell.I {
	v, _ := validate.Variadic("parseFloat", args, 0, 1)

	s := strings.TrimSpace(common.String(v[0]))

	for _, inf := range []string{"Infinity", "+Infinity", "-Infinity"} {
		if strings.HasPrefix(s, inf) {
			return num.New(common.ParseNumber(inf))
		}
	}

	for n := decimalPrefix(s); n > 0; n-- {
		f, err := strconv.ParseFloat(s[:n], 64)
		if err == nil {
			return num.New(f)
		}
	}

	return num.NaN()
}

// parseInt converts the longest prefix of a string that is an integer
// in the given radix. A radix of zero means 10, or 16 if the string
// starts with 0x.
func parseInt(args []cell.I) cell.I {
	v, _ := validate.Variadic("parseInt", args, 0, 2)

	s := strings.TrimSpace(common.String(v[0]))

	sign := 1.0

	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}

		s = s[1:]
	}

	radix := common.Integer(v[1])

	switch {
	case radix == 0:
		radix = 10

		if hex(s) {
			radix, s = 16, s[2:]
		}
	case radix < 2 || radix > 36:
		return num.NaN()
	case radix == 16 && hex(s):
		s = s[2:]
	}

	f := 0.0
	n := 0

	for _, r := range strings.ToLower(s) {
		d := strings.IndexRune(digits[:radix], r)
		if d < 0 {
			break
		}

		f = f*float64(radix) + float64(d)
		n++
	}

	if n == 0 {
		return num.NaN()
	}

	return num.New(sign * f)
}

func decimalPrefix(s string) int {
	n := 0

	for n < len(s) && strings.IndexByte("0123456789.eE+-", s[n]) >= 0 {
		n++
	}

	return n
}

func hex(s string) bool {
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
