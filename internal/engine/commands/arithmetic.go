// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/robertkrimen/otto/token"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

// Binary applies the binary operator op to l and r.
func Binary(op token.Token, l, r cell.I) cell.I {
	switch op {
	case token.PLUS:
		return add(l, r)

	case token.MINUS:
		return num.New(common.Number(l) - common.Number(r))

	case token.MULTIPLY:
		return num.New(common.Number(l) * common.Number(r))

	case token.SLASH:
		return num.New(common.Number(l) / common.Number(r))

	case token.REMAINDER:
		return num.New(math.Mod(common.Number(l), common.Number(r)))

	case token.AND:
		return num.Int(int(toInt32(l) & toInt32(r)))

	case token.OR:
		return num.Int(int(toInt32(l) | toInt32(r)))

	case token.EXCLUSIVE_OR:
		return num.Int(int(toInt32(l) ^ toInt32(r)))

	case token.SHIFT_LEFT:
		return num.Int(int(toInt32(l) << (toUint32(r) & 31)))

	case token.SHIFT_RIGHT:
		return num.Int(int(toInt32(l) >> (toUint32(r) & 31)))

	case token.UNSIGNED_SHIFT_RIGHT:
		return num.New(float64(toUint32(l) >> (toUint32(r) & 31)))

	case token.EQUAL:
		return boolean.Bool(common.Equal(l, r))

	case token.NOT_EQUAL:
		return boolean.Bool(!common.Equal(l, r))

	case token.STRICT_EQUAL:
		return boolean.Bool(strictEqual(l, r))

	case token.STRICT_NOT_EQUAL:
		return boolean.Bool(!strictEqual(l, r))

	case token.LESS:
		return lt(l, r)

	case token.GREATER:
		return lt(r, l)

	case token.LESS_OR_EQUAL:
		return le(l, r)

	case token.GREATER_OR_EQUAL:
		return le(r, l)

	case token.IN:
		return in(l, r)

	case token.INSTANCEOF:
		panic(fault.Typef("instanceof is not supported"))
	}

	panic(fault.Syntaxf("operator %s is not supported", op))
}

func add(l, r cell.I) cell.I {
	l, r = primitive(l), primitive(r)

	if str.Is(l) || str.Is(r) {
		return str.New(common.String(l) + common.String(r))
	}

	return num.New(common.Number(l) + common.Number(r))
}

func in(k, o cell.I) cell.I {
	v, ok := o.(object.I)
	if !ok || common.IsPrimitive(o) {
		panic(fault.Typef("Cannot use 'in' operator to search for '%s' in %s",
			common.String(k), common.String(o)))
	}

	return boolean.Bool(v.Get(common.String(k)) != nil)
}

// primitive converts objects to their string value.
func primitive(c cell.I) cell.I {
	if common.IsPrimitive(c) {
		return c
	}

	return str.New(common.String(c))
}

func toInt32(c cell.I) int32 {
	return int32(toUint32(c))
}

func toUint32(c cell.I) uint32 {
	f := common.Number(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return uint32(int64(math.Mod(math.Trunc(f), 1<<32)))
}
