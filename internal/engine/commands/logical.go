// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/robertkrimen/otto/token"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

// Unary applies the prefix operator op to v.
func Unary(op token.Token, v cell.I) cell.I {
	switch op {
	case token.BITWISE_NOT:
		return num.Int(int(^toInt32(v)))

	case token.MINUS:
		return num.New(-common.Number(primitive(v)))

	case token.NOT:
		return boolean.Bool(!truth.Value(v))

	case token.PLUS:
		return num.New(common.Number(primitive(v)))

	case token.TYPEOF:
		return str.New(common.TypeOf(v))

	case token.VOID:
		return undefined.Value
	}

	panic(fault.Syntaxf("operator %s is not supported", op))
}
