// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"testing"

	"github.com/robertkrimen/otto/token"
	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/type/array"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

func number(t *testing.T, expected float64, c cell.I) {
	t.Helper()

	if !assert.True(t, num.Is(c), "%v is not a number", c) {
		return
	}

	f := common.Number(c)
	if math.IsNaN(expected) {
		assert.True(t, math.IsNaN(f), "expected NaN, got %v", f)

		return
	}

	assert.Equal(t, expected, f)
}

func TestAdd(t *testing.T) {
	number(t, 3, Binary(token.PLUS, num.Int(1), num.Int(2)))
	number(t, 1, Binary(token.PLUS, boolean.True, null.Value))
	number(t, math.NaN(), Binary(token.PLUS, num.Int(1), undefined.Value))

	assert.Equal(t, "12", common.String(Binary(token.PLUS, num.Int(1), str.New("2"))))
	assert.Equal(t, "1,21", common.String(Binary(token.PLUS, array.New(num.Int(1), num.Int(2)), num.Int(1))))
}

func TestArithmetic(t *testing.T) {
	number(t, 3, Binary(token.MINUS, str.New("5"), num.Int(2)))
	number(t, 6, Binary(token.MULTIPLY, num.Int(2), str.New("3")))
	number(t, math.Inf(1), Binary(token.SLASH, num.Int(1), num.Int(0)))
	number(t, -1, Binary(token.REMAINDER, num.Int(-7), num.Int(3)))
}

func TestBitwise(t *testing.T) {
	number(t, 1, Binary(token.AND, num.Int(5), num.Int(3)))
	number(t, 7, Binary(token.OR, num.Int(5), num.Int(3)))
	number(t, 6, Binary(token.EXCLUSIVE_OR, num.Int(5), num.Int(3)))
	number(t, -2147483648, Binary(token.SHIFT_LEFT, num.Int(1), num.Int(31)))
	number(t, -4, Binary(token.SHIFT_RIGHT, num.Int(-16), num.Int(2)))
	number(t, 4294967295, Binary(token.UNSIGNED_SHIFT_RIGHT, num.Int(-1), num.Int(0)))
	number(t, -6, Unary(token.BITWISE_NOT, num.Int(5)))
}

func TestComparison(t *testing.T) {
	assert.Equal(t, boolean.True, Binary(token.LESS, num.Int(2), str.New("10")))
	assert.Equal(t, boolean.False, Binary(token.LESS, str.New("2"), str.New("10")))
	assert.Equal(t, boolean.True, Binary(token.GREATER_OR_EQUAL, num.Int(2), num.Int(2)))
	assert.Equal(t, boolean.False, Binary(token.LESS_OR_EQUAL, num.NaN(), num.Int(1)))
	assert.Equal(t, boolean.True, Binary(token.EQUAL, str.New("1"), num.Int(1)))
	assert.Equal(t, boolean.False, Binary(token.STRICT_EQUAL, str.New("1"), num.Int(1)))
	assert.Equal(t, boolean.True, Binary(token.STRICT_NOT_EQUAL, null.Value, undefined.Value))
}

func TestIn(t *testing.T) {
	a := array.New(num.Int(1))

	assert.Equal(t, boolean.True, Binary(token.IN, num.Int(0), a))
	assert.Equal(t, boolean.False, Binary(token.IN, str.New("x"), a))

	assert.PanicsWithError(t, "TypeError: Cannot use 'in' operator to search for 'x' in 1", func() {
		Binary(token.IN, str.New("x"), num.Int(1))
	})
}

func TestUnsupportedOperator(t *testing.T) {
	defer func() {
		assert.Equal(t, fault.Type, fault.Classify(recover()).Kind)
	}()

	Binary(token.INSTANCEOF, num.Int(1), num.Int(1))
}

func TestUnary(t *testing.T) {
	number(t, -3, Unary(token.MINUS, str.New("3")))
	number(t, 0, Unary(token.PLUS, null.Value))
	assert.Equal(t, boolean.True, Unary(token.NOT, str.New("")))
	assert.Equal(t, "object", common.String(Unary(token.TYPEOF, null.Value)))
	assert.Equal(t, undefined.Value, Unary(token.VOID, num.Int(1)))
}

func TestParseInt(t *testing.T) {
	for _, tc := range []struct {
		args     []cell.I
		expected float64
	}{
		{[]cell.I{str.New("42px")}, 42},
		{[]cell.I{str.New("  -12")}, -12},
		{[]cell.I{str.New("0x1F")}, 31},
		{[]cell.I{str.New("ff"), num.Int(16)}, 255},
		{[]cell.I{str.New("0xff"), num.Int(16)}, 255},
		{[]cell.I{str.New("101"), num.Int(2)}, 5},
		{[]cell.I{str.New("z"), num.Int(37)}, math.NaN()},
		{[]cell.I{str.New("abc")}, math.NaN()},
		{[]cell.I{}, math.NaN()},
	} {
		number(t, tc.expected, parseInt(tc.args))
	}
}

func TestParseFloat(t *testing.T) {
	number(t, 3.14, parseFloat([]cell.I{str.New("3.14abc")}))
	number(t, 1, parseFloat([]cell.I{str.New("1e")}))
	number(t, -0.5, parseFloat([]cell.I{str.New(" -.5")}))
	number(t, math.Inf(-1), parseFloat([]cell.I{str.New("-Infinityx")}))
	number(t, math.NaN(), parseFloat([]cell.I{str.New("x1")}))
}

func TestGlobals(t *testing.T) {
	assert.Equal(t, boolean.True, isNaN([]cell.I{str.New("x")}))
	assert.Equal(t, boolean.False, isFinite([]cell.I{num.New(math.Inf(1))}))
	assert.Equal(t, boolean.False, makeBoolean(nil))
	number(t, 0, makeNumber(nil))
	number(t, 12, makeNumber([]cell.I{str.New(" 12 ")}))
	assert.Equal(t, "", common.String(makeString(nil)))
	assert.Equal(t, "null", common.String(makeString([]cell.I{null.Value})))
}

func TestMath(t *testing.T) {
	m := Math()

	number(t, -2, m["round"].Fn([]cell.I{num.New(-2.5)}))
	number(t, 3, m["round"].Fn([]cell.I{num.New(2.5)}))
	number(t, math.Inf(-1), m["max"].Fn(nil))
	number(t, math.Inf(1), m["min"].Fn(nil))
	number(t, math.NaN(), m["max"].Fn([]cell.I{num.Int(1), str.New("x")}))
	number(t, 8, m["pow"].Fn([]cell.I{num.Int(2), num.Int(3)}))
	number(t, 3, m["sqrt"].Fn([]cell.I{num.Int(9)}))
	number(t, 2, m["abs"].Fn([]cell.I{num.Int(-2)}))
}
