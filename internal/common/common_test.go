// Released under an MIT license. See LICENSE.

package common_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

func TestFormatNumber(t *testing.T) {
	for f, s := range map[float64]string{
		0:           "0",
		1:           "1",
		-2.5:        "-2.5",
		1e21:        "1e+21",
		1e-7:        "1e-7",
		123456789:   "123456789",
		math.Inf(1): "Infinity",
	} {
		assert.Equal(t, s, common.FormatNumber(f))
	}

	assert.Equal(t, "NaN", common.FormatNumber(math.NaN()))
	assert.Equal(t, "-Infinity", common.FormatNumber(math.Inf(-1)))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 0.0, common.ParseNumber("  "))
	assert.Equal(t, 42.0, common.ParseNumber(" 42 "))
	assert.Equal(t, 255.0, common.ParseNumber("0xff"))
	assert.Equal(t, 1.5e3, common.ParseNumber("1.5e3"))
	assert.True(t, math.IsInf(common.ParseNumber("-Infinity"), -1))
	assert.True(t, math.IsNaN(common.ParseNumber("12px")))
	assert.True(t, math.IsNaN(common.ParseNumber("0xg")))
}

func TestEqual(t *testing.T) {
	assert.True(t, common.Equal(null.Value, undefined.Value))
	assert.False(t, common.Equal(null.Value, num.Int(0)))
	assert.True(t, common.Equal(str.New("1"), num.Int(1)))
	assert.True(t, common.Equal(boolean.True, num.Int(1)))
	assert.False(t, common.Equal(num.NaN(), num.NaN()))
	assert.True(t, common.Equal(str.New("a"), str.New("a")))
}

func TestLess(t *testing.T) {
	lt, ok := common.Less(str.New("10"), str.New("9"))
	assert.True(t, ok)
	assert.True(t, lt)

	lt, ok = common.Less(num.Int(10), str.New("9"))
	assert.True(t, ok)
	assert.False(t, lt)

	_, ok = common.Less(num.NaN(), num.Int(1))
	assert.False(t, ok)
}

func TestIndex(t *testing.T) {
	i, ok := common.Index("12")
	assert.True(t, ok)
	assert.Equal(t, 12, i)

	for _, k := range []string{"", "01", "-1", "length", "1234567890"} {
		_, ok := common.Index(k)
		assert.False(t, ok, k)
	}
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "object", common.TypeOf(null.Value))
	assert.Equal(t, "undefined", common.TypeOf(undefined.Value))
	assert.Equal(t, "string", common.TypeOf(str.New("")))
}

func TestInteger(t *testing.T) {
	assert.Equal(t, 0, common.Integer(num.NaN()))
	assert.Equal(t, -3, common.Integer(num.New(-3.7)))
	assert.Equal(t, math.MaxInt32, common.Integer(num.New(math.Inf(1))))
}
