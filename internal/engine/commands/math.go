// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/validate"
)

func abs(f float64) float64 {
	return math.Abs(f)
}

func ceil(f float64) float64 {
	return math.Ceil(f)
}

func floor(f float64) float64 {
	return math.Floor(f)
}

func maximum(args []cell.I) cell.I {
	return extreme(args, math.Inf(-1), math.Max)
}

func minimum(args []cell.I) cell.I {
	return extreme(args, math.Inf(1), math.Min)
}

func pow(args []cell.I) cell.I {
	v, _ := validate.Variadic("pow", args, 0, 2)

	return num.New(math.Pow(common.Number(v[0]), common.Number(v[1])))
}

// round rounds half up, towards positive infinity.
func round(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.Floor(f + 0.5)
}

func sqrt(f float64) float64 {
	return math.Sqrt(f)
}

func extreme(args []cell.I, start float64, pick func(float64, float64) float64) cell.I {
	r := start

	for _, a := range args {
		f := common.Number(primitive(a))
		if math.IsNaN(f) {
			return num.NaN()
		}

		r = pick(r, f)
	}

	return num.New(r)
}

func unary(fn func(float64) float64) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v, _ := validate.Variadic("Math", args, 0, 1)

		return num.New(fn(common.Number(primitive(v[0]))))
	}
}
