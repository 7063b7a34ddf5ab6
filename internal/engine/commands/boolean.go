// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/validate"
)

func makeBoolean(args []cell.I) cell.I {
	v, _ := validate.Variadic("Boolean", args, 0, 1)

	return boolean.Bool(truth.Value(v[0]))
}
