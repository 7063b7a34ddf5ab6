// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

func makeString(args []cell.I) cell.I {
	if len(args) == 0 {
		return str.New("")
	}

	return str.New(common.String(args[0]))
}
