// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
)

func le(l, r cell.I) cell.I {
	less, ok := common.Less(primitive(r), primitive(l))

	return boolean.Bool(ok && !less)
}

func lt(l, r cell.I) cell.I {
	less, _ := common.Less(primitive(l), primitive(r))

	return boolean.Bool(less)
}

// strictEqual implements the === operator. Values of different types
// are never equal.
func strictEqual(l, r cell.I) bool {
	return l.Name() == r.Name() && l.Equal(r)
}
