// Released under an MIT license. See LICENSE.

package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/jsi/internal/common/export"
	"github.com/michaelmacinnis/jsi/internal/common/type/args"
	"github.com/michaelmacinnis/jsi/internal/common/type/array"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/obj"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

func TestPrimitives(t *testing.T) {
	assert.Nil(t, export.Value(undefined.Value))
	assert.Nil(t, export.Value(null.Value))
	assert.Equal(t, true, export.Value(boolean.True))
	assert.Equal(t, 1.5, export.Value(num.New(1.5)))
	assert.Equal(t, "s", export.Value(str.New("s")))
}

func TestContainers(t *testing.T) {
	o := obj.New()
	o.Set("list", array.New(num.Int(1), str.New("two")))
	o.Set("args", args.New(nil))

	assert.Equal(t, map[string]interface{}{
		"list": []interface{}{1.0, "two"},
		"args": map[string]interface{}{},
	}, export.Value(o))
}

func TestCycle(t *testing.T) {
	a := array.New()
	a.Push(a)

	assert.Equal(t, []interface{}{nil}, export.Value(a))
}
