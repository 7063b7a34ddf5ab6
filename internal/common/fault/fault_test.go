// Released under an MIT license. See LICENSE.

package fault_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/obj"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "SyntaxError", fault.Syntax.String())
	assert.Equal(t, "CancelError", fault.Cancel.String())
	assert.Equal(t, "UnknownError", fault.Kind(0).String())
	assert.Equal(t, "UnknownError", fault.Kind(99).String())
}

func TestError(t *testing.T) {
	assert.EqualError(t, fault.Unresolved("x"), "ReferenceError: x is not defined")
	assert.EqualError(t, fault.Typef("%s is not a function", "f"), "TypeError: f is not a function")
	assert.EqualError(t, fault.Throw(num.Int(7)), "Uncaught 7")

	e := obj.New()
	e.Set("name", str.New("Error"))
	e.Set("message", str.New("boom"))
	assert.EqualError(t, fault.Throw(e), "Uncaught Error: boom")
}

func TestValue(t *testing.T) {
	v := fault.Typef("bad").Value()

	o, ok := v.(object.I)
	require.True(t, ok)
	assert.Equal(t, "TypeError", common.String(o.Get("name")))

	thrown := num.Int(1)
	assert.Same(t, thrown, fault.Throw(thrown).Value())
}

func TestClassify(t *testing.T) {
	f := fault.Rangef("deep")
	assert.Same(t, f, fault.Classify(f))
	assert.Same(t, f, fault.Classify(errors.Wrap(f, "wrapped")))

	assert.Equal(t, fault.Type, fault.Classify("oops").Kind)
	assert.Equal(t, fault.Type, fault.Classify(errors.New("plain")).Kind)
	assert.Equal(t, fault.Type, fault.Classify(42).Kind)
}

func TestCancelled(t *testing.T) {
	f := fault.Cancelled(context.Canceled)

	assert.False(t, f.Catchable())
	assert.ErrorIs(t, f, context.Canceled)
	assert.True(t, fault.Is(errors.Wrap(f, "run"), fault.Cancel))
	assert.Equal(t, fault.Kind(0), fault.KindOf(context.Canceled))
	assert.True(t, fault.Syntaxf("x").Catchable())
}
