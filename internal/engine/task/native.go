// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/struct/hash"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

// NativeOp implements a function in Go. It must leave one result on the
// dump and return the next operation, usually by calling t.Return, or
// replace the current operation, as Invoke does.
type NativeOp func(t *T, this cell.I, args []cell.I) Op

// Native is a function implemented in Go.
type Native struct {
	own

	arity int
	name  string
	op    NativeOp
}

// NewNative creates a native function.
func NewNative(name string, arity int, op NativeOp) *Native {
	return &Native{own: own{hash.New()}, arity: arity, name: name, op: op}
}

// Value wraps the Go function fn, which computes a value from its
// receiver and arguments, as a native function.
func Value(name string, arity int, fn func(cell.I, []cell.I) cell.I) *Native {
	return NewNative(name, arity, func(t *T, this cell.I, args []cell.I) Op {
		return t.Return(fn(this, args))
	})
}

// Arity returns the number of parameters the native declares.
func (n *Native) Arity() int {
	return n.arity
}

// Bind creates a bound function with the receiver this and prefix arguments.
func (n *Native) Bind(this cell.I, prefix []cell.I) cell.I {
	return newBound(n, this, prefix)
}

// Callee returns the native's name.
func (n *Native) Callee() string {
	return n.name
}

// Equal returns true if n and o are the same native function.
func (n *Native) Equal(o cell.I) bool {
	v, ok := o.(*Native)

	return ok && n == v
}

// Get returns the property k or nil if there is no such property.
func (n *Native) Get(k string) cell.I {
	if v := n.own.Get(k); v != nil {
		return v
	}

	switch k {
	case "length":
		return num.Int(n.arity)
	case "name":
		return str.New(n.name)
	}

	return nil
}

// Invoke calls the native.
func (n *Native) Invoke(t *T, this cell.I, args []cell.I) Op {
	return n.op(t, this, args)
}

// Literal returns the literal representation of the native n.
func (n *Native) Literal() string {
	return display(n.name)
}

// Name returns the type name for the native n.
func (n *Native) Name() string {
	return function
}

// String returns a description of the native n.
func (n *Native) String() string {
	return "function " + n.name + "() { [native code] }"
}
