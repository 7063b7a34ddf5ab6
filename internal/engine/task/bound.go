// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/struct/hash"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

// Bound is a function with a fixed receiver and leading arguments.
type Bound struct {
	own

	name   string
	prefix []cell.I
	target callable
	this   cell.I
}

// newBound binds the callable c. Binding a bound function keeps its
// target and receiver and appends prefix to its leading arguments. The
// name still reflects each binding.
func newBound(c callable, this cell.I, prefix []cell.I) *Bound {
	b := &Bound{
		own:    own{hash.New()},
		name:   "bound " + c.Callee(),
		target: c,
		this:   this,
	}

	if p, ok := c.(*Bound); ok {
		b.target = p.target
		b.this = p.this
		b.prefix = append(b.prefix, p.prefix...)
	}

	b.prefix = append(b.prefix, prefix...)

	return b
}

// Arity returns the number of parameters not supplied by the prefix.
func (b *Bound) Arity() int {
	n := b.target.Arity() - len(b.prefix)
	if n < 0 {
		return 0
	}

	return n
}

// Bind creates a bound function from the bound function b.
func (b *Bound) Bind(this cell.I, prefix []cell.I) cell.I {
	return newBound(b, this, prefix)
}

// Callee returns the bound function's name.
func (b *Bound) Callee() string {
	return b.name
}

// Equal returns true if b and o are the same bound function.
func (b *Bound) Equal(o cell.I) bool {
	v, ok := o.(*Bound)

	return ok && b == v
}

// Get returns the property k or nil if there is no such property.
func (b *Bound) Get(k string) cell.I {
	if v := b.own.Get(k); v != nil {
		return v
	}

	switch k {
	case "length":
		return num.Int(b.Arity())
	case "name":
		return str.New(b.Callee())
	}

	return nil
}

// Invoke calls the target with the bound receiver and the prefix
// followed by args.
func (b *Bound) Invoke(t *T, _ cell.I, args []cell.I) Op {
	return b.target.Invoke(t, b.this, b.arguments(args))
}

// construct calls the target as a constructor. The new object o, not the
// bound receiver, is the target's receiver.
func (b *Bound) construct(t *T, o cell.I, args []cell.I) Op {
	return b.target.Invoke(t, o, b.arguments(args))
}

func (b *Bound) arguments(args []cell.I) []cell.I {
	all := make([]cell.I, 0, len(b.prefix)+len(args))
	all = append(all, b.prefix...)

	return append(all, args...)
}

// Literal returns the literal representation of the bound function b.
func (b *Bound) Literal() string {
	return display(b.Callee())
}

// Name returns the type name for the bound function b.
func (b *Bound) Name() string {
	return function
}

// String returns a description of the bound function b.
func (b *Bound) String() string {
	return "function " + b.Callee() + "() { [native code] }"
}
