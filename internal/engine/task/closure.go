// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/file"

	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
	"github.com/michaelmacinnis/jsi/internal/common/struct/hash"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

const function = "function"

// Closure is a function defined by a program. It captures the scope in
// which it was created.
type Closure struct {
	own

	Body   []ast.Statement
	Decls  []ast.Declaration
	Params []string
	Scope  scope.I

	file   *file.File
	name   string
	source string
}

// NewClosure creates a closure for the function literal f in the scope s.
// The file src, if known, is used to report locations.
func NewClosure(f *ast.FunctionLiteral, s scope.I, src *file.File) *Closure {
	c := &Closure{
		own:    own{hash.New()},
		Decls:  f.DeclarationList,
		Scope:  s,
		file:   src,
		source: f.Source,
	}

	if b, ok := f.Body.(*ast.BlockStatement); ok {
		c.Body = b.List
	}

	if f.Name != nil {
		c.name = f.Name.Name
	}

	if f.ParameterList != nil {
		for _, p := range f.ParameterList.List {
			c.Params = append(c.Params, p.Name)
		}
	}

	return c
}

// Arity returns the number of declared parameters.
func (c *Closure) Arity() int {
	return len(c.Params)
}

// Bind creates a bound function with the receiver this and prefix arguments.
func (c *Closure) Bind(this cell.I, prefix []cell.I) cell.I {
	return newBound(c, this, prefix)
}

// Callee returns the closure's name.
func (c *Closure) Callee() string {
	return c.name
}

// Equal returns true if c and o are the same closure.
func (c *Closure) Equal(o cell.I) bool {
	v, ok := o.(*Closure)

	return ok && c == v
}

// Get returns the property k or nil if there is no such property.
func (c *Closure) Get(k string) cell.I {
	if v := c.own.Get(k); v != nil {
		return v
	}

	switch k {
	case "length":
		return num.Int(c.Arity())
	case "name":
		return str.New(c.name)
	}

	return nil
}

// Invoke schedules an activation of the closure c.
func (c *Closure) Invoke(t *T, this cell.I, args []cell.I) Op {
	return t.ReplaceOp(&activation{Closure: c, this: this, args: args})
}

// Literal returns the literal representation of the closure c.
func (c *Closure) Literal() string {
	return display(c.name)
}

// Name returns the type name for the closure c.
func (c *Closure) Name() string {
	return function
}

// String returns the closure's source text.
func (c *Closure) String() string {
	return c.source
}

// Functions, whether closures, bound functions, or natives, have their
// own mutable properties.
type own struct {
	props *hash.T
}

// Delete removes the property k.
func (o own) Delete(k string) bool {
	return o.props.Del(k)
}

// Get returns the own property k or nil.
func (o own) Get(k string) cell.I {
	r := o.props.Get(k)
	if r == nil {
		return nil
	}

	return r.Get()
}

// Keys returns the names of the own properties.
func (o own) Keys() []string {
	return o.props.Keys()
}

// Number returns NaN.
func (o own) Number() float64 {
	return nan()
}

// Set sets the own property k to v.
func (o own) Set(k string, v cell.I) {
	o.props.Set(k, v)
}

func display(name string) string {
	if name == "" {
		return "[Function (anonymous)]"
	}

	return "[Function: " + name + "]"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var c Closure

	// The closure type is callable.
	_ = callable(&c)

	// The closure type has a literal representation.
	_ = literal.I(&c)

	// The closure type is an object.
	_ = object.I(&c)

	var b Bound

	_ = callable(&b)
	_ = literal.I(&b)

	var n Native

	_ = callable(&n)
	_ = literal.I(&n)
}
