// Released under an MIT license. See LICENSE.

// Package env provides jsi's lexical environment type.
package env

import (
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/reference"
	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
	"github.com/michaelmacinnis/jsi/internal/common/struct/hash"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

const name = "environment"

// T (env) maps names to binding cells and links to the environment
// that lexically encloses it.
type T struct {
	previous scope.I
	bindings *hash.T
	strict   bool
}

type env = T

// Global creates a new outermost env. If strict is true, assigning to a
// name that was never declared is a reference fault. Otherwise the name
// is bound in the global env.
func Global(strict bool) scope.I {
	return &env{bindings: hash.New(), strict: strict}
}

// New creates a new env enclosed by previous.
func New(previous scope.I) scope.I {
	e := &env{previous: previous, bindings: hash.New()}

	if p, ok := previous.(*env); ok {
		e.strict = p.strict
	}

	return e
}

// Declare binds the name k to undefined unless k is already bound in the env e.
func (e *env) Declare(k string) {
	if e.bindings.Get(k) == nil {
		e.bindings.Set(k, undefined.Value)
	}
}

// Define associates the name k with the cell v in the env e.
func (e *env) Define(k string, v cell.I) {
	e.bindings.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && e == o
}

// Get returns the value bound to the name k. If k cannot be resolved
// Get panics with a reference fault.
func (e *env) Get(k string) cell.I {
	r := e.Lookup(k)
	if r == nil {
		panic(fault.Unresolved(k))
	}

	return r.Get()
}

// Lookup retrieves the reference associated with the name k in the env
// e or the nearest enclosing env that binds k.
func (e *env) Lookup(k string) reference.I {
	if e == nil {
		return nil
	}

	v := e.bindings.Get(k)

	if v == nil && e.previous != nil {
		v = e.previous.Lookup(k)
	}

	return v
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Set updates the cell bound to the name k, in whichever env binds it,
// so that every closure sharing that cell sees v.
func (e *env) Set(k string, v cell.I) {
	if r := e.Lookup(k); r != nil {
		r.Set(v)

		return
	}

	if e.strict {
		panic(fault.Unresolved(k))
	}

	scope.Global(e).Define(k, v)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
