// Released under an MIT license. See LICENSE.

// Package jsi embeds an evaluator for a subset of JavaScript.
//
// An Interpreter holds a program. Each evaluation runs the program in a
// fresh global scope on its own goroutine and reports the outcome
// through a Future:
//
//	v, err := jsi.New(`[1, 2, 3].join("-")`).Evaluate().Await(ctx)
//
// Errors are faults. Use Is or KindOf to tell them apart.
package jsi

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/jsi/internal/common/export"
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
	"github.com/michaelmacinnis/jsi/internal/engine"
	"github.com/michaelmacinnis/jsi/internal/engine/future"
)

// Error is the type of every error an evaluation rejects with.
type Error = fault.T

// Kind is the category of an Error.
type Kind = fault.Kind

// The categories of Error.
const (
	Syntax    = fault.Syntax
	Reference = fault.Reference
	Type      = fault.Type
	Thrown    = fault.Thrown
	Range     = fault.Range
	Cancel    = fault.Cancel
)

// Function is what a function value exports as.
type Function = export.Function

// Is returns true if err is an Error of the kind k.
func Is(err error, k Kind) bool {
	return fault.Is(err, k)
}

// KindOf returns the kind of Error err is, or zero.
func KindOf(err error) Kind {
	return fault.KindOf(err)
}

// An Option changes how an Interpreter evaluates its program.
type Option func(*engine.Config)

// Logger sets the logger for evaluations.
func Logger(l logrus.FieldLogger) Option {
	return func(c *engine.Config) {
		c.Log = l
	}
}

// MaxDepth limits nested function calls. Zero means no limit.
func MaxDepth(n int) Option {
	return func(c *engine.Config) {
		c.Limits.MaxDepth = n
	}
}

// MaxSteps limits the steps an evaluation may take. Zero means no limit.
func MaxSteps(n int64) Option {
	return func(c *engine.Config) {
		c.Limits.MaxSteps = n
	}
}

// Name sets the name used for the program in error locations.
func Name(s string) Option {
	return func(c *engine.Config) {
		c.Name = s
	}
}

// Strict makes assigning to an undeclared name a reference error.
func Strict() Option {
	return func(c *engine.Config) {
		c.Strict = true
	}
}

// Interpreter evaluates a program.
type Interpreter struct {
	engine *engine.T
}

// New creates an interpreter for the program source. Syntax errors are
// reported by Evaluate.
func New(source string, options ...Option) *Interpreter {
	cfg := engine.DefaultConfig()

	for _, o := range options {
		o(&cfg)
	}

	return &Interpreter{engine: engine.New(source, cfg)}
}

// Evaluate starts evaluating the program.
func (i *Interpreter) Evaluate() *Future {
	return i.EvaluateContext(context.Background())
}

// EvaluateContext starts evaluating the program. If ctx is done before
// the program completes, the evaluation stops with a Cancel error.
func (i *Interpreter) EvaluateContext(ctx context.Context) *Future {
	return &Future{i.engine.Evaluate(ctx)}
}

// Future is the eventual outcome of an evaluation.
type Future struct {
	f *future.T
}

// Await waits for the evaluation to complete, or ctx to be done.
func (f *Future) Await(ctx context.Context) (Value, error) {
	c, err := f.f.Await(ctx)

	return Value{c}, err
}

// Done returns a channel that is closed when the evaluation completes.
func (f *Future) Done() <-chan struct{} {
	return f.f.Done()
}

// Then calls onValue or onError when the evaluation completes.
func (f *Future) Then(onValue func(Value), onError func(error)) {
	var v func(cell.I)
	if onValue != nil {
		v = func(c cell.I) {
			onValue(Value{c})
		}
	}

	f.f.Then(v, onError)
}

// Value is a program value.
type Value struct {
	c cell.I
}

// Export converts v to a plain Go value.
func (v Value) Export() interface{} {
	return export.Value(v.c)
}

// IsNull returns true if v is null.
func (v Value) IsNull() bool {
	return v.c != nil && null.Is(v.c)
}

// IsUndefined returns true if v is undefined.
func (v Value) IsUndefined() bool {
	return v.c != nil && undefined.Is(v.c)
}

// String returns the literal form of v.
func (v Value) String() string {
	if v.c == nil {
		return ""
	}

	return literal.String(v.c)
}
