// Released under an MIT license. See LICENSE.

package task

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/struct/frame"
	"github.com/michaelmacinnis/jsi/internal/common/type/args"
	"github.com/michaelmacinnis/jsi/internal/common/type/array"
	"github.com/michaelmacinnis/jsi/internal/common/type/env"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
	"github.com/michaelmacinnis/jsi/internal/common/validate"
)

// Closures, bound functions, and natives are the callable types. Calling
// one, whether directly or through call, apply, or bind, is Invoke with
// an explicit receiver and a flat argument list.
type callable interface {
	object.I

	Arity() int
	Bind(this cell.I, prefix []cell.I) cell.I
	Callee() string
	Invoke(t *T, this cell.I, args []cell.I) Op
}

// An activation is a pending call to a closure. Performing it is the
// step that enters the closure's body.
type activation struct {
	*Closure
	this cell.I
	args []cell.I
}

// Perform creates the closure's activation environment and evaluates
// the closure's body in it.
//
// Result:
//  code:  Body
//  dump:  Undefined ...
//  frame: New frame with a scope, enclosed by the closure's scope, with
//         bindings for: arguments, parameters, this, return, and hoisted
//         declarations.
//  stack: evalBlock fallOff Restore(frame: Current) Previous ...
//
// Requires:
//  stack: activation Previous ...
//
func (a *activation) Perform(t *T) Op {
	t.checkpoint()

	if t.limits.MaxDepth > 0 && t.frame.Depth() >= t.limits.MaxDepth {
		panic(fault.Rangef("maximum call stack size exceeded"))
	}

	e := env.New(a.Scope)

	e.Define("arguments", args.New(a.args))

	for i, p := range a.Params {
		if i < len(a.args) {
			e.Define(p, a.args[i])
		} else {
			e.Define(p, undefined.Value)
		}
	}

	e.Define("this", a.this)

	hoist(e, a.Decls, a.file)

	t.ReplaceOp(&registers{frame: t.frame})

	e.Define("return", &registers{dump: t.dump, stack: t.stack})

	t.frame = frame.New(e, t.frame, a.Callee(), a.file)

	t.PushOp(Action(fallOff))
	t.PushResult(undefined.Value)

	t.code = a.Body

	return t.PushOp(Action(evalBlock))
}

// fallOff completes an activation whose body ran to the end. The result
// is undefined.
func fallOff(t *T) Op {
	t.ReplaceResult(undefined.Value)

	return t.PreviousOp()
}

// Method tables for values that have no such own property.
func methodTables() map[string]map[string]cell.I {
	toString := Value("toString", 0, func(this cell.I, _ []cell.I) cell.I {
		return str.New(common.String(this))
	})

	return map[string]map[string]cell.I{
		"array": {
			"join": Value("join", 1, func(this cell.I, a []cell.I) cell.I {
				sep := ","
				if len(a) > 0 && !undefined.Is(a[0]) {
					sep = common.String(a[0])
				}

				return str.New(array.To(this).Join(sep))
			}),
			"push": Value("push", 1, func(this cell.I, a []cell.I) cell.I {
				return num.Int(array.To(this).Push(a...))
			}),
			"toString": toString,
		},
		"function": {
			"apply":    NewNative("apply", 2, apply),
			"bind":     NewNative("bind", 1, bind),
			"call":     NewNative("call", 1, call),
			"toString": toString,
		},
		"": {
			"toString": toString,
		},
	}
}

// member returns the value of the property k of the value o.
func (t *T) member(o cell.I, k string) cell.I {
	if undefined.Is(o) || null.Is(o) {
		panic(fault.Typef("Cannot read property '%s' of %s", k, o.Name()))
	}

	if v, ok := o.(object.I); ok {
		if r := v.Get(k); r != nil {
			return r
		}
	}

	if s, ok := o.(*str.T); ok {
		if k == "length" {
			return num.Int(s.Len())
		}

		if i, ok := common.Index(k); ok {
			if c := s.At(i); c != nil {
				return c
			}
		}
	}

	if m, ok := t.methods[o.Name()][k]; ok {
		return m
	}

	if m, ok := t.methods[""][k]; ok {
		return m
	}

	return undefined.Value
}

// setMember sets the property k of the value o to v. Properties set on
// primitive values are discarded.
func setMember(o cell.I, k string, v cell.I) {
	if undefined.Is(o) || null.Is(o) {
		panic(fault.Typef("Cannot set property '%s' of %s", k, o.Name()))
	}

	if w, ok := o.(object.I); ok {
		w.Set(k, v)
	}
}

// propertyKey converts a value used in a bracket expression to a
// property name.
func propertyKey(c cell.I) string {
	return common.String(c)
}

// spread converts the array-like value c to an argument list.
func spread(c cell.I) []cell.I {
	switch v := c.(type) {
	case *array.T:
		return v.Elements()
	case *args.T:
		return v.Values()
	}

	if undefined.Is(c) || null.Is(c) {
		return nil
	}

	o, ok := c.(object.I)
	if !ok {
		panic(fault.Typef("CreateListFromArrayLike called on non-object"))
	}

	n := 0
	if l := o.Get("length"); l != nil {
		n = common.Integer(l)
	}

	l := make([]cell.I, 0, n)

	for i := 0; i < n; i++ {
		v := o.Get(strconv.Itoa(i))
		if v == nil {
			v = undefined.Value
		}

		l = append(l, v)
	}

	return l
}

func toCallable(c cell.I, what string) callable {
	f, ok := c.(callable)
	if !ok {
		panic(fault.Typef("%s is not a function", what))
	}

	return f
}

// Natives that build the arguments for Invoke.

func apply(t *T, this cell.I, a []cell.I) Op {
	f := toCallable(this, "apply target")
	v, _ := validate.Variadic("apply", a, 0, 2)

	return f.Invoke(t, v[0], spread(v[1]))
}

func bind(t *T, this cell.I, a []cell.I) Op {
	f := toCallable(this, "bind target")
	v, rest := validate.Variadic("bind", a, 0, 1)

	return t.Return(f.Bind(v[0], rest))
}

func call(t *T, this cell.I, a []cell.I) Op {
	f := toCallable(this, "call target")
	v, rest := validate.Variadic("call", a, 0, 1)

	return f.Invoke(t, v[0], rest)
}

func nan() float64 {
	return math.NaN()
}
