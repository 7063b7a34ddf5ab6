// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/token"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
	"github.com/michaelmacinnis/jsi/internal/common/type/array"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/env"
	"github.com/michaelmacinnis/jsi/internal/common/type/null"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/obj"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
	"github.com/michaelmacinnis/jsi/internal/engine/commands"
)

// A push operation pushes a constant result.
type push struct {
	value cell.I
}

func (p push) Perform(t *T) Op {
	return t.Return(p.value)
}

// evalExpression evaluates the expression pointed to by code.
//
// Result:
//  dump:  Value ...
//  stack: Previous ...
//
// Requires:
//  code:  Expr
//  stack: evalExpression Previous ...
//
func evalExpression(t *T) Op {
	e := t.code.(ast.Expression)

	switch e := e.(type) {
	case *ast.ArrayLiteral:
		t.ReplaceOp(Action(execArray))
		t.PushResult(nil)

		t.code = e.Value

		return t.PushOp(Action(evalArgs))

	case *ast.AssignExpression:
		return evalAssign(t, e)

	case *ast.BinaryExpression:
		return evalBinary(t, e)

	case *ast.BooleanLiteral:
		return t.Return(boolean.Bool(e.Value))

	case *ast.BracketExpression, *ast.DotExpression:
		t.ReplaceOp(Action(execGet))

		return evalTarget(t, e)

	case *ast.CallExpression:
		return evalCall(t, e)

	case *ast.ConditionalExpression:
		t.ReplaceOp(Action(execConditional))
		t.PushOp(&registers{code: e})

		t.code = e.Test

		return t.PushOp(Action(evalExpression))

	case *ast.EmptyExpression:
		return t.Return(undefined.Value)

	case *ast.FunctionLiteral:
		return t.Return(t.closure(e))

	case *ast.Identifier:
		return t.Return(t.frame.Scope().Get(e.Name))

	case *ast.NewExpression:
		t.ReplaceOp(Action(execNew))

		return evalInvocation(t, e, e.ArgumentList, e.Callee)

	case *ast.NullLiteral:
		return t.Return(null.Value)

	case *ast.NumberLiteral:
		return t.Return(number(e))

	case *ast.ObjectLiteral:
		return evalObject(t, e)

	case *ast.SequenceExpression:
		t.code = e.Sequence

		return t.ReplaceOp(Action(evalSequence))

	case *ast.StringLiteral:
		return t.Return(str.New(e.Value))

	case *ast.ThisExpression:
		return t.Return(t.frame.Scope().Get("this"))

	case *ast.UnaryExpression:
		return evalUnary(t, e)

	case *ast.VariableExpression:
		if e.Initializer == nil {
			return t.Return(undefined.Value)
		}

		t.ReplaceOp(Action(execVariable))
		t.PushOp(&registers{code: e})

		t.code = e.Initializer

		return t.PushOp(Action(evalExpression))
	}

	panic(unsupported(e))
}

// evalArgs evaluates each expression in the list pointed to by code and
// leaves the values on the dump, first value deepest.
func evalArgs(t *T) Op {
	l := t.code.([]ast.Expression)
	if len(l) == 0 {
		return t.PreviousOp()
	}

	t.PushOp(&registers{code: l[1:]})

	t.code = l[0]

	return t.PushOp(Action(evalExpression))
}

// evalSequence evaluates each expression in the list pointed to by code
// and leaves the value of the last. An empty list is undefined.
func evalSequence(t *T) Op {
	l := t.code.([]ast.Expression)
	if len(l) == 0 {
		return t.Return(undefined.Value)
	}

	t.code = l[0]

	if len(l) == 1 {
		return t.ReplaceOp(Action(evalExpression))
	}

	t.PushOp(&registers{code: l[1:]})
	t.PushOp(Action(discard))

	return t.PushOp(Action(evalExpression))
}

// evalTarget evaluates the expression e as the target of an assignment.
//
// Result:
//  dump:  Key Base ...
//  stack: Previous ...
//
// For a name the base is the current scope. For a property access the
// base is the object.
//
func evalTarget(t *T, e ast.Expression) Op {
	switch e := e.(type) {
	case *ast.BracketExpression:
		t.PushOp(Action(execKey))
		t.PushOp(Action(evalExpression))
		t.PushOp(&registers{code: e.Member})

		t.code = e.Left

		return t.PushOp(Action(evalExpression))

	case *ast.DotExpression:
		t.PushOp(push{str.New(e.Identifier.Name)})

		t.code = e.Left

		return t.PushOp(Action(evalExpression))

	case *ast.Identifier:
		t.PushResult(t.frame.Scope())
		t.PushResult(str.New(e.Name))

		return t.Op()
	}

	panic(fault.Syntaxf("Invalid left-hand side in assignment"))
}

func execKey(t *T) Op {
	t.ReplaceResult(str.New(propertyKey(t.Result())))

	return t.PreviousOp()
}

// Targets.

func (t *T) get(base cell.I, k string) cell.I {
	if s, ok := base.(scope.I); ok {
		return s.Get(k)
	}

	return t.member(base, k)
}

func (t *T) set(base cell.I, k string, v cell.I) {
	if s, ok := base.(scope.I); ok {
		s.Set(k, v)

		return
	}

	setMember(base, k, v)
}

func (t *T) target() (cell.I, string) {
	k := common.String(t.PopResult())

	return t.PopResult(), k
}

func execGet(t *T) Op {
	b, k := t.target()

	return t.Return(t.get(b, k))
}

// execFetch gets the current value of a target and keeps the target.
//
// Result:
//  dump:  Value Key Base ...
//
// Requires:
//  dump:  Key Base ...
//
func execFetch(t *T) Op {
	k := t.Result()
	b := t.dump.dump.value

	return t.Return(t.get(b, common.String(k)))
}

// Assignment.

func evalAssign(t *T, e *ast.AssignExpression) Op {
	t.ReplaceOp(Action(execAssign))

	if e.Operator != token.ASSIGN {
		t.PushOp(Action(execCompound))
		t.PushOp(&registers{code: e})
	}

	t.PushOp(Action(evalExpression))
	t.PushOp(&registers{code: e.Right})

	if e.Operator != token.ASSIGN {
		t.PushOp(Action(execFetch))
	}

	return evalTarget(t, e.Left)
}

// execAssign sets the target to the value on top of the dump.
//
// Result:
//  dump:  Value ...
//
// Requires:
//  dump:  Value Key Base ...
//
func execAssign(t *T) Op {
	v := t.PopResult()
	b, k := t.target()

	t.set(b, k, v)

	return t.Return(v)
}

func execCompound(t *T) Op {
	e := t.code.(*ast.AssignExpression)

	r := t.PopResult()

	t.ReplaceResult(commands.Binary(e.Operator, t.Result(), r))

	return t.PreviousOp()
}

func execVariable(t *T) Op {
	e := t.code.(*ast.VariableExpression)

	s := t.frame.Scope()
	if r := s.Lookup(e.Name); r != nil {
		r.Set(t.Result())
	} else {
		s.Define(e.Name, t.Result())
	}

	return t.PreviousOp()
}

// Operators.

func evalBinary(t *T, e *ast.BinaryExpression) Op {
	switch e.Operator {
	case token.LOGICAL_AND, token.LOGICAL_OR:
		t.ReplaceOp(Action(execLogical))
	default:
		t.ReplaceOp(Action(execBinary))
		t.PushOp(&registers{code: e})
		t.PushOp(Action(evalExpression))
		t.PushOp(&registers{code: e.Right})

		t.code = e.Left

		return t.PushOp(Action(evalExpression))
	}

	t.PushOp(&registers{code: e})

	t.code = e.Left

	return t.PushOp(Action(evalExpression))
}

func execBinary(t *T) Op {
	e := t.code.(*ast.BinaryExpression)

	r := t.PopResult()

	t.ReplaceResult(commands.Binary(e.Operator, t.Result(), r))

	return t.PreviousOp()
}

// execLogical keeps the left value if it decides the result. Otherwise
// the result is the value of the right side.
func execLogical(t *T) Op {
	e := t.code.(*ast.BinaryExpression)

	if truth.Value(t.Result()) == (e.Operator == token.LOGICAL_OR) {
		return t.PreviousOp()
	}

	t.PopResult()

	t.code = e.Right

	return t.ReplaceOp(Action(evalExpression))
}

func execConditional(t *T) Op {
	e := t.code.(*ast.ConditionalExpression)

	if truth.Value(t.PopResult()) {
		t.code = e.Consequent
	} else {
		t.code = e.Alternate
	}

	return t.ReplaceOp(Action(evalExpression))
}

func evalUnary(t *T, e *ast.UnaryExpression) Op {
	switch e.Operator {
	case token.DECREMENT, token.INCREMENT:
		t.ReplaceOp(Action(execUpdate))
		t.PushOp(&registers{code: e})
		t.PushOp(Action(execFetch))

		return evalTarget(t, e.Operand)

	case token.DELETE:
		switch e.Operand.(type) {
		case *ast.BracketExpression, *ast.DotExpression:
			t.ReplaceOp(Action(execDelete))

			return evalTarget(t, e.Operand)

		case *ast.Identifier:
			return t.Return(boolean.False)
		}

		t.ReplaceOp(push{boolean.True})
		t.PushOp(Action(discard))

		t.code = e.Operand

		return t.PushOp(Action(evalExpression))

	case token.TYPEOF:
		if id, ok := e.Operand.(*ast.Identifier); ok {
			if t.frame.Scope().Lookup(id.Name) == nil {
				return t.Return(str.New("undefined"))
			}
		}
	}

	t.ReplaceOp(Action(execUnary))
	t.PushOp(&registers{code: e})

	t.code = e.Operand

	return t.PushOp(Action(evalExpression))
}

func execUnary(t *T) Op {
	e := t.code.(*ast.UnaryExpression)

	t.ReplaceResult(commands.Unary(e.Operator, t.Result()))

	return t.PreviousOp()
}

// execUpdate increments or decrements a target.
//
// Result:
//  dump:  Old value (postfix) or new value (prefix) ...
//
// Requires:
//  dump:  Current value Key Base ...
//
func execUpdate(t *T) Op {
	e := t.code.(*ast.UnaryExpression)

	old := common.Number(t.PopResult())
	b, k := t.target()

	n := old + 1
	if e.Operator == token.DECREMENT {
		n = old - 1
	}

	t.set(b, k, num.New(n))

	if e.Postfix {
		return t.Return(num.New(old))
	}

	return t.Return(num.New(n))
}

func execDelete(t *T) Op {
	b, k := t.target()

	if undefined.Is(b) || null.Is(b) {
		panic(fault.Typef("Cannot convert %s to object", b.Name()))
	}

	if o, ok := b.(object.I); ok {
		return t.Return(boolean.Bool(o.Delete(k)))
	}

	return t.Return(boolean.True)
}

// Calls.

func evalCall(t *T, e *ast.CallExpression) Op {
	t.ReplaceOp(Action(execCall))

	return evalInvocation(t, e, e.ArgumentList, e.Callee)
}

// evalInvocation evaluates the receiver, the function, and the
// arguments of a call or new expression e.
//
// Result:
//  code:  Expr
//  dump:  Args... <nil> Function Receiver ...
//  stack: Previous ...
//
// The receiver is the object for a method call and undefined otherwise.
//
func evalInvocation(t *T, e ast.Expression, args []ast.Expression, callee ast.Expression) Op {
	t.PushOp(&registers{code: e})
	t.PushOp(Action(evalArgs))
	t.PushOp(&registers{code: args})
	t.PushOp(Action(mark))

	switch callee.(type) {
	case *ast.BracketExpression, *ast.DotExpression:
		if _, ok := e.(*ast.CallExpression); ok {
			t.PushOp(Action(execMethod))

			return evalTarget(t, callee)
		}
	}

	t.PushResult(undefined.Value)

	t.code = callee

	return t.PushOp(Action(evalExpression))
}

// execMethod replaces the key on top of the dump with the method it
// names and leaves the object below it as the receiver.
func execMethod(t *T) Op {
	k := common.String(t.PopResult())

	return t.Return(t.get(t.Result(), k))
}

func execCall(t *T) Op {
	e := t.code.(*ast.CallExpression)

	a := t.arguments()
	f := t.PopResult()
	this := t.PopResult()

	return toCallable(f, calleeName(e.Callee)).Invoke(t, this, a)
}

// execNew invokes a function with a new object as its receiver.
//
// Result:
//  dump:  Object ...
//  stack: Invocation execConstructed Previous ...
//
// Requires:
//  dump:  Args... <nil> Function Undefined ...
//  stack: execNew Previous ...
//
func execNew(t *T) Op {
	e := t.code.(*ast.NewExpression)

	a := t.arguments()
	f := toCallable(t.PopResult(), calleeName(e.Callee))

	o := obj.New()

	t.ReplaceResult(o)
	t.ReplaceOp(Action(execConstructed))
	t.PushOp(Action(nop))

	if b, ok := f.(*Bound); ok {
		return b.construct(t, o, a)
	}

	return f.Invoke(t, o, a)
}

// execConstructed keeps the value returned by a constructor if it is an
// object. Otherwise the result is the new object.
func execConstructed(t *T) Op {
	r := t.PopResult()

	if _, ok := r.(object.I); ok {
		t.ReplaceResult(r)
	}

	return t.PreviousOp()
}

func mark(t *T) Op {
	t.PushResult(nil)

	return t.PreviousOp()
}

func nop(t *T) Op {
	return t.PreviousOp()
}

func calleeName(e ast.Expression) string {
	switch e := e.(type) {
	case *ast.BracketExpression:
		return calleeName(e.Left) + "[...]"
	case *ast.DotExpression:
		return calleeName(e.Left) + "." + e.Identifier.Name
	case *ast.Identifier:
		return e.Name
	case *ast.ThisExpression:
		return "this"
	}

	return "expression"
}

// Literals.

// closure creates a closure for the function literal f in the current
// scope. A named function expression can refer to itself by name.
func (t *T) closure(f *ast.FunctionLiteral) cell.I {
	s := t.frame.Scope()

	if f.Name == nil {
		return NewClosure(f, s, t.frame.File())
	}

	s = env.New(s)

	c := NewClosure(f, s, t.frame.File())
	s.Define(f.Name.Name, c)

	return c
}

func execArray(t *T) Op {
	return t.Return(array.New(t.arguments()...))
}

func evalObject(t *T, e *ast.ObjectLiteral) Op {
	l := make([]ast.Expression, 0, len(e.Value))

	for _, p := range e.Value {
		if p.Kind != "value" {
			panic(fault.Syntaxf("property %sters are not supported", p.Kind))
		}

		l = append(l, p.Value)
	}

	t.ReplaceOp(Action(execObject))
	t.PushOp(&registers{code: e})
	t.PushResult(nil)

	t.code = l

	return t.PushOp(Action(evalArgs))
}

func execObject(t *T) Op {
	e := t.code.(*ast.ObjectLiteral)

	o := obj.New()

	for i, v := range t.arguments() {
		o.Set(e.Value[i].Key, v)
	}

	return t.Return(o)
}

func number(e *ast.NumberLiteral) cell.I {
	switch v := e.Value.(type) {
	case float64:
		return num.New(v)
	case int64:
		return num.New(float64(v))
	}

	return num.New(common.ParseNumber(e.Literal))
}
