// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/robertkrimen/otto/ast"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/struct/frame"
	"github.com/michaelmacinnis/jsi/internal/common/type/env"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

// A handler holds the machine state saved when a try statement starts.
// Raising a fault resumes from this state.
type handler struct {
	*registers
	try *ast.TryStatement
}

func (h *handler) Equal(c cell.I) bool {
	o, ok := c.(*handler)

	return ok && h == o
}

func (h *handler) Name() string {
	return "handler"
}

// resume transfers control to the catch clause, or the finally clause,
// of the try statement that installed h.
//
// Result (catch):
//  code:  Catch body
//  dump:  Completion ...
//  frame: Frame at try with a scope binding the catch parameter.
//  stack: evalStatement Restore(code: Try, frame: Frame at try) execFinally ...
//
// Result (finally only):
//  code:  Finally body
//  stack: evalStatement rethrow ...
//
func (h *handler) resume(t *T, f *fault.T) Op {
	h.restoreOver(t.registers)

	s := h.try

	if s.Catch == nil {
		t.RemoveOp()
		t.ReplaceOp(&rethrow{f})

		t.code = s.Finally

		return t.PushOp(Action(evalStatement))
	}

	e := env.New(t.frame.Scope())
	e.Define(s.Catch.Parameter.Name, f.Value())

	t.frame = frame.Dup(e, t.frame)

	if s.Finally != nil {
		t.frame = t.frame.Trap(&handler{h.registers, &ast.TryStatement{Finally: s.Finally}})
	}

	t.code = s.Catch.Body

	return t.PushOp(Action(evalStatement))
}

// evalTry evaluates a try statement.
//
// Result:
//  code:  Body
//  frame: Current with a handler for faults raised by Body
//  stack: evalStatement Restore(code: Try, frame: Current) execFinally Previous ...
//
// Requires:
//  code:  Try
//  stack: evalStatement Previous ...
//
func evalTry(t *T, s *ast.TryStatement) Op {
	t.ReplaceOp(Action(execFinally))
	t.PushOp(&registers{code: s, frame: t.frame})

	h := &handler{&registers{dump: t.dump, frame: t.frame, stack: t.stack}, s}

	t.frame = t.frame.Trap(h)

	t.code = s.Body

	return t.PushOp(Action(evalStatement))
}

// execFinally evaluates the finally clause, if any, after the try or
// catch block completes. The clause's completion value is discarded.
//
// Result:
//  code:  Finally
//  dump:  Undefined Completion ...
//  stack: evalStatement discard Previous ...
//
// Requires:
//  code:  Try
//  dump:  Completion ...
//  stack: execFinally Previous ...
//
func execFinally(t *T) Op {
	s := t.code.(*ast.TryStatement)
	if s.Finally == nil {
		return t.PreviousOp()
	}

	t.ReplaceOp(Action(discard))
	t.PushResult(undefined.Value)

	t.code = s.Finally

	return t.PushOp(Action(evalStatement))
}

// finally returns the handlers, innermost first, for try statements with
// finally clauses that control leaves when it is transferred to a target
// in the current activation. The handler stop was in effect at the target.
func (t *T) finally(stop cell.I) []*handler {
	var l []*handler

	depth := t.frame.Depth()

	for c := t.frame.Handler(); c != stop; {
		h, ok := c.(*handler)
		if !ok || h.frame.Depth() != depth {
			break
		}

		if h.try.Finally != nil {
			l = append(l, h)
		}

		c = h.frame.Handler()
	}

	return l
}

// A transfer completes a return, break, or continue statement. Any
// finally clauses the transfer leaves are evaluated first, innermost
// first, in the frame of their try statement.
type transfer struct {
	cc      *registers
	pending []*handler
	replace bool // Replace the completion value instead of pushing a result.
	value   cell.I
}

// Perform evaluates the next pending finally clause or, when there are
// none left, resumes the continuation cc with value.
//
// Result (pending):
//  code:  Finally
//  dump:  Undefined ...
//  frame: Frame at try
//  stack: evalStatement transfer(remaining) ...
//
func (x *transfer) Perform(t *T) Op {
	if len(x.pending) == 0 {
		x.cc.restoreOver(t.registers)

		if x.replace {
			t.ReplaceResult(x.value)
		} else {
			t.PushResult(x.value)
		}

		return t.Op()
	}

	h := x.pending[0]

	t.ReplaceOp(&transfer{
		cc:      x.cc,
		pending: x.pending[1:],
		replace: x.replace,
		value:   x.value,
	})

	t.frame = h.frame

	t.PushResult(undefined.Value)

	t.code = h.try.Finally

	return t.PushOp(Action(evalStatement))
}

// A rethrow operation raises a fault again after a finally clause.
type rethrow struct {
	cause *fault.T
}

func (r *rethrow) Perform(_ *T) Op {
	panic(r.cause)
}
