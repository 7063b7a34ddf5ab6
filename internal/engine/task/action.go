// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"
	"strings"

	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/token"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/truth"
	"github.com/michaelmacinnis/jsi/internal/common/type/boolean"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

// Action performs a single step of the machine and returns the next operation.
type Action func(*T) Op

// Perform is required for an action to be an operation.
func (a Action) Perform(t *T) Op {
	return a(t)
}

// Statements.

// evalBlock evaluates each statement in the list pointed to by code. The
// completion value of the block is kept as the current result.
//
// Result:
//  code:  <undefined>
//  dump:  Completion ...
//  stack: Previous ...
//
// Requires:
//  code:  Stmt_i ...
//  dump:  Completion ...
//  stack: evalBlock Previous ...
//
// Each time evalBlock runs, a statement has just completed (or none has
// started). It is the point at which a task can be suspended.
//
func evalBlock(t *T) Op {
	t.checkpoint()

	l, _ := t.code.([]ast.Statement)
	if len(l) == 0 {
		return t.PreviousOp()
	}

	t.PushOp(&registers{code: l[1:]})

	t.code = l[0]

	return t.PushOp(Action(evalStatement))
}

// evalStatement dispatches on the type of statement pointed to by code.
//
// Result:
//  dump:  Completion ...
//  stack: Previous ...
//
// Requires:
//  code:  Stmt
//  dump:  Completion ...
//  stack: evalStatement Previous ...
//
func evalStatement(t *T) Op {
	s := t.code.(ast.Statement)

	t.frame.Mark(s.Idx0())

	switch s := s.(type) {
	case *ast.BlockStatement:
		t.code = s.List

		return t.ReplaceOp(Action(evalBlock))

	case *ast.BranchStatement:
		return branch(t, s)

	case *ast.DebuggerStatement, *ast.EmptyStatement, *ast.FunctionStatement:
		return t.PreviousOp()

	case *ast.DoWhileStatement, *ast.ForStatement, *ast.WhileStatement:
		return loop(t, "", s)

	case *ast.ExpressionStatement:
		t.ReplaceOp(Action(execExpressionStatement))

		t.code = s.Expression

		return t.PushOp(Action(evalExpression))

	case *ast.IfStatement:
		t.ReplaceOp(Action(execIf))
		t.PushOp(&registers{code: s})

		t.code = s.Test

		return t.PushOp(Action(evalExpression))

	case *ast.LabelledStatement:
		return labelled(t, s)

	case *ast.ReturnStatement:
		t.ReplaceOp(Action(execReturn))

		if s.Argument == nil {
			t.PushResult(undefined.Value)

			return t.Op()
		}

		t.code = s.Argument

		return t.PushOp(Action(evalExpression))

	case *ast.ThrowStatement:
		t.ReplaceOp(Action(execThrow))

		t.code = s.Argument

		return t.PushOp(Action(evalExpression))

	case *ast.TryStatement:
		return evalTry(t, s)

	case *ast.VariableStatement:
		t.ReplaceOp(Action(discard))

		t.code = s.List

		return t.PushOp(Action(evalSequence))
	}

	panic(unsupported(s))
}

func execExpressionStatement(t *T) Op {
	t.ReplaceResult(t.PopResult())

	return t.PreviousOp()
}

func execIf(t *T) Op {
	s := t.code.(*ast.IfStatement)

	switch {
	case truth.Value(t.PopResult()):
		t.code = s.Consequent
	case s.Alternate != nil:
		t.code = s.Alternate
	default:
		return t.PreviousOp()
	}

	return t.ReplaceOp(Action(evalStatement))
}

// execReturn transfers the value on top of the dump to the continuation
// bound to return in the current activation. The transfer completes with
// the caller's dump and stack.
//
// Result:
//  stack: transfer ...
//
// Requires:
//  dump:  Value ...
//  stack: execReturn ...
//
func execReturn(t *T) Op {
	v := t.PopResult()

	cc, ok := t.frame.Scope().Get("return").(*registers)
	if !ok {
		panic(fault.Syntaxf("Illegal return statement"))
	}

	return t.ReplaceOp(&transfer{cc: cc, pending: t.finally(nil), value: v})
}

func execThrow(t *T) Op {
	panic(fault.Throw(t.PopResult()))
}

// Control transfer.

// branch transfers control to the continuation for a break or continue
// statement. The current completion value is kept.
func branch(t *T, s *ast.BranchStatement) Op {
	label := ""
	if s.Label != nil {
		label = s.Label.Name
	}

	var c, trap cell.I
	if s.Token == token.BREAK {
		c, trap = t.frame.Break(label)
	} else {
		c, trap = t.frame.Continue(label)
	}

	cc, ok := c.(*registers)
	if !ok {
		panic(fault.Syntaxf("Illegal %s statement", s.Token))
	}

	return t.ReplaceOp(&transfer{
		cc:      cc,
		pending: t.finally(trap),
		replace: true,
		value:   t.Result(),
	})
}

// labelled evaluates a labelled statement. Loops take the label so that
// a labelled continue can find them. Any other statement can be exited
// with a labelled break.
func labelled(t *T, s *ast.LabelledStatement) Op {
	switch inner := s.Statement.(type) {
	case *ast.DoWhileStatement, *ast.ForStatement, *ast.WhileStatement:
		return loop(t, s.Label.Name, inner)
	}

	t.ReplaceOp(&registers{frame: t.frame})

	exit := &registers{dump: t.dump, stack: t.stack}

	t.frame = t.frame.Target(s.Label.Name, exit, nil)

	t.code = s.Statement

	return t.PushOp(Action(evalStatement))
}

// loop starts a do-while, for, or while loop labelled label.
//
// Result:
//  code:  Loop
//  frame: Current with break and continue targets
//  stack: [Initializer ops] loopTest Restore(frame: Current) Previous ...
//         (or evalStatement Restore(code: Loop) loopTest ... for do-while)
//
// Requires:
//  stack: Loop op Previous ...
//
// A break resumes with the stack below the loop. A continue resumes with
// the loop's next step: the update for a for loop and the test otherwise.
//
func loop(t *T, label string, s ast.Statement) Op {
	t.ReplaceOp(&registers{frame: t.frame})

	exit := &registers{dump: t.dump, stack: t.stack}

	var next Action = loopTest
	if _, ok := s.(*ast.ForStatement); ok {
		next = loopUpdate
	}

	cont := &registers{code: s, dump: t.dump, stack: &stack{t.stack, next}}

	t.frame = t.frame.Target(label, exit, cont)
	cont.frame = t.frame

	t.code = s

	t.PushOp(Action(loopTest))

	switch s := s.(type) {
	case *ast.DoWhileStatement:
		t.PushOp(&registers{code: s})

		t.code = s.Body

		return t.PushOp(Action(evalStatement))

	case *ast.ForStatement:
		if s.Initializer == nil {
			return t.Op()
		}

		t.PushOp(&registers{code: s})
		t.PushOp(Action(discard))

		t.code = s.Initializer

		return t.PushOp(Action(evalExpression))
	}

	return t.Op()
}

// loopTest evaluates the loop's test. A missing test is true. Like
// evalBlock, it is a point at which a task can be suspended.
func loopTest(t *T) Op {
	t.checkpoint()

	var test ast.Expression

	switch s := t.code.(type) {
	case *ast.DoWhileStatement:
		test = s.Test
	case *ast.ForStatement:
		test = s.Test
	case *ast.WhileStatement:
		test = s.Test
	}

	t.ReplaceOp(Action(execLoopTest))

	if test == nil {
		t.PushResult(boolean.True)

		return t.Op()
	}

	t.PushOp(&registers{code: t.code})

	t.code = test

	return t.PushOp(Action(evalExpression))
}

// execLoopTest ends the loop or evaluates the loop's body.
func execLoopTest(t *T) Op {
	if !truth.Value(t.PopResult()) {
		return t.PreviousOp()
	}

	var body ast.Statement

	next := Action(loopTest)

	switch s := t.code.(type) {
	case *ast.DoWhileStatement:
		body = s.Body
	case *ast.ForStatement:
		body = s.Body
		next = loopUpdate
	case *ast.WhileStatement:
		body = s.Body
	}

	t.ReplaceOp(next)
	t.PushOp(&registers{code: t.code})

	t.code = body

	return t.PushOp(Action(evalStatement))
}

// loopUpdate evaluates a for loop's update expression.
func loopUpdate(t *T) Op {
	s := t.code.(*ast.ForStatement)

	t.ReplaceOp(Action(loopTest))

	if s.Update == nil {
		return t.Op()
	}

	t.PushOp(&registers{code: s})
	t.PushOp(Action(discard))

	t.code = s.Update

	return t.PushOp(Action(evalExpression))
}

func discard(t *T) Op {
	t.PopResult()

	return t.PreviousOp()
}

func unsupported(n ast.Node) *fault.T {
	name := strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")

	return fault.Syntaxf("%s is not supported", name)
}
