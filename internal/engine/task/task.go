// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate jsi programs.
package task

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/robertkrimen/otto/ast"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
	"github.com/michaelmacinnis/jsi/internal/common/struct/frame"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
)

// Errors recorded as the cause of cancel faults.
var (
	ErrBudget  = errors.New("step budget exhausted")
	ErrStopped = errors.New("stopped")
)

// Limits bound the resources a task may use. Zero means no limit.
type Limits struct {
	MaxDepth int   // Nested function activations.
	MaxSteps int64 // Machine steps.
}

// T (task) encapsulates a thread of execution.
type T struct {
	*registers
	*state

	ctx     context.Context
	fault   *fault.T
	limits  Limits
	log     *logrus.Entry
	methods map[string]map[string]cell.I
	steps   int64
}

// New creates a new task that will evaluate the program p in the global
// scope g. Declarations in p are hoisted into g before New returns.
func New(g scope.I, p *ast.Program, l Limits, log *logrus.Entry) *T {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	t := &T{
		registers: &registers{
			code:  p.Body,
			dump:  bottom,
			frame: frame.New(g, nil, "", p.File),
			stack: done,
		},
		state:  fresh(),
		ctx:    context.Background(),
		limits: l,
		log:    log,
	}

	t.methods = methodTables()

	hoist(g, p.DeclarationList, p.File)

	t.PushResult(undefined.Value)
	t.PushOp(Action(evalBlock))

	return t
}

// Outcome returns the completion value of the program or the fault
// that stopped it.
func (t *T) Outcome() (cell.I, error) {
	if t.fault != nil {
		return nil, t.fault
	}

	return t.Result(), nil
}

// Return pushes the result c and continues with the previous operation.
func (t *T) Return(c cell.I) Op {
	t.PushResult(c)

	return t.PreviousOp()
}

// Run steps through a task's operations until they are exhausted, the
// context ctx is done, or the task is stopped.
func (t *T) Run(ctx context.Context) (cell.I, error) {
	t.state.Started()
	defer t.state.Stopped()

	t.ctx = ctx

	s := t.Op()
	for s != nil {
		if t.state.Runnable() {
			s = t.Step(s)
		} else {
			s = t.raise(fault.Cancelled(ErrStopped))
		}
	}

	return t.Outcome()
}

// Step performs a single action and determines the next action.
func (t *T) Step(s Op) (op Op) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		op = t.raise(fault.Classify(r))
	}()

	t.steps++

	if t.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		t.trace()
	}

	return s.Perform(t)
}

// Steps returns the number of steps the task has performed.
func (t *T) Steps() int64 {
	return t.steps
}

// checkpoint is where a task can be suspended. If the task's context is
// done, or its step budget is exhausted, the task is cancelled.
func (t *T) checkpoint() {
	if err := t.ctx.Err(); err != nil {
		panic(fault.Cancelled(err))
	}

	if t.limits.MaxSteps > 0 && t.steps > t.limits.MaxSteps {
		panic(fault.Cancelled(ErrBudget))
	}
}

// raise transfers control to the innermost handler for the fault f. If
// there is no handler, or f cannot be caught, the task stops.
func (t *T) raise(f *fault.T) Op {
	if f.Where == "" {
		f.Where = t.frame.Loc().String()
	}

	h, ok := t.frame.Handler().(*handler)
	if !ok || !f.Catchable() {
		if f.Trace == nil {
			f.Trace = t.frame.Trace()
		}

		t.fault = f
		t.stack = done

		t.log.WithFields(logrus.Fields{
			"kind":  f.Kind.String(),
			"where": f.Where,
		}).Debug(f.Message)

		return nil
	}

	return h.resume(t, f)
}

func (t *T) trace() {
	ops := []string{}

	for p := t.stack; p != nil && p.op != nil; p = p.stack {
		ops = append(ops, opString(p.op))
	}

	results := 0
	for p := t.dump; p != bottom; p = p.dump {
		results++
	}

	t.log.WithFields(logrus.Fields{
		"depth": t.frame.Depth(),
		"dump":  results,
		"stack": strings.Join(ops, " "),
	}).Trace("step")
}
