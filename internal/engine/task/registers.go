// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/struct/frame"
)

// The registers type holds the state of jsi's stack-based abstract machine.
type registers struct {
	*stack
	frame *frame.T
	code  interface{}
	dump  *dump
}

// Perform copies non-nil fields from m to target.
func (m *registers) Perform(target *T) Op {
	m.restoreOver(target.registers)

	return target.PreviousOp()
}

func (m *registers) Equal(c cell.I) bool {
	o, ok := c.(*registers)

	return ok && m == o
}

func (m *registers) Name() string {
	return "continuation"
}

// Op returns the abstract machine's current operation.
func (m *registers) Op() Op {
	return m.stack.op
}

// PopResult removes the top result from dump.
func (m *registers) PopResult() cell.I {
	r := m.dump.value
	m.dump = m.dump.dump

	return r
}

// PushOp pushes a new operation onto the stack.
func (m *registers) PushOp(s Op) Op {
	current := toRegisters(s)
	previous := toRegisters(m.stack.op)

	if current != nil && previous != nil {
		// Condense restore operations. Saved stacks are shared so
		// neither the operations nor the stack are changed in place.
		condensed := *current
		previous.restoreOver(&condensed)
		m.stack = &stack{m.stack.stack, &condensed}

		return &condensed
	}

	m.stack = &stack{m.stack, s}

	return s
}

// PushResult adds the result r to dump.
func (m *registers) PushResult(r cell.I) {
	m.dump = &dump{m.dump, r}
}

// PreviousOp pops the current operation and returns the previous operation.
func (m *registers) PreviousOp() Op {
	m.RemoveOp()

	return m.Op()
}

// RemoveOp pops the current operation off the stack.
func (m *registers) RemoveOp() {
	m.stack = m.stack.stack
}

// ReplaceOp replaces the operation at the top of the stack.
func (m *registers) ReplaceOp(s Op) Op {
	m.RemoveOp()

	return m.PushOp(s)
}

// ReplaceResult replaces the current result.
func (m *registers) ReplaceResult(r cell.I) {
	m.dump = &dump{m.dump.dump, r}
}

// Result returns the current result.
func (m *registers) Result() cell.I {
	return m.dump.value
}

// The stack type is a machine's execution stack.
type stack struct {
	*stack
	op Op
}

// The dump type is a machine's stack of intermediate results. Like the
// execution stack it is never modified in place so a saved dump can be
// restored by a continuation.
type dump struct {
	*dump
	value cell.I
}

//nolint:gochecknoglobals
var (
	bottom = &dump{}
	done   = &stack{}
)

// arguments pops results up to and including a nil marker and returns
// them in the order they were pushed.
func (m *registers) arguments() []cell.I {
	var l []cell.I

	for e := m.PopResult(); e != nil; e = m.PopResult() {
		l = append(l, e)
	}

	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}

	return l
}

func (m *registers) restoreOver(target *registers) {
	if m.frame != nil {
		target.frame = m.frame
	}

	if m.code != nil {
		target.code = m.code
	}

	if m.dump != nil {
		target.dump = m.dump
	}

	if m.stack != nil {
		target.stack = m.stack
	}
}

func init() { //nolint:gochecknoinits
	done.stack = done
	bottom.dump = bottom
}

func toRegisters(s Op) *registers {
	if r, ok := s.(*registers); ok {
		return r
	}

	return nil
}
