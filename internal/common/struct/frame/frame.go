// Released under an MIT license. See LICENSE.

// Package frame provides jsi's call stack frame type.
package frame

import (
	"github.com/robertkrimen/otto/file"

	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
	"github.com/michaelmacinnis/jsi/internal/common/struct/loc"
)

// T (frame) is stack frame or activation record.
type T struct {
	previous *frame
	scope    scope.I
	file     *file.File
	at       file.Idx
	callee   string
	depth    int
	trap     cell.I
	targets  *target
}

type frame = T

// A target is where a break or continue statement transfers control.
// The fault handler in effect when the target was set is kept so that
// handlers installed since can be found.
type target struct {
	label string
	exit  cell.I
	next  cell.I
	trap  cell.I
	*target
}

// Dup creates a duplicate of the frame f with a new scope s.
func Dup(s scope.I, f *frame) *frame {
	dup := *f
	dup.scope = s

	return &dup
}

// New creates a new frame for an activation of callee, defined in src,
// with the scope s and previous frame p. The new frame inherits p's
// fault handler.
func New(s scope.I, p *frame, callee string, src *file.File) *frame {
	f := &frame{scope: s, callee: callee, file: src}

	if p != nil {
		f.previous = p
		f.depth = p.depth + 1
		f.trap = p.trap
	}

	return f
}

// Break returns the continuation for a break statement with the label l,
// and the fault handler in effect at the target. An empty label matches
// the innermost loop.
func (f *frame) Break(l string) (cell.I, cell.I) {
	for t := f.targets; t != nil; t = t.target {
		if (l == "" && t.next != nil) || (l != "" && t.label == l) {
			return t.exit, t.trap
		}
	}

	return nil, nil
}

// Callee returns the name of the function that created the frame f.
func (f *frame) Callee() string {
	return f.callee
}

// Continue is like Break but returns the continuation for a continue
// statement.
func (f *frame) Continue(l string) (cell.I, cell.I) {
	for t := f.targets; t != nil; t = t.target {
		if t.next != nil && (l == "" || t.label == l) {
			return t.next, t.trap
		}
	}

	return nil, nil
}

// Depth returns the number of activations below the frame f.
func (f *frame) Depth() int {
	return f.depth
}

// Handler returns the innermost fault handler or nil.
func (f *frame) Handler() cell.I {
	return f.trap
}

// File returns the source file for the frame's code, if known.
func (f *frame) File() *file.File {
	return f.file
}

// Loc returns the current location.
func (f *frame) Loc() *loc.T {
	l := &loc.T{Name: f.callee}

	if f.file == nil {
		return l
	}

	l.Name = f.file.Name()

	if p := f.file.Position(f.at); p != nil {
		l.Char = p.Column
		l.Line = p.Line
	}

	return l
}

// Mark sets the current location to the offset idx in the frame's file.
func (f *frame) Mark(idx file.Idx) {
	f.at = idx
}

// Scope returns the current frame's scope.
func (f *frame) Scope() scope.I {
	return f.scope
}

// Target returns a copy of the frame f with a break target (and, for
// loops, a continue target) labelled l.
func (f *frame) Target(l string, exit, next cell.I) *frame {
	dup := *f
	dup.targets = &target{
		label:  l,
		exit:   exit,
		next:   next,
		trap:   f.trap,
		target: f.targets,
	}

	return &dup
}

// Trace returns the callee names and locations of the frames from f down.
func (f *frame) Trace() []string {
	trace := []string{}

	for ; f != nil; f = f.previous {
		name := f.callee
		if name == "" {
			name = "<anonymous>"
		}

		trace = append(trace, name+" ("+f.Loc().String()+")")
	}

	return trace
}

// Trap returns a copy of the frame f with the fault handler h.
func (f *frame) Trap(h cell.I) *frame {
	dup := *f
	dup.trap = h

	return &dup
}
