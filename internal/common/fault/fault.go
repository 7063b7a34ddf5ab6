// Released under an MIT license. See LICENSE.

// Package fault classifies the errors raised while evaluating a program.
package fault

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/common/interface/object"
	"github.com/michaelmacinnis/jsi/internal/common/type/obj"
	"github.com/michaelmacinnis/jsi/internal/common/type/str"
)

// Kind is the category of a fault.
type Kind int

// The fault categories.
const (
	_ Kind = iota
	Syntax
	Reference
	Type
	Thrown
	Range
	Cancel
)

//nolint:gochecknoglobals
var names = [...]string{
	Syntax:    "SyntaxError",
	Reference: "ReferenceError",
	Type:      "TypeError",
	Thrown:    "Error",
	Range:     "RangeError",
	Cancel:    "CancelError",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(names) {
		return "UnknownError"
	}

	return names[k]
}

// T (fault) is an error raised by a program or by the evaluator on
// behalf of a program.
type T struct {
	Kind    Kind
	Message string
	Where   string   // Location of the statement that raised the fault.
	Trace   []string // Active calls when the fault escaped, innermost first.

	cause error
	value cell.I
}

type fault = T

// New creates a fault of the kind k.
func New(k Kind, msg string) *fault {
	return &fault{Kind: k, Message: msg}
}

// Cancelled creates a fault for a run that was stopped before it finished.
func Cancelled(cause error) *fault {
	return &fault{Kind: Cancel, Message: cause.Error(), cause: cause}
}

// Rangef creates a range fault.
func Rangef(format string, args ...interface{}) *fault {
	return New(Range, fmt.Sprintf(format, args...))
}

// Unresolved creates a reference fault for the unresolvable name k.
func Unresolved(k string) *fault {
	return New(Reference, k+" is not defined")
}

// Syntaxf creates a syntax fault.
func Syntaxf(format string, args ...interface{}) *fault {
	return New(Syntax, fmt.Sprintf(format, args...))
}

// Throw creates a fault carrying the value v thrown by a program.
func Throw(v cell.I) *fault {
	return &fault{Kind: Thrown, Message: describe(v), value: v}
}

// Typef creates a type fault.
func Typef(format string, args ...interface{}) *fault {
	return New(Type, fmt.Sprintf(format, args...))
}

// Classify converts a value recovered from a panic into a fault.
func Classify(r interface{}) *fault {
	switch r := r.(type) {
	case *fault:
		return r
	case error:
		var f *fault
		if errors.As(r, &f) {
			return f
		}

		return &fault{Kind: Type, Message: r.Error(), cause: r}
	case string:
		return New(Type, r)
	default:
		return New(Type, fmt.Sprint(r))
	}
}

// Is returns true if err is, or wraps, a fault of the kind k.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}

// KindOf returns the kind of the fault in err's chain or zero.
func KindOf(err error) Kind {
	var f *fault
	if errors.As(err, &f) {
		return f.Kind
	}

	return 0
}

// Catchable returns true if a program can intercept the fault f.
func (f *fault) Catchable() bool {
	return f.Kind != Cancel
}

func (f *fault) Error() string {
	if f.Kind == Thrown {
		return "Uncaught " + f.Message
	}

	return f.Kind.String() + ": " + f.Message
}

// Unwrap returns the error that caused the fault, if any.
func (f *fault) Unwrap() error {
	return f.cause
}

// Value returns the value a catch clause receives for the fault f.
// Thrown faults carry the program's own value. Other faults are
// presented as objects with a name and a message.
func (f *fault) Value() cell.I {
	if f.value != nil {
		return f.value
	}

	o := obj.New()
	o.Set("name", str.New(f.Kind.String()))
	o.Set("message", str.New(f.Message))

	f.value = o

	return o
}

// Thrown values that look like errors are described by name and message.
func describe(v cell.I) string {
	if o, ok := v.(object.I); ok {
		name, message := o.Get("name"), o.Get("message")
		if name != nil && message != nil {
			return fmt.Sprintf("%v: %v", name, message)
		}
	}

	return literal.String(v)
}
