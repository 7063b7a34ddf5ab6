// Released under an MIT license. See LICENSE.

// Package reader turns source text into syntax trees for the evaluator.
package reader

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/parser"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
)

const incomplete = "Unexpected end of input"

// T (reader) accumulates lines until they form a complete program.
type T struct {
	name  string
	lines []string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Pending returns true if the reader holds lines of an incomplete program.
func (r *reader) Pending() bool {
	return len(r.lines) > 0
}

// Reset discards any lines of an incomplete program.
func (r *reader) Reset() {
	r.lines = nil
}

// Scan adds line to the program being read. It returns the program and
// its source when the accumulated lines form a complete program, nil
// if more lines are needed, or a syntax fault.
func (r *reader) Scan(line string) (*ast.Program, string, error) {
	r.lines = append(r.lines, line)

	src := strings.Join(r.lines, "\n")

	p, err := parser.ParseFile(nil, r.name, src, 0)
	if err != nil {
		if isIncomplete(err) {
			return nil, "", nil
		}

		r.lines = nil

		return nil, "", syntax(err)
	}

	r.lines = nil

	return p, src, nil
}

// Parse parses the program src. The name labels locations in faults.
func Parse(name, src string) (*ast.Program, error) {
	p, err := parser.ParseFile(nil, name, src, 0)
	if err != nil {
		return nil, syntax(err)
	}

	return p, nil
}

// ParseFunction parses a function with the comma-separated parameter
// list params and the body body.
func ParseFunction(params, body string) (*ast.FunctionLiteral, error) {
	f, err := parser.ParseFunction(params, body)
	if err != nil {
		return nil, syntax(err)
	}

	return f, nil
}

func first(err error) *parser.Error {
	var list parser.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return list[0]
	}

	var e *parser.Error
	if errors.As(err, &e) {
		return e
	}

	return nil
}

func isIncomplete(err error) bool {
	e := first(err)

	return e != nil && e.Message == incomplete
}

func syntax(err error) error {
	e := first(err)
	if e == nil {
		return fault.Syntaxf("%s", err.Error())
	}

	f := fault.Syntaxf("%s", e.Message)
	f.Where = e.Position.String()

	return f
}
