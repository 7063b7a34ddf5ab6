// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/file"

	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
)

// hoist binds the declarations of a function body, or program, in s
// before any of its statements run. Variables are declared, holding
// undefined unless already bound, and then functions are defined.
func hoist(s scope.I, decls []ast.Declaration, src *file.File) {
	for _, d := range decls {
		if v, ok := d.(*ast.VariableDeclaration); ok {
			for _, e := range v.List {
				s.Declare(e.Name)
			}
		}
	}

	for _, d := range decls {
		if f, ok := d.(*ast.FunctionDeclaration); ok && f.Function.Name != nil {
			s.Define(f.Function.Name.Name, NewClosure(f.Function, s, src))
		}
	}
}
