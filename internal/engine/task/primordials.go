// Released under an MIT license. See LICENSE.

package task

import (
	"math"
	"sort"
	"strings"

	"github.com/michaelmacinnis/jsi/internal/common"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
	"github.com/michaelmacinnis/jsi/internal/common/type/num"
	"github.com/michaelmacinnis/jsi/internal/common/type/obj"
	"github.com/michaelmacinnis/jsi/internal/common/type/undefined"
	"github.com/michaelmacinnis/jsi/internal/engine/commands"
	"github.com/michaelmacinnis/jsi/internal/reader"
)

// Primordials defines the values that a global scope starts with.
func Primordials(s scope.I) {
	s.Define("Infinity", num.New(math.Inf(1)))
	s.Define("NaN", num.NaN())
	s.Define("undefined", undefined.Value)
	s.Define("this", undefined.Value)

	s.Define("Function", NewNative("Function", 1, construct))

	for name, f := range natives(commands.Functions()) {
		s.Define(name, f)
	}

	m := obj.New()

	m.Set("E", num.New(math.E))
	m.Set("PI", num.New(math.Pi))

	fns := natives(commands.Math())

	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		m.Set(name, fns[name])
	}

	s.Define("Math", m)
}

// construct creates a function from parameter names and a body. The
// function is closed over the global scope, not the caller's.
func construct(t *T, _ cell.I, a []cell.I) Op {
	params := []string{}
	body := ""

	if n := len(a); n > 0 {
		body = common.String(a[n-1])

		for _, p := range a[:n-1] {
			params = append(params, common.String(p))
		}
	}

	f, err := reader.ParseFunction(strings.Join(params, ","), body)
	if err != nil {
		panic(err)
	}

	c := NewClosure(f, scope.Global(t.frame.Scope()), nil)
	c.name = "anonymous"

	return t.Return(c)
}

func natives(m map[string]commands.Function) map[string]cell.I {
	r := make(map[string]cell.I, len(m))

	for name, f := range m {
		fn := f.Fn

		r[name] = Value(name, f.Arity, func(_ cell.I, a []cell.I) cell.I {
			return fn(a)
		})
	}

	return r
}
