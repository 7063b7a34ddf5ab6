// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping jsi.
package boot

import (
	_ "embed" // Blank import required by embed.
	"sync"

	"github.com/robertkrimen/otto/ast"

	"github.com/michaelmacinnis/jsi/internal/reader"
)

//go:embed boot.js
var script string //nolint:gochecknoglobals

//nolint:gochecknoglobals
var (
	once    sync.Once
	program *ast.Program
	failure error
)

// Program returns the parsed boot script. The script is parsed once.
func Program() (*ast.Program, error) {
	once.Do(func() {
		program, failure = reader.Parse("boot.js", script)
	})

	return program, failure
}

// Script returns the boot script for jsi.
func Script() string {
	return script
}
