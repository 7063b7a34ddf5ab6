// Released under an MIT license. See LICENSE.

// Package options parses jsi's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by --version.
const Version = "jsi 0.1.0"

const usage = `jsi

Usage:
  jsi [-v...] [--strict] [--config=PATH] SCRIPT
  jsi [-v...] [--strict] [--config=PATH] -e EXPRESSION
  jsi [-v...] [--strict] [--config=PATH] [-i]
  jsi -h
  jsi --version

Arguments:
  SCRIPT  Path to a script to evaluate.

Options:
  -e, --eval=EXPRESSION  Evaluate EXPRESSION and print the result.
  -i, --interactive      Invert interactive mode detection.
  --config=PATH          Read settings from PATH.
  --strict               Assigning to an undeclared name is an error.
  -v, --verbose          Log more. Repeat for even more.
  -h, --help             Display this help.
  --version              Print jsi version.

If jsi's stdin is a TTY, and jsi was invoked with no script or
expression, interactive mode is enabled. Otherwise, the program is
read from stdin.
`

// T (options) holds the settings from the command line.
type T struct {
	Config      string
	Expression  string
	Interactive bool
	Script      string
	Strict      bool
	Verbosity   int
}

// Parse parses the arguments argv, not including the program name. The
// function help is called with the usage text when help, or the
// version, is requested or the arguments are invalid.
func Parse(argv []string, help func(error, string)) (*T, error) {
	p := &docopt.Parser{HelpHandler: help}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.Config, _ = opts.String("--config")
	o.Expression, _ = opts.String("--eval")
	o.Script, _ = opts.String("SCRIPT")
	o.Strict, _ = opts.Bool("--strict")

	if n, ok := opts["--verbose"].(int); ok {
		o.Verbosity = n
	}

	if o.Script == "" && o.Expression == "" {
		o.Interactive = isatty.IsTerminal(os.Stdin.Fd())
	}

	invert, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invert

	return o, nil
}
