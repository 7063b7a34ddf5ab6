// Released under an MIT license. See LICENSE.

/*
Jsi evaluates a subset of JavaScript.

It runs a script, a single expression, or an interactive session:

	jsi script.js
	jsi -e '[1, 2, 3].join("-")'
	jsi

Settings are read from $XDG_CONFIG_HOME/jsi/config.yaml.

Jsi is released under an MIT-style license.
*/
package main

import (
	"context"
	"io"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/jsi/internal/engine"
	"github.com/michaelmacinnis/jsi/internal/engine/task"
	"github.com/michaelmacinnis/jsi/internal/system/config"
	"github.com/michaelmacinnis/jsi/internal/system/interrupt"
	"github.com/michaelmacinnis/jsi/internal/system/options"
	"github.com/michaelmacinnis/jsi/internal/ui"
)

func main() {
	opts, err := options.Parse(os.Args[1:], docopt.PrintHelpAndExit)
	if err != nil {
		logrus.Fatal(err)
	}

	os.Exit(run(opts, os.Stdin, os.Stdout))
}

func run(opts *options.T, stdin io.Reader, stdout io.Writer) int {
	log := logrus.StandardLogger()

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Error(err)

		return 1
	}

	level, err := cfg.Level()
	if err != nil {
		log.Error(err)

		return 1
	}

	log.SetLevel(verbosity(level, opts.Verbosity))

	ec := engine.DefaultConfig()
	ec.Limits = task.Limits{MaxDepth: cfg.MaxDepth, MaxSteps: cfg.MaxSteps}
	ec.Log = log
	ec.Strict = cfg.Strict || opts.Strict

	if opts.Interactive {
		s, err := engine.NewSession(context.Background(), ec)
		if err != nil {
			log.Error(err)

			return 1
		}

		if err := ui.Run(s, cfg.History, log, stdout); err != nil {
			log.Error(err)

			return 1
		}

		return 0
	}

	name, src, err := source(opts, stdin)
	if err != nil {
		log.Error(err)

		return 1
	}

	ec.Name = name

	ctx, cancel := interrupt.Context(context.Background())
	defer cancel()

	v, err := engine.New(src, ec).Evaluate(ctx).Await(context.Background())

	ui.Report(stdout, v, err)

	if err != nil {
		return 1
	}

	return 0
}

func source(opts *options.T, stdin io.Reader) (string, string, error) {
	switch {
	case opts.Expression != "":
		return "<eval>", opts.Expression, nil

	case opts.Script != "":
		b, err := os.ReadFile(opts.Script)
		if err != nil {
			return "", "", errors.Wrapf(err, "reading %s", opts.Script)
		}

		return opts.Script, string(b), nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", errors.Wrap(err, "reading stdin")
	}

	return "<stdin>", string(b), nil
}

// verbosity raises the log level l by one level for each -v.
func verbosity(l logrus.Level, n int) logrus.Level {
	if n == 0 {
		return l
	}

	v := logrus.InfoLevel + logrus.Level(n-1)
	if v > logrus.TraceLevel {
		v = logrus.TraceLevel
	}

	if v > l {
		return v
	}

	return l
}
