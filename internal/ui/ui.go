// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the jsi language.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/literal"
	"github.com/michaelmacinnis/jsi/internal/engine"
	"github.com/michaelmacinnis/jsi/internal/reader"
	"github.com/michaelmacinnis/jsi/internal/system/history"
	"github.com/michaelmacinnis/jsi/internal/system/interrupt"
	"github.com/michaelmacinnis/jsi/internal/system/process"
)

// Run reads programs from the terminal and evaluates them in the
// session s until the user ends input.
func Run(s *engine.Session, path string, log logrus.FieldLogger, out io.Writer) error {
	if err := process.BecomeForegroundGroup(); err != nil {
		log.WithError(err).Warn("not in the foreground")
	}

	cooked, err := liner.TerminalMode()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}

	if err := history.Load(path, cli.ReadHistory); err != nil {
		log.WithError(err).Warn("history not loaded")
	}

	cli.SetCtrlCAborts(true)
	cli.SetMultiLineMode(true)

	r := reader.New("<repl>")

	for {
		prompt := "> "
		if r.Pending() {
			prompt = "... "
		}

		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			r.Reset()

			continue
		default:
			fmt.Fprintln(out)

			if err := history.Save(path, cli.WriteHistory); err != nil {
				log.WithError(err).Warn("history not saved")
			}

			return nil
		}

		p, src, err := r.Scan(line)
		if err != nil {
			Report(out, nil, err)

			continue
		}

		if p == nil {
			continue
		}

		cli.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		// Evaluate with the terminal in its original mode so that
		// Ctrl-C is delivered as an interrupt.
		if err := cooked.ApplyMode(); err != nil {
			return errors.Wrap(err, "terminal")
		}

		ctx, cancel := interrupt.Context(context.Background())

		v, err := s.Evaluate(ctx, p).Await(context.Background())

		cancel()

		if err := uncooked.ApplyMode(); err != nil {
			return errors.Wrap(err, "terminal")
		}

		Report(out, v, err)
	}
}

// Report writes the literal form of the value v, or the error err, to w.
func Report(w io.Writer, v cell.I, err error) {
	if err == nil {
		fmt.Fprintln(w, literal.String(v))

		return
	}

	msg := err.Error()

	var f *fault.T
	if !errors.As(err, &f) {
		fmt.Fprintln(w, msg)

		return
	}

	if f.Kind != fault.Thrown {
		msg = "Uncaught " + msg
	}

	if f.Where != "" {
		msg += " at " + f.Where
	}

	fmt.Fprintln(w, msg)
}
