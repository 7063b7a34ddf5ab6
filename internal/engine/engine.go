// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed jsi code.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/robertkrimen/otto/ast"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/jsi/internal/common/fault"
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/scope"
	"github.com/michaelmacinnis/jsi/internal/common/type/env"
	"github.com/michaelmacinnis/jsi/internal/engine/boot"
	"github.com/michaelmacinnis/jsi/internal/engine/future"
	"github.com/michaelmacinnis/jsi/internal/engine/task"
	"github.com/michaelmacinnis/jsi/internal/reader"
)

// DefaultMaxDepth is the default limit on nested function activations.
const DefaultMaxDepth = 10000

// Config holds the settings shared by every run.
type Config struct {
	Limits task.Limits
	Log    logrus.FieldLogger
	Name   string
	Strict bool
}

//nolint:gochecknoglobals
var runs int64

// T (engine) is a facade in front of the machinery for evaluating jsi code.
type T struct {
	cfg     Config
	program *ast.Program
	err     error
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Limits: task.Limits{MaxDepth: DefaultMaxDepth},
		Log:    logrus.StandardLogger(),
		Name:   "<eval>",
	}
}

// New creates an engine for the program source. A syntax error is
// reported when the program is evaluated.
func New(source string, cfg Config) *T {
	cfg = complete(cfg)

	p, err := reader.Parse(cfg.Name, source)

	return &T{cfg: cfg, program: p, err: err}
}

// Evaluate runs the program, in a new global scope, on its own goroutine.
// The returned future settles with the program's completion value or
// the fault that stopped it.
func (e *T) Evaluate(ctx context.Context) *future.T {
	f := future.New()

	if e.err != nil {
		f.Settle(nil, e.err)

		return f
	}

	go func() {
		g, err := Global(ctx, e.cfg)
		if err != nil {
			f.Settle(nil, err)

			return
		}

		f.Settle(run(ctx, g, e.program, e.cfg))
	}()

	return f
}

// Global creates a global scope holding the primordials and the
// definitions made by the boot script.
func Global(ctx context.Context, cfg Config) (scope.I, error) {
	cfg = complete(cfg)

	g := env.Global(cfg.Strict)

	task.Primordials(g)

	p, err := boot.Program()
	if err != nil {
		return nil, errors.Wrap(err, "boot")
	}

	_, err = task.New(g, p, task.Limits{}, entry(cfg.Log, "boot")).Run(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "boot")
	}

	return g, nil
}

// Session evaluates a series of programs in one global scope so that
// each sees the definitions of those before it.
type Session struct {
	sync.Mutex

	cfg    Config
	global scope.I
}

// NewSession creates a session with a fresh global scope.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	cfg = complete(cfg)

	g, err := Global(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Session{cfg: cfg, global: g}, nil
}

// Evaluate runs the program p in the session's global scope. Programs
// run one at a time, in the order Evaluate is called.
func (s *Session) Evaluate(ctx context.Context, p *ast.Program) *future.T {
	f := future.New()

	s.Lock()

	go func() {
		defer s.Unlock()

		f.Settle(run(ctx, s.global, p, s.cfg))
	}()

	return f
}

func complete(cfg Config) Config {
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}

	if cfg.Name == "" {
		cfg.Name = "<eval>"
	}

	return cfg
}

func entry(l logrus.FieldLogger, run interface{}) *logrus.Entry {
	return l.WithField("run", run)
}

func run(ctx context.Context, g scope.I, p *ast.Program, cfg Config) (cell.I, error) {
	log := entry(cfg.Log, atomic.AddInt64(&runs, 1))

	start := time.Now()

	log.Debug("started")

	t := task.New(g, p, cfg.Limits, log)

	v, err := t.Run(ctx)

	fields := logrus.Fields{
		"elapsed": time.Since(start),
		"steps":   t.Steps(),
	}

	if err != nil {
		fields["kind"] = fault.KindOf(err).String()
	}

	log.WithFields(fields).Debug("settled")

	return v, err
}
