// Released under an MIT license. See LICENSE.

// Package future provides the completion handle for an evaluation.
package future

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
)

// T (future) resolves with a value or rejects with an error, once.
type T struct {
	done  chan struct{}
	once  sync.Once
	value cell.I
	err   error
}

type future = T

// New creates an unsettled future.
func New() *T {
	return &T{done: make(chan struct{})}
}

// Await waits for the future f to settle or for ctx to be done.
func (f *future) Await(ctx context.Context) (cell.I, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "await")
	}
}

// Done returns a channel that is closed when the future f settles.
func (f *future) Done() <-chan struct{} {
	return f.done
}

// Settle resolves the future f with v, or rejects it with err if err is
// not nil. Only the first call has any effect. It returns true if this
// call settled f.
func (f *future) Settle(v cell.I, err error) bool {
	settled := false

	f.once.Do(func() {
		f.value, f.err = v, err
		settled = true

		close(f.done)
	})

	return settled
}

// Then calls onValue or onError, in a new goroutine, once the future f
// settles. Either may be nil.
func (f *future) Then(onValue func(cell.I), onError func(error)) {
	go func() {
		<-f.done

		if f.err != nil {
			if onError != nil {
				onError(f.err)
			}

			return
		}

		if onValue != nil {
			onValue(f.value)
		}
	}()
}
