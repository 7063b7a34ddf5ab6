// Released under an MIT license. See LICENSE.

// Package interrupt cancels evaluations when the user interrupts jsi.
package interrupt

import (
	"context"
	"os"
	"os/signal"
)

// Context returns a copy of parent that is cancelled when the process
// receives an interrupt. Calling the returned function stops watching
// for interrupts and cancels the context.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	c := make(chan os.Signal, 1)
	signal.Notify(c, signals()...)

	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(c)
		cancel()
	}
}
