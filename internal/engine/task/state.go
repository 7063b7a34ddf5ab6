// Released under an MIT license. See LICENSE.

package task

import (
	"sync"
)

// R S
// 0 0 Task is not running.
// 1 0 Task is running.
// 1 1 Task is stopping but Runnable has not yet been called.
// 0 1 Task was asked to stop before it started or after it finished.

// The type state is a task's state. It is the only part of a task that
// may be touched from another goroutine.
type state struct {
	sync.Mutex

	running  bool
	stopping bool
}

func fresh() *state {
	return &state{}
}

// Runnable returns true if a task is running and has not been asked to stop.
//
// R S -> R S
// 0 X    0 X returns false
// 1 0    1 0 returns true
// 1 1    0 1 returns false.
//
func (s *state) Runnable() bool {
	s.Lock()
	defer s.Unlock()

	s.running = s.running && !s.stopping

	return s.running
}

// Started marks the task as running.
// Calling this on a task that is already running results in a panic.
//
// R S -> R S
// 0 X -> 1 X
// 1 X    1 X panic.
//
func (s *state) Started() {
	s.Lock()
	defer s.Unlock()

	if s.running {
		panic("already running")
	}

	s.running = true
}

// Stop asks a running task to stop at its next step.
//
// R S -> R S
// X X -> X 1
//
func (s *state) Stop() {
	s.Lock()
	defer s.Unlock()

	s.stopping = true
}

// Stopped clears running.
//
// R S -> R S
// X X -> 0 X
//
func (s *state) Stopped() {
	s.Lock()
	defer s.Unlock()

	s.running = false
}
