// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package process

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	id       = unix.Getpid()
	terminal = int(os.Stdin.Fd())
)

// BecomeForegroundGroup waits until jsi's process group may read from
// the terminal and then makes jsi the leader of its own foreground group.
func BecomeForegroundGroup() error {
	group, err := unix.Getpgid(id)
	if err != nil {
		return errors.Wrap(err, "getpgid")
	}

	for group != ForegroundGroup() {
		if err = unix.Kill(-group, unix.SIGTTIN); err != nil {
			return errors.Wrap(err, "kill")
		}

		group, err = unix.Getpgid(id)
		if err != nil {
			return errors.Wrap(err, "getpgid")
		}
	}

	if id != group {
		if err = unix.Setpgid(id, id); err != nil {
			return errors.Wrap(err, "setpgid")
		}
	}

	return errors.Wrap(unix.IoctlSetPointerInt(terminal, unix.TIOCSPGRP, id), "tcsetpgrp")
}

// ForegroundGroup returns the terminal's foreground group ID or 0.
func ForegroundGroup() int {
	group, err := unix.IoctlGetInt(terminal, unix.TIOCGPGRP)
	if err != nil {
		return 0
	}

	return group
}
