// Released under an MIT license. See LICENSE.

//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package process

// BecomeForegroundGroup does nothing where there is no job control.
func BecomeForegroundGroup() error {
	return nil
}

// ForegroundGroup returns 0 where there is no job control.
func ForegroundGroup() int {
	return 0
}
