// Released under an MIT license. See LICENSE.

// Package process manages jsi's relationship with its controlling terminal.
package process
