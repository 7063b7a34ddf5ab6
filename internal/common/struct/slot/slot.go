// Released under an MIT license. See LICENSE.

// Package slot provides jsi's binding cell type.
package slot

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
)

// T (slot) holds a cell value. A slot is shared by every closure that
// captures the environment holding it. A task owns all of its slots so
// no locking is needed.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}
