// Released under an MIT license. See LICENSE.

// Package hash provides jsi's name to value mapping type.
package hash

import (
	"github.com/michaelmacinnis/jsi/internal/common/interface/cell"
	"github.com/michaelmacinnis/jsi/internal/common/interface/reference"
	"github.com/michaelmacinnis/jsi/internal/common/struct/slot"
)

// T (hash) maps names to values. Names are kept in insertion order.
type T struct {
	keys []string
	m    map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	for i, v := range h.keys {
		if v == k {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)

			break
		}
	}

	return true
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Keys returns the names in the hash h in the order they were added.
func (h *hash) Keys() []string {
	if h == nil {
		return nil
	}

	return append([]string(nil), h.keys...)
}

// Set associates the name k with the cell v in the hash h. An existing
// reference is updated in place so that anything sharing it sees v.
func (h *hash) Set(k string, v cell.I) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.keys = append(h.keys, k)
	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	if h == nil {
		return 0
	}

	return len(h.m)
}
