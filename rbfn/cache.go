// SPDX-License-Identifier: MIT
package rbfn

import "github.com/katalvlaran/rbfn/matrix"

// ActivationCache memoizes kernel activations keyed by the input matrix.
//
// Keys are compared by value. Lookup returns a matrix owned by the cache;
// callers must copy it before handing it out. Store must copy both arguments.
// Empty returns a new, empty cache of the same kind; Model.Clone uses it.
type ActivationCache interface {
	Lookup(inputs *matrix.Dense) (*matrix.Dense, bool)
	Store(inputs, activations *matrix.Dense)
	Clear()
	Len() int
	Empty() ActivationCache
}

// SingleSlotCache remembers only the most recent inputs and their activations.
// It reuses its buffers when consecutive batches share a shape.
type SingleSlotCache struct {
	inputs      *matrix.Dense
	activations *matrix.Dense
	full        bool
}

var _ ActivationCache = (*SingleSlotCache)(nil)

// NewSingleSlotCache returns an empty single-slot cache.
func NewSingleSlotCache() *SingleSlotCache {
	return &SingleSlotCache{}
}

// Lookup returns the stored activations when inputs equal the stored key element-wise.
func (c *SingleSlotCache) Lookup(inputs *matrix.Dense) (*matrix.Dense, bool) {
	if !c.full || !c.inputs.Equal(inputs) {
		return nil, false
	}

	return c.activations, true
}

// Store replaces the slot with copies of inputs and activations.
func (c *SingleSlotCache) Store(inputs, activations *matrix.Dense) {
	if c.inputs == nil {
		c.inputs = inputs.Copy()
		c.activations = activations.Copy()
	} else {
		c.inputs.CopyFrom(inputs)
		c.activations.CopyFrom(activations)
	}
	c.full = true
}

// Clear empties the slot; the buffers are kept for reuse.
func (c *SingleSlotCache) Clear() { c.full = false }

// Len returns 1 when the slot holds an entry, else 0.
func (c *SingleSlotCache) Len() int {
	if c.full {
		return 1
	}

	return 0
}

// Empty returns a new SingleSlotCache.
func (c *SingleSlotCache) Empty() ActivationCache { return NewSingleSlotCache() }
