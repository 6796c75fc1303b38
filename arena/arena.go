// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: Generational slot storage (Key, Arena[T]).
// Determinism:
//   - Fresh slots are appended in order; freed slots are reused LIFO.
//   - All() yields live slots in ascending slot order.

package arena

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Key addresses one slot of an Arena at one generation.
type Key uint64

// Null is the key that no Arena ever issues.
const Null Key = 0

// firstGeneration is the generation of a slot the first time it is used.
const firstGeneration uint32 = 1

// retiredGeneration marks a slot whose generation counter wrapped; the slot is
// never handed out again.
const retiredGeneration uint32 = 0

func makeKey(slot, gen uint32) Key {
	return Key(uint64(gen)<<32 | uint64(slot))
}

// Slot returns the slot position encoded in k.
func (k Key) Slot() uint32 { return uint32(k) }

// Generation returns the generation encoded in k.
func (k Key) Generation() uint32 { return uint32(k >> 32) }

// IsNull reports whether k is the Null sentinel.
func (k Key) IsNull() bool { return k == Null }

// String renders k as "<slot>v<generation>".
func (k Key) String() string {
	if k.IsNull() {
		return "null"
	}

	return fmt.Sprintf("%dv%d", k.Slot(), k.Generation())
}

// entry is one slot. gen is the generation a live key must carry.
type entry[T any] struct {
	value    T
	gen      uint32
	occupied bool
}

// Arena is a generational slot arena holding values of type T.
// The zero value is an empty, ready-to-use arena.
type Arena[T any] struct {
	slots []entry[T]
	free  []uint32 // stack of reusable slot positions
	live  int
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// WithCapacity returns an empty arena whose slot storage is pre-sized for n
// values. The hint has no behavioural effect.
func WithCapacity[T any](n int) *Arena[T] {
	if n < 0 {
		n = 0
	}

	return &Arena[T]{slots: make([]entry[T], 0, n)}
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.live }

// Insert stores v and returns its key.
// Complexity: O(1) amortized.
func (a *Arena[T]) Insert(v T) Key {
	// Reuse a freed slot when one is available; its generation was already
	// bumped on removal, so no older key can match it.
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		e := &a.slots[slot]
		e.value = v
		e.occupied = true
		a.live++

		return makeKey(slot, e.gen)
	}

	if uint64(len(a.slots)) >= math.MaxUint32 {
		panic("arena: slot space exhausted")
	}
	slot := uint32(len(a.slots))
	a.slots = append(a.slots, entry[T]{value: v, gen: firstGeneration, occupied: true})
	a.live++

	return makeKey(slot, firstGeneration)
}

// lookup returns the live entry addressed by k, or nil.
func (a *Arena[T]) lookup(k Key) *entry[T] {
	if k.IsNull() {
		return nil
	}
	slot := k.Slot()
	if int(slot) >= len(a.slots) {
		return nil
	}
	e := &a.slots[slot]
	if !e.occupied || e.gen != k.Generation() {
		return nil
	}

	return e
}

// Contains reports whether k addresses a live value.
func (a *Arena[T]) Contains(k Key) bool {
	return a.lookup(k) != nil
}

// Get returns a copy of the value addressed by k.
func (a *Arena[T]) Get(k Key) (T, bool) {
	e := a.lookup(k)
	if e == nil {
		var zero T
		return zero, false
	}

	return e.value, true
}

// GetPtr returns a pointer to the value addressed by k. The pointer stays
// valid until the value is removed or the arena grows.
func (a *Arena[T]) GetPtr(k Key) (*T, bool) {
	e := a.lookup(k)
	if e == nil {
		return nil, false
	}

	return &e.value, true
}

// MustGet is the precondition-verified accessor: the caller asserts k is live
// (typically after a Contains check in the same call). A violated
// precondition panics instead of reading a foreign slot.
func (a *Arena[T]) MustGet(k Key) *T {
	e := a.lookup(k)
	if e == nil {
		panic(fmt.Sprintf("arena: MustGet on stale or unknown key %s", k))
	}

	return &e.value
}

// Remove frees the slot addressed by k and returns its value.
// Complexity: O(1).
func (a *Arena[T]) Remove(k Key) (T, bool) {
	e := a.lookup(k)
	if e == nil {
		var zero T
		return zero, false
	}
	v := e.value
	a.release(k.Slot(), e)
	a.live--

	return v, true
}

// release empties e, bumps its generation and recycles the slot unless the
// generation wrapped.
func (a *Arena[T]) release(slot uint32, e *entry[T]) {
	var zero T
	e.value = zero
	e.occupied = false
	e.gen++
	if e.gen == retiredGeneration {
		return
	}
	a.free = append(a.free, slot)
}

// Clear removes every value. Slot storage is kept; every slot generation that
// was live is bumped so pre-clear keys stay stale forever.
// Complexity: O(slots).
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	// Walk backwards so the lowest slot sits on top of the free stack and is
	// reused first, mirroring a fresh arena.
	for i := len(a.slots) - 1; i >= 0; i-- {
		e := &a.slots[i]
		if e.occupied {
			e.value = zero
			e.occupied = false
			e.gen++
		}
		if e.gen != retiredGeneration {
			a.free = append(a.free, uint32(i))
		}
	}
	a.live = 0
}

// All yields every live key with a pointer to its value, in slot order.
func (a *Arena[T]) All() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := 0; i < len(a.slots); i++ {
			e := &a.slots[i]
			if !e.occupied {
				continue
			}
			if !yield(makeKey(uint32(i), e.gen), &e.value) {
				return
			}
		}
	}
}

// Keys returns a snapshot of every live key in slot order. Use it when the
// arena is mutated while walking.
func (a *Arena[T]) Keys() []Key {
	out := make([]Key, 0, a.live)
	for k := range a.All() {
		out = append(out, k)
	}

	return out
}

// Clone returns an independent copy of a. Keys issued by a stay valid on the
// copy. Values are copied by assignment.
func (a *Arena[T]) Clone() *Arena[T] {
	return &Arena[T]{
		slots: slices.Clone(a.slots),
		free:  slices.Clone(a.free),
		live:  a.live,
	}
}
